package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lamyinia/riichi-engine/internal/agari"
	"github.com/lamyinia/riichi-engine/internal/score"
	"github.com/lamyinia/riichi-engine/internal/tile"
	"github.com/lamyinia/riichi-engine/internal/yaku"
)

func newScoreCmd() *cobra.Command {
	var hand, win, roundWind, seatWind string
	var tsumo, riichi, doubleRiichi, ippatsu, haitei, houtei, isDealer bool
	var honba int

	cmd := &cobra.Command{
		Use:   "score",
		Short: "score a single closed (no melds) winning hand given as space-separated mpsz tiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			concealed, err := parseHand(hand)
			if err != nil {
				return fmt.Errorf("--hand: %w", err)
			}
			winTile, err := tile.ParseMPSZ(win)
			if err != nil {
				return fmt.Errorf("--win: %w", err)
			}
			rw, err := windFlagToType(roundWind)
			if err != nil {
				return fmt.Errorf("--round-wind: %w", err)
			}
			sw, err := windFlagToType(seatWind)
			if err != nil {
				return fmt.Errorf("--seat-wind: %w", err)
			}
			rules := loadRules()
			req := agari.Request{
				Concealed: concealed,
				WinTile:   winTile,
				IsDealer:  isDealer,
				Honba:     honba,
				Situation: yaku.Situation{
					Tsumo: tsumo, Riichi: riichi, DoubleRiichi: doubleRiichi,
					Ippatsu: ippatsu, Haitei: haitei, Houtei: houtei,
					PlayerWind: sw, RoundWind: rw,
				},
				Rules: score.Ruleset{KiriageMangan: rules.KiriageMangan},
			}
			verdict, err := agari.Evaluate(req)
			if err != nil {
				return err
			}
			fmt.Printf("han=%d fu=%d yakuman=%v\n", verdict.Result.Han, verdict.Result.Fu, verdict.Result.Yakuman)
			for _, hit := range verdict.Result.Hits {
				fmt.Printf("  yaku %d: %d han\n", hit.ID, hit.Han)
			}
			fmt.Printf("payment: total=%d dealer_pays=%d non_dealer_pays=%d\n",
				verdict.Payment.Total, verdict.Payment.DealerPays, verdict.Payment.NonDealerPays)
			return nil
		},
	}
	cmd.Flags().StringVar(&hand, "hand", "", "concealed tiles (space-separated mpsz, not including --win)")
	cmd.Flags().StringVar(&win, "win", "", "the winning tile (mpsz)")
	cmd.Flags().StringVar(&roundWind, "round-wind", "E", "round wind: E, S, W or N")
	cmd.Flags().StringVar(&seatWind, "seat-wind", "E", "seat wind: E, S, W or N")
	cmd.Flags().BoolVar(&tsumo, "tsumo", false, "self-draw win")
	cmd.Flags().BoolVar(&riichi, "riichi", false, "riichi declared")
	cmd.Flags().BoolVar(&doubleRiichi, "double-riichi", false, "double riichi")
	cmd.Flags().BoolVar(&ippatsu, "ippatsu", false, "ippatsu")
	cmd.Flags().BoolVar(&haitei, "haitei", false, "tsumo on the last drawable tile")
	cmd.Flags().BoolVar(&houtei, "houtei", false, "ron on the last discard")
	cmd.Flags().BoolVar(&isDealer, "dealer", false, "winner is the dealer")
	cmd.Flags().IntVar(&honba, "honba", 0, "honba count")
	cmd.MarkFlagRequired("hand")
	cmd.MarkFlagRequired("win")
	return cmd
}

func parseHand(s string) ([]tile.Tile, error) {
	fields := strings.Fields(s)
	out := make([]tile.Tile, len(fields))
	for i, f := range fields {
		t, err := tile.ParseMPSZ(f)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func windFlagToType(s string) (int, error) {
	switch s {
	case "E":
		return tile.TypeEast, nil
	case "S":
		return tile.TypeSouth, nil
	case "W":
		return tile.TypeWest, nil
	case "N":
		return tile.TypeNorth, nil
	default:
		return 0, fmt.Errorf("unknown wind %q", s)
	}
}
