// Package agari is the winning-hand facade (C5): it combines the hand
// decomposer, the yaku evaluator and the scoring tables into a single
// Evaluate call that selects the highest-scoring interpretation of a
// winning hand.
package agari

import (
	"errors"

	"github.com/lamyinia/riichi-engine/internal/hand"
	"github.com/lamyinia/riichi-engine/internal/meld"
	"github.com/lamyinia/riichi-engine/internal/score"
	"github.com/lamyinia/riichi-engine/internal/tile"
	"github.com/lamyinia/riichi-engine/internal/yaku"
)

var (
	ErrNotAWinningShape = errors.New("agari: tiles do not form a complete hand")
	ErrNoYaku           = errors.New("agari: hand is complete but satisfies no yaku")
)

// Request describes one candidate winning hand.
type Request struct {
	Concealed      []tile.Tile // concealed tiles, not including WinTile
	Melds          []meld.Meld
	WinTile        tile.Tile
	IsDealer       bool
	Honba          int
	Situation      yaku.Situation
	DoraIndicators []tile.Tile
	UraIndicators  []tile.Tile
	Rules          score.Ruleset
}

// Verdict is the scored outcome of a winning hand.
type Verdict struct {
	Decomposition hand.Decomposition
	Result        yaku.Result
	Payment       score.Payment
}

// Evaluate checks req for a complete, yaku-bearing hand and returns the
// highest-scoring interpretation.
func Evaluate(req Request) (*Verdict, error) {
	all := make([]tile.Tile, 0, len(req.Concealed)+1)
	all = append(all, req.Concealed...)
	all = append(all, req.WinTile)
	concealedCounts := hand.FromTiles(all)

	setsNeeded := 4 - len(req.Melds)
	decomps := hand.Decompose(concealedCounts, setsNeeded)
	if len(decomps) == 0 {
		return nil, ErrNotAWinningShape
	}

	menzen := true
	for _, m := range req.Melds {
		if m.Opened {
			menzen = false
		}
	}

	allTiles := make([]tile.Tile, 0, len(all)+4*len(req.Melds))
	allTiles = append(allTiles, all...)
	redCount := 0
	for _, t := range all {
		if t.IsRedFive() {
			redCount++
		}
	}
	for _, m := range req.Melds {
		allTiles = append(allTiles, m.Tiles...)
		redCount += m.RedFiveCount()
	}
	allCounts := hand.FromTiles(allTiles)

	var best *yaku.Result
	var bestDecomp hand.Decomposition
	bestValue := -1
	for _, d := range decomps {
		ctx := yaku.Context{
			Decomp:         d,
			AllCounts:      allCounts,
			Melds:          req.Melds,
			WinTile:        req.WinTile,
			WinType:        req.WinTile.Type(),
			Concealed:      menzen,
			Situation:      req.Situation,
			DoraIndicators: req.DoraIndicators,
			UraIndicators:  req.UraIndicators,
			RedFiveCount:   redCount,
		}
		res := yaku.Evaluate(ctx)
		if !res.Yakuman && len(res.Hits) == 0 {
			continue
		}
		value := scoringValue(res)
		if value > bestValue {
			bestValue = value
			cp := res
			best = &cp
			bestDecomp = d
		}
	}
	if best == nil {
		return nil, ErrNoYaku
	}

	var base int
	if best.Yakuman {
		base = score.YakumanBasePoints(best.YakumanUnits)
	} else {
		base = score.BasePoints(best.Han, best.Fu, req.Rules)
	}
	var payment score.Payment
	if req.Situation.Tsumo {
		payment = score.Tsumo(base, req.IsDealer, req.Honba)
	} else {
		payment = score.Ron(base, req.IsDealer, req.Honba)
	}

	return &Verdict{Decomposition: bestDecomp, Result: *best, Payment: payment}, nil
}

func scoringValue(res yaku.Result) int {
	if res.Yakuman {
		return 1_000_000 * res.YakumanUnits
	}
	return res.Han*1000 + res.Fu
}
