package agari_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi-engine/internal/agari"
	"github.com/lamyinia/riichi-engine/internal/meld"
	"github.com/lamyinia/riichi-engine/internal/score"
	"github.com/lamyinia/riichi-engine/internal/tile"
	"github.com/lamyinia/riichi-engine/internal/yaku"
)

func mustParseHand(t *testing.T, s string) []tile.Tile {
	t.Helper()
	tiles, err := tile.ParsePaishan(s)
	require.NoError(t, err)
	return tiles
}

// 123m456p789s111z2z, win on 2z ron, dealer (player_wind=East, round_wind=East).
func TestAgariCalcTwoHanFortyFu(t *testing.T) {
	hand := mustParseHand(t, "1m2m3m4p5p6p7s8s9s1z1z1z2z")
	winTile, err := tile.ParseMPSZ("2z")
	require.NoError(t, err)

	req := agari.Request{
		Concealed: hand,
		WinTile:   winTile,
		IsDealer:  true,
		Situation: yaku.Situation{
			Tsumo:      false,
			PlayerWind: tile.TypeEast,
			RoundWind:  tile.TypeEast,
		},
	}
	v, err := agari.Evaluate(req)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Result.Han)
	assert.Equal(t, 40, v.Result.Fu)
	assert.Equal(t, 3900, v.Payment.Total)
}

// 111222333m9p + open pon of South, win on 9p ron, player_wind=North,
// round_wind=South: must fire the round-wind yakuhai, not a hard-coded East.
func TestRoundWindYakuNotHardcodedEast(t *testing.T) {
	concealed := mustParseHand(t, "1m1m1m2m2m2m3m3m3m9p")
	winTile, err := tile.ParseMPSZ("9p")
	require.NoError(t, err)
	south, err := tile.ParseMPSZ("2z")
	require.NoError(t, err)
	pon := meld.New(meld.Pon, []tile.Tile{south, south, south}, south, true, 2)

	req := agari.Request{
		Concealed: concealed,
		Melds:     []meld.Meld{pon},
		WinTile:   winTile,
		IsDealer:  false,
		Situation: yaku.Situation{
			Tsumo:      false,
			PlayerWind: tile.TypeNorth,
			RoundWind:  tile.TypeSouth,
		},
	}
	v, err := agari.Evaluate(req)
	require.NoError(t, err)

	foundRoundSouth, foundSeatNorth := false, false
	for _, h := range v.Result.Hits {
		if h.ID == yaku.YakuhaiRoundSouth {
			foundRoundSouth = true
		}
		if h.ID == yaku.YakuhaiSeatNorth {
			foundSeatNorth = true
		}
	}
	assert.True(t, foundRoundSouth, "expected round-wind yakuhai on the actual round wind")
	assert.False(t, foundSeatNorth, "north pon was never called; must not fire seat yakuhai")
}

func TestYakuShibariRejectsNoYakuHand(t *testing.T) {
	// 234p 567p 999m(concealed triplet) 123s + 8s tanki: a complete shape
	// that satisfies no yaku at all (not tanyao: terminals present; not
	// pinfu: a triplet is present; not chanta: 567p touches no terminal).
	concealed := mustParseHand(t, "2p3p4p5p6p7p9m9m9m1s2s3s8s")
	winTile, err := tile.ParseMPSZ("8s")
	require.NoError(t, err)
	req := agari.Request{
		Concealed: concealed,
		WinTile:   winTile,
		Situation: yaku.Situation{Tsumo: false},
	}
	_, err = agari.Evaluate(req)
	assert.ErrorIs(t, err, agari.ErrNoYaku)
}

func TestScoreMonotonicInHan(t *testing.T) {
	low := score.BasePoints(2, 30, score.Ruleset{})
	high := score.BasePoints(4, 30, score.Ruleset{})
	assert.Less(t, score.Ron(low, false, 0).Total, score.Ron(high, false, 0).Total)
}
