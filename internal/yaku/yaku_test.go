package yaku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi-engine/internal/hand"
	"github.com/lamyinia/riichi-engine/internal/meld"
	"github.com/lamyinia/riichi-engine/internal/tile"
	"github.com/lamyinia/riichi-engine/internal/yaku"
)

func mustTile(t *testing.T, s string) tile.Tile {
	t.Helper()
	tl, err := tile.ParseMPSZ(s)
	require.NoError(t, err)
	return tl
}

func buildStandardContext(t *testing.T, mpsz string, winMPSZ string, melds []meld.Meld, sit yaku.Situation) yaku.Context {
	t.Helper()
	tiles, err := tile.ParsePaishan(mpsz)
	require.NoError(t, err)
	win := mustTile(t, winMPSZ)
	all := append(append([]tile.Tile{}, tiles...), win)
	counts := hand.FromTiles(all)
	setsNeeded := 4 - len(melds)
	decs := hand.Decompose(counts, setsNeeded)
	require.NotEmpty(t, decs)
	allCounts := hand.FromTiles(all)
	concealed := true
	for _, m := range melds {
		for _, mt := range m.Tiles {
			allCounts[mt.Type()]++
		}
		if m.Opened {
			concealed = false
		}
	}
	return yaku.Context{
		Decomp:    decs[0],
		AllCounts: allCounts,
		Melds:     melds,
		WinTile:   win,
		WinType:   win.Type(),
		Concealed: concealed,
		Situation: sit,
	}
}

func TestPinfuShapeViaDecompose(t *testing.T) {
	ctx := buildStandardContext(t, "2m3m4m5p6p7p1s2s3s6m6m6s7s", "8s", nil, yaku.Situation{})
	var found *hand.Decomposition
	tiles, _ := tile.ParsePaishan("2m3m4m5p6p7p1s2s3s6m6m6s7s")
	win := mustTile(t, "8s")
	all := append(append([]tile.Tile{}, tiles...), win)
	counts := hand.FromTiles(all)
	for _, d := range hand.Decompose(counts, 4) {
		if d.Shape == hand.Standard && d.Pair == 5 { // 6m pair (type index 5)
			allSeq := true
			for _, s := range d.Sets {
				if s.Kind != hand.Sequence {
					allSeq = false
				}
			}
			if allSeq {
				cp := d
				found = &cp
			}
		}
	}
	require.NotNil(t, found, "expected an all-sequence decomposition with a non-value pair")
	ctx.Decomp = *found
	res := yaku.Evaluate(ctx)
	hasPinfu := false
	for _, h := range res.Hits {
		if h.ID == yaku.Pinfu {
			hasPinfu = true
		}
	}
	assert.True(t, hasPinfu)
	assert.Equal(t, 30, yaku.Fu(ctx)) // pinfu ron forces 30fu
}

func TestTanyaoAwardedOnAllSimples(t *testing.T) {
	ctx := buildStandardContext(t, "2m3m4m5p6p7p2s3s4s6m6m6s7s", "8s", nil, yaku.Situation{})
	res := yaku.Evaluate(ctx)
	found := false
	for _, h := range res.Hits {
		if h.ID == yaku.Tanyao {
			found = true
		}
	}
	assert.True(t, found)
}

func TestYakuShibariNoHitsProducesEmptyResult(t *testing.T) {
	ctx := buildStandardContext(t, "2p3p4p5p6p7p9m9m9m1s2s3s8s", "8s", nil, yaku.Situation{})
	res := yaku.Evaluate(ctx)
	assert.Empty(t, res.Hits)
}

func TestToitoiAndSanankou(t *testing.T) {
	// 111m, 222m concealed triplets; 33m completed to 333m via tsumo
	// (shanpon, stays ankou); pair 5p; one open pon of 9s — keeps the
	// concealed-triplet count at 3 (sanankou) rather than 4 (suuankou).
	nine, err := tile.ParseMPSZ("9s")
	require.NoError(t, err)
	pon := meld.New(meld.Pon, []tile.Tile{nine, nine, nine}, nine, true, 1)
	ctx := buildStandardContext(t, "1m1m1m2m2m2m3m3m5p5p", "3m", []meld.Meld{pon}, yaku.Situation{Tsumo: true})
	res := yaku.Evaluate(ctx)
	ids := map[yaku.ID]bool{}
	for _, h := range res.Hits {
		ids[h.ID] = true
	}
	assert.True(t, ids[yaku.Toitoi])
	assert.True(t, ids[yaku.Sanankou])
}

func TestChiitoitsuFixedFu(t *testing.T) {
	tiles, err := tile.ParsePaishan("1m1m3m3m5p5p7p7p2s2s4s4s1z")
	require.NoError(t, err)
	win := mustTile(t, "1z")
	all := append(append([]tile.Tile{}, tiles...), win)
	counts := hand.FromTiles(all)
	decs := hand.Decompose(counts, 4)
	var chiitoi *hand.Decomposition
	for _, d := range decs {
		if d.Shape == hand.Chiitoitsu {
			cp := d
			chiitoi = &cp
		}
	}
	require.NotNil(t, chiitoi)
	ctx := yaku.Context{Decomp: *chiitoi, AllCounts: counts, WinTile: win, WinType: win.Type(), Concealed: true}
	assert.Equal(t, 25, yaku.Fu(ctx))
	res := yaku.Evaluate(ctx)
	hasChiitoi := false
	for _, h := range res.Hits {
		if h.ID == yaku.Chiitoitsu {
			hasChiitoi = true
			assert.Equal(t, 2, h.Han)
		}
	}
	assert.True(t, hasChiitoi)
}
