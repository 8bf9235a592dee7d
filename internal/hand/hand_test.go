package hand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi-engine/internal/hand"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

func countsFromMPSZTypes(types ...int) hand.Counts {
	var c hand.Counts
	for _, t := range types {
		c[t]++
	}
	return c
}

func TestStandardAmbiguity(t *testing.T) {
	// 111222333 man: all triplets, or three sequences (123,123,123).
	var c hand.Counts
	for i := 0; i < 3; i++ {
		c[0]++ // 1m x3
		c[1]++ // 2m x3
		c[2]++ // 3m x3
	}
	c[3] += 2 // 4m pair
	// 11 concealed tiles: three sets plus the pair (one set already called).
	decs := hand.Decompose(c, 3)
	require.NotEmpty(t, decs)
	sawTriplets, sawSequences := false, false
	for _, d := range decs {
		if d.Shape != hand.Standard || d.Pair != 3 {
			continue
		}
		allTriplet, allSeq := true, true
		for _, s := range d.Sets {
			if s.Kind != hand.Triplet {
				allTriplet = false
			}
			if s.Kind != hand.Sequence {
				allSeq = false
			}
		}
		if allTriplet {
			sawTriplets = true
		}
		if allSeq {
			sawSequences = true
		}
	}
	assert.True(t, sawTriplets, "expected an all-triplets decomposition")
	assert.True(t, sawSequences, "expected an all-sequences decomposition")
}

func TestChiitoitsuRequiresSevenDistinctPairs(t *testing.T) {
	c := countsFromMPSZTypes(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6)
	decs := hand.Decompose(c, 4)
	found := false
	for _, d := range decs {
		if d.Shape == hand.Chiitoitsu {
			found = true
			assert.Len(t, d.Pairs, 7)
		}
	}
	assert.True(t, found)
}

func TestChiitoitsuRejectsQuad(t *testing.T) {
	c := countsFromMPSZTypes(0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5)
	for _, d := range hand.Decompose(c, 4) {
		assert.NotEqual(t, hand.Chiitoitsu, d.Shape)
	}
}

func TestKokushi13Sided(t *testing.T) {
	var c hand.Counts
	types := []int{0, 8, 9, 17, 18, 26, tile.TypeEast, tile.TypeSouth, tile.TypeWest, tile.TypeNorth, tile.TypeWhite, tile.TypeGreen, tile.TypeRed}
	for _, tt := range types {
		c[tt] = 1
	}
	c[0] = 2 // pair on 1m
	decs := hand.Decompose(c, 4)
	found := false
	for _, d := range decs {
		if d.Shape == hand.Kokushi {
			found = true
			assert.Equal(t, 0, d.Pair)
		}
	}
	assert.True(t, found)
}

func TestIsTenpaiSingleWait(t *testing.T) {
	// 123m123p123s111z2z (13 tiles), waiting on 2z pair-completion (tanki).
	var c hand.Counts
	c[0], c[1], c[2] = 1, 1, 1 // 123m
	c[9], c[10], c[11] = 1, 1, 1
	c[18], c[19], c[20] = 1, 1, 1
	c[tile.TypeEast] = 3
	c[tile.TypeSouth] = 1
	waits, ok := hand.IsTenpai(c, 4)
	require.True(t, ok)
	assert.Contains(t, waits, tile.TypeSouth)
}
