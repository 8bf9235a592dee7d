package tile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi-engine/internal/tile"
)

func TestMPSZRoundTrip(t *testing.T) {
	for id := 0; id < tile.Count; id++ {
		tl := tile.Tile(id)
		s := tl.MPSZ()
		got, err := tile.ParseMPSZ(s)
		require.NoError(t, err)
		if tl.IsRedFive() {
			assert.Equal(t, tl, got, "mpsz %q", s)
		} else {
			assert.Equal(t, tl.Type(), got.Type(), "mpsz %q", s)
		}
	}
}

func TestMJAIRoundTrip(t *testing.T) {
	for id := 0; id < tile.Count; id++ {
		tl := tile.Tile(id)
		s := tl.MJAI()
		got, err := tile.ParseMJAI(s)
		require.NoError(t, err)
		if tl.IsRedFive() {
			assert.Equal(t, tl, got, "mjai %q", s)
		} else {
			assert.Equal(t, tl.Type(), got.Type(), "mjai %q", s)
		}
	}
}

func TestRedFiveIDs(t *testing.T) {
	assert.True(t, tile.Tile(16).IsRedFive())
	assert.True(t, tile.Tile(52).IsRedFive())
	assert.True(t, tile.Tile(88).IsRedFive())
	assert.False(t, tile.Tile(17).IsRedFive())
}

func TestHonorOrder(t *testing.T) {
	assert.Equal(t, "E", tile.Tile(108).MJAI())
	assert.Equal(t, "S", tile.Tile(112).MJAI())
	assert.Equal(t, "W", tile.Tile(116).MJAI())
	assert.Equal(t, "N", tile.Tile(120).MJAI())
	assert.Equal(t, "P", tile.Tile(124).MJAI())
	assert.Equal(t, "F", tile.Tile(128).MJAI())
	assert.Equal(t, "C", tile.Tile(132).MJAI())
}

func TestParsePaishanRedDisambiguation(t *testing.T) {
	tiles, err := tile.ParsePaishan("0m5m5m5m")
	require.NoError(t, err)
	require.Len(t, tiles, 4)
	assert.Equal(t, tile.RedMan, tiles[0])
	assert.True(t, tiles[1] != tile.RedMan && tiles[2] != tile.RedMan && tiles[3] != tile.RedMan)
	ids := map[tile.Tile]bool{}
	for _, tl := range tiles {
		ids[tl] = true
	}
	assert.Len(t, ids, 4)
}

func TestParsePaishanSequentialAssignment(t *testing.T) {
	tiles, err := tile.ParsePaishan("1m1m1m1m")
	require.NoError(t, err)
	require.Len(t, tiles, 4)
	assert.ElementsMatch(t, []tile.Tile{0, 1, 2, 3}, tiles)
}

func TestCyclicDoraNext(t *testing.T) {
	nineMan, _ := tile.ParseMPSZ("9m")
	assert.Equal(t, 0, nineMan.CyclicDoraNext()) // 9m -> 1m
	north, _ := tile.ParseMJAI("N")
	assert.Equal(t, tile.TypeEast, north.CyclicDoraNext())
	red, _ := tile.ParseMJAI("C")
	assert.Equal(t, tile.TypeWhite, red.CyclicDoraNext())
}
