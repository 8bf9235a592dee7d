package meld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi-engine/internal/meld"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

func mustTile(t *testing.T, s string) tile.Tile {
	t.Helper()
	tl, err := tile.ParseMPSZ(s)
	require.NoError(t, err)
	return tl
}

func TestChiRequiresConsecutiveSameSuit(t *testing.T) {
	m := meld.New(meld.Chi, []tile.Tile{mustTile(t, "3m"), mustTile(t, "4m"), mustTile(t, "5m")}, mustTile(t, "3m"), true, 0)
	assert.NoError(t, meld.Validate(m))

	bad := meld.New(meld.Chi, []tile.Tile{mustTile(t, "3m"), mustTile(t, "4p"), mustTile(t, "5m")}, mustTile(t, "3m"), true, 0)
	assert.Error(t, meld.Validate(bad))
}

func TestChiRejectsHonors(t *testing.T) {
	m := meld.Meld{Kind: meld.Chi, Tiles: []tile.Tile{mustTile(t, "1z"), mustTile(t, "1z"), mustTile(t, "1z")}, Source: 0}
	assert.Error(t, meld.Validate(m))
}

func TestAnkanMustHaveNoSource(t *testing.T) {
	tiles := []tile.Tile{mustTile(t, "5s"), mustTile(t, "5s"), mustTile(t, "5s"), mustTile(t, "5s")}
	m := meld.New(meld.Ankan, tiles, 0, false, -1)
	assert.NoError(t, meld.Validate(m))
	assert.False(t, m.Opened)

	withSource := meld.New(meld.Ankan, tiles, 0, false, 2)
	assert.Error(t, meld.Validate(withSource))
}

func TestRedFiveCountPreservedThroughMeld(t *testing.T) {
	tiles := []tile.Tile{tile.RedSou, mustTile(t, "5s"), mustTile(t, "5s")}
	m := meld.New(meld.Pon, tiles, mustTile(t, "5s"), true, 1)
	assert.Equal(t, 1, m.RedFiveCount())
}

func TestPonRequiresSameType(t *testing.T) {
	bad := meld.Meld{Kind: meld.Pon, Tiles: []tile.Tile{mustTile(t, "5s"), mustTile(t, "5s"), mustTile(t, "6s")}, Source: 1}
	assert.Error(t, meld.Validate(bad))
}
