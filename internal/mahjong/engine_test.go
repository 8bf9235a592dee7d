package mahjong_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi-engine/internal/config"
	"github.com/lamyinia/riichi-engine/internal/mahjong"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

// Reset deals a full 13-tile hand to every seat, draws the dealer's first
// tile synchronously, and commits to a wall digest before any tile is
// exposed to a caller.
func TestResetDealsAndCommitsWall(t *testing.T) {
	eg := mahjong.NewRiichiMahjong4p(1, config.Default())
	eg.Reset(mahjong.WindEast, 1, 0, 0, 0)

	for s := 0; s < 4; s++ {
		assert.Len(t, eg.Players[s].Concealed, 13, "seat %d dealt hand", s)
	}
	require.NotNil(t, eg.Players[0].Drawn, "dealer draws synchronously inside Reset")
	assert.NotEmpty(t, eg.WallDigest())

	// the salt is only revealed once the round (and hanchan, here a single
	// round) has concluded.
	assert.Empty(t, eg.RevealSalt())
}

// A discard of a tile absent from both the acting seat's concealed hand and
// its current draw is rejected rather than silently accepted.
func TestStepRejectsIllegalDiscard(t *testing.T) {
	eg := mahjong.NewRiichiMahjong4p(1, config.Default())
	eg.Reset(mahjong.WindEast, 1, 0, 0, 0)

	held := map[tile.Tile]bool{}
	for _, c := range eg.Players[0].Concealed {
		held[c] = true
	}
	if eg.Players[0].Drawn != nil {
		held[*eg.Players[0].Drawn] = true
	}

	var absent tile.Tile = -1
	for id := tile.Tile(0); id < 136; id++ {
		if !held[id] {
			absent = id
			break
		}
	}
	require.GreaterOrEqual(t, int(absent), 0, "every id 0-135 was held, impossible for a 4-seat deal")

	_, err := eg.Step(map[int]mahjong.Action{0: mahjong.Discard(absent)})
	assert.Error(t, err)
}

// A legal discard is accepted and the turn cycle resolves into the next
// seat's wait-to-act phase (no reactions are available against a lone,
// unclaimable discard in a fresh deal).
func TestStepAcceptsLegalDiscardAndAdvancesTurn(t *testing.T) {
	eg := mahjong.NewRiichiMahjong4p(1, config.Default())
	eg.Reset(mahjong.WindEast, 1, 0, 0, 0)

	drawn := *eg.Players[0].Drawn
	obs, err := eg.Step(map[int]mahjong.Action{0: mahjong.Discard(drawn)})
	require.NoError(t, err)
	assert.Contains(t, obs, 1)
	assert.Equal(t, drawn, eg.LastDiscard())
}

// Pass is always legal during WaitResponse and never mutates hand state.
func TestStepPassDuringWaitResponseIsLegal(t *testing.T) {
	eg := mahjong.NewRiichiMahjong4p(1, config.Default())
	eg.Reset(mahjong.WindEast, 1, 0, 0, 0)

	drawn := *eg.Players[0].Drawn
	_, err := eg.Step(map[int]mahjong.Action{0: mahjong.Discard(drawn)})
	require.NoError(t, err)

	before := len(eg.Players[1].Concealed)
	_, err = eg.Step(map[int]mahjong.Action{1: mahjong.Pass(), 2: mahjong.Pass(), 3: mahjong.Pass()})
	require.NoError(t, err)
	assert.Len(t, eg.Players[1].Concealed, before)
}

// Stepping after GameOver is rejected: a caller must Reset for the next
// round rather than keep stepping a concluded one.
func TestStepAfterGameOverIsRejected(t *testing.T) {
	eg := mahjong.NewRiichiMahjong4p(1, config.Default())
	eg.Reset(mahjong.WindEast, 1, 0, 0, 0)
	eg.GameOver = true

	_, err := eg.Step(map[int]mahjong.Action{0: mahjong.Pass()})
	assert.Error(t, err)
}
