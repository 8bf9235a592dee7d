package replay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi-engine/internal/config"
	"github.com/lamyinia/riichi-engine/internal/replay"
)

func startKyoku(dealer int, tehais [4][]string) replay.Event {
	return replay.Event{
		Type: replay.EventStartKyoku, Actor: dealer, Dealer: dealer,
		RoundWind: "E", RoundNumber: 1, Tehais: tehais,
	}
}

// A minimal no-claims round: every seat draws and discards the tile it
// just drew. The driver must coerce every start_kyoku tehai and every
// tsumo tile to the log's declared value and replay the discards with no
// Findings.
func TestVerifyCoercesDealtHandsAndReplaysDiscards(t *testing.T) {
	tehais := [4][]string{
		repeatTile("1m", 13),
		repeatTile("2m", 13),
		repeatTile("3m", 13),
		repeatTile("4m", 13),
	}
	events := []replay.Event{
		startKyoku(0, tehais),
		{Type: replay.EventTsumo, Actor: 0, Tile: "9s"},
		{Type: replay.EventDahai, Actor: 0, Tile: "9s", Tsumogiri: true},
		{Type: replay.EventTsumo, Actor: 1, Tile: "8s"},
		{Type: replay.EventDahai, Actor: 1, Tile: "8s", Tsumogiri: true},
	}

	d := replay.NewDriver(config.Default(), 1)
	report, err := d.Verify(events)
	require.NoError(t, err)
	assert.True(t, report.OK(), "findings: %+v", report.Findings)
	assert.Equal(t, 1, report.Rounds)
	// one coercion per seat's start_kyoku tehai, plus one per tsumo tile
	assert.GreaterOrEqual(t, len(report.Coercions), 6)
}

// A dahai for a tile the coerced hand does not contain is rejected by the
// engine and must surface as a Finding, not a silent pass.
func TestVerifyRecordsFindingOnIllegalDiscard(t *testing.T) {
	tehais := [4][]string{
		repeatTile("1m", 13),
		repeatTile("2m", 13),
		repeatTile("3m", 13),
		repeatTile("4m", 13),
	}
	events := []replay.Event{
		startKyoku(0, tehais),
		{Type: replay.EventTsumo, Actor: 0, Tile: "9s"},
		// actor 0's hand is all 1m plus the drawn 9s; 5p was never dealt or drawn.
		{Type: replay.EventDahai, Actor: 0, Tile: "5p"},
	}

	d := replay.NewDriver(config.Default(), 1)
	report, err := d.Verify(events)
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, replay.EventDahai, report.Findings[0].Event)
}

// A tsumo hora whose declared han/fu/points disagree with what the engine
// itself computes for the coerced hand is a scoring Finding.
func TestVerifyRecordsFindingOnScoringMismatch(t *testing.T) {
	tehais := [4][]string{
		{"1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m", "1p", "2p", "3p", "9s"},
		repeatTile("2m", 13),
		repeatTile("3m", 13),
		repeatTile("4m", 13),
	}
	events := []replay.Event{
		startKyoku(0, tehais),
		{Type: replay.EventTsumo, Actor: 0, Tile: "9s"},
		{Type: replay.EventHora, Actor: 0, Target: 0, Tile: "9s", Han: 99, Fu: 99, Points: 999999},
	}

	d := replay.NewDriver(config.Default(), 1)
	report, err := d.Verify(events)
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, replay.EventHora, report.Findings[0].Event)
}

func repeatTile(mjai string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = mjai
	}
	return out
}
