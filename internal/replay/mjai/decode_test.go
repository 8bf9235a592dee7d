package mjai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi-engine/internal/replay"
	"github.com/lamyinia/riichi-engine/internal/replay/mjai"
)

func TestDecodeParsesOneRecordPerLine(t *testing.T) {
	log := strings.Join([]string{
		`{"type":"start_kyoku","bakaze":"E","kyoku":1,"oya":0}`,
		`{"type":"tsumo","actor":0,"pai":"5mr"}`,
		`{"type":"dahai","actor":0,"pai":"5mr","tsumogiri":true}`,
		``,
	}, "\n")

	events, err := mjai.Decode(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, replay.EventStartKyoku, events[0].Type)
	assert.Equal(t, "E", events[0].RoundWind)
	assert.Equal(t, 0, events[0].Dealer)
	assert.Equal(t, replay.EventTsumo, events[1].Type)
	assert.Equal(t, "5mr", events[1].Tile)
	assert.Equal(t, replay.EventDahai, events[2].Type)
	assert.True(t, events[2].Tsumogiri)
}

func TestDecodeRejectsMalformedLine(t *testing.T) {
	_, err := mjai.Decode(strings.NewReader(`not json`))
	assert.Error(t, err)
}
