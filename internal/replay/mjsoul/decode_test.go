package mjsoul_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamyinia/riichi-engine/internal/replay"
	"github.com/lamyinia/riichi-engine/internal/replay/mjsoul"
)

const sampleLog = `[
	{"name":"RecordNewRound","data":{"chang":0,"ju":0,"ben":0,"liqibang":0,"tiles":[["1m","2m"],["3p"],["4s"],["1z"]]}},
	{"name":"RecordDealTile","data":{"seat":0,"tile":"0p"}},
	{"name":"RecordDiscardTile","data":{"seat":0,"tile":"0p","moqie":true}},
	{"name":"RecordChiPengGang","data":{"seat":1,"type":1,"tiles":["3p","3p","3p"]}},
	{"name":"RecordAnGangAddGang","data":{"seat":1,"tiles":"4s","type":3}},
	{"name":"RecordHule","data":{"hules":[{"seat":2,"zimo":true,"fans":[1,2],"fu":30,"pointRong":2000}]}},
	{"name":"RecordNoTile","data":{}}
]`

func TestDecodeTranslatesMpszTilesToMjai(t *testing.T) {
	events, err := mjsoul.Decode([]byte(sampleLog), mjsoul.AnkanType2IsConcealed)
	require.NoError(t, err)
	require.Len(t, events, 7)

	assert.Equal(t, replay.EventStartKyoku, events[0].Type)
	assert.Equal(t, "E", events[0].RoundWind)
	assert.Equal(t, []string{"1m", "2m"}, events[0].Tehais[0])

	assert.Equal(t, replay.EventTsumo, events[1].Type)
	assert.Equal(t, "5pr", events[1].Tile) // mjsoul "0p" (red 5p) -> mjai "5pr"

	assert.Equal(t, replay.EventDahai, events[2].Type)
	assert.True(t, events[2].Tsumogiri)

	assert.Equal(t, replay.EventPon, events[3].Type)
	assert.Equal(t, 1, events[3].Actor)

	assert.Equal(t, replay.EventAnkan, events[4].Type) // type 3 always concealed

	assert.Equal(t, replay.EventHora, events[5].Type)
	assert.Equal(t, 3, events[5].Han)
	assert.Equal(t, 30, events[5].Fu)
	assert.Equal(t, 2000, events[5].Points)

	assert.Equal(t, replay.EventRyukyoku, events[6].Type)
}

func TestAnkanType2PolicyDistinguishesKakanFromAnkan(t *testing.T) {
	log := `[{"name":"RecordAnGangAddGang","data":{"seat":0,"tiles":"5m","type":2}}]`

	asConcealed, err := mjsoul.Decode([]byte(log), mjsoul.AnkanType2IsConcealed)
	require.NoError(t, err)
	assert.Equal(t, replay.EventAnkan, asConcealed[0].Type)

	asAdded, err := mjsoul.Decode([]byte(log), mjsoul.AnkanType2IsAdded)
	require.NoError(t, err)
	assert.Equal(t, replay.EventKakan, asAdded[0].Type)
}
