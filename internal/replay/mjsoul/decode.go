// Package mjsoul decodes a MjSoul-dialect record log (one JSON array of
// {name, data} records, majsoul's own "liqi" action-log shape) into the
// same dialect-neutral []replay.Event that internal/replay/mjai produces.
// Tile strings in this dialect already use mpsz notation (e.g. "0p" for
// red 5p), so they are translated through internal/tile's existing
// ParseMPSZ/MJAI pair rather than any new conversion table.
package mjsoul

import (
	"encoding/json"
	"fmt"

	"github.com/lamyinia/riichi-engine/internal/replay"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

// AnkanTypeCodePolicy resolves mjsoul's ambiguous RecordAnGangAddGang type
// code: different client builds have used code 2 for both a concealed kan
// (ankan) and an added kan (kakan). This is explicitly a replay-driver-level
// configuration, never baked into the engine — the open question spec.md's
// Design Notes raise about "two different Ankan type codes".
type AnkanTypeCodePolicy int

const (
	AnkanType2IsConcealed AnkanTypeCodePolicy = iota
	AnkanType2IsAdded
)

var roundWindByChang = [...]string{"E", "S", "W", "N"}

type record struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

type newRoundData struct {
	Chang    int        `json:"chang"`
	Ju       int        `json:"ju"`
	Ben      int        `json:"ben"`
	Liqibang int        `json:"liqibang"`
	Tiles    [][]string `json:"tiles"`
}

type dealTileData struct {
	Seat int    `json:"seat"`
	Tile string `json:"tile"`
}

type discardTileData struct {
	Seat  int    `json:"seat"`
	Tile  string `json:"tile"`
	Moqie bool   `json:"moqie"`
}

type chiPengGangData struct {
	Seat  int      `json:"seat"`
	Type  int      `json:"type"` // 0 = chi, 1 = pon, 2 = daiminkan
	Tiles []string `json:"tiles"`
}

type anGangAddGangData struct {
	Seat  int    `json:"seat"`
	Tiles string `json:"tiles"`
	Type  int    `json:"type"`
}

type huleEntry struct {
	Seat      int   `json:"seat"`
	Zimo      bool  `json:"zimo"`
	Fans      []int `json:"fans"`
	FuCount   int   `json:"fu"`
	PointRong int   `json:"pointRong"`
}

type huleData struct {
	Hules []huleEntry `json:"hules"`
}

// Decode translates a whole mjsoul record array into dialect-neutral
// events. policy resolves the RecordAnGangAddGang ambiguity described on
// AnkanTypeCodePolicy.
func Decode(raw []byte, policy AnkanTypeCodePolicy) ([]replay.Event, error) {
	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("replay/mjsoul: decode records: %w", err)
	}

	var out []replay.Event
	var dealer int
	for i, rec := range records {
		switch rec.Name {
		case "RecordNewRound":
			var d newRoundData
			if err := json.Unmarshal(rec.Data, &d); err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d NewRound: %w", i, err)
			}
			dealer = d.Ju % 4
			var tehais [4][]string
			for s := 0; s < 4 && s < len(d.Tiles); s++ {
				hand, err := translateAll(d.Tiles[s])
				if err != nil {
					return nil, fmt.Errorf("replay/mjsoul: record %d NewRound tehai: %w", i, err)
				}
				tehais[s] = hand
			}
			out = append(out, replay.Event{
				Type:        replay.EventStartKyoku,
				Actor:       dealer,
				Dealer:      dealer,
				RoundWind:   roundWindByChang[d.Chang%4],
				RoundNumber: d.Ju + 1,
				Honba:       d.Ben,
				Kyotaku:     d.Liqibang,
				Tehais:      tehais,
			})

		case "RecordDealTile":
			var d dealTileData
			if err := json.Unmarshal(rec.Data, &d); err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d DealTile: %w", i, err)
			}
			t, err := translate(d.Tile)
			if err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d DealTile: %w", i, err)
			}
			out = append(out, replay.Event{Type: replay.EventTsumo, Actor: d.Seat, Tile: t})

		case "RecordDiscardTile":
			var d discardTileData
			if err := json.Unmarshal(rec.Data, &d); err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d DiscardTile: %w", i, err)
			}
			t, err := translate(d.Tile)
			if err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d DiscardTile: %w", i, err)
			}
			out = append(out, replay.Event{Type: replay.EventDahai, Actor: d.Seat, Tile: t, Tsumogiri: d.Moqie})

		case "RecordChiPengGang":
			var d chiPengGangData
			if err := json.Unmarshal(rec.Data, &d); err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d ChiPengGang: %w", i, err)
			}
			tiles, err := translateAll(d.Tiles)
			if err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d ChiPengGang: %w", i, err)
			}
			if len(tiles) == 0 {
				return nil, fmt.Errorf("replay/mjsoul: record %d ChiPengGang: empty tile list", i)
			}
			called := tiles[len(tiles)-1]
			consumed := tiles[:len(tiles)-1]
			evType := replay.EventChi
			switch d.Type {
			case 1:
				evType = replay.EventPon
			case 2:
				evType = replay.EventDaiminkan
			}
			out = append(out, replay.Event{Type: evType, Actor: d.Seat, Tile: called, Consumed: consumed})

		case "RecordAnGangAddGang":
			var d anGangAddGangData
			if err := json.Unmarshal(rec.Data, &d); err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d AnGangAddGang: %w", i, err)
			}
			t, err := translate(d.Tiles)
			if err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d AnGangAddGang: %w", i, err)
			}
			evType := replay.EventKakan
			if d.Type == 3 || (d.Type == 2 && policy == AnkanType2IsConcealed) {
				evType = replay.EventAnkan
			}
			out = append(out, replay.Event{Type: evType, Actor: d.Seat, Tile: t})

		case "RecordHule":
			var d huleData
			if err := json.Unmarshal(rec.Data, &d); err != nil {
				return nil, fmt.Errorf("replay/mjsoul: record %d Hule: %w", i, err)
			}
			for _, h := range d.Hules {
				han := 0
				for _, f := range h.Fans {
					han += f
				}
				target := h.Seat
				if !h.Zimo {
					target = -1 // discarder identity isn't in this record; driver only compares actor==target for tsumo detection
				}
				out = append(out, replay.Event{
					Type: replay.EventHora, Actor: h.Seat, Target: target,
					Han: han, Fu: h.FuCount, Points: h.PointRong,
				})
			}

		case "RecordNoTile", "RecordLiuJu":
			out = append(out, replay.Event{Type: replay.EventRyukyoku})

		default:
			// unrecognized record kinds (e.g. RecordNewCard, RecordAPI
			// telemetry) carry nothing the engine needs to replay.
		}
	}
	return out, nil
}

func translate(mjsoulTile string) (string, error) {
	t, err := tile.ParseMPSZ(mjsoulTile)
	if err != nil {
		return "", err
	}
	return t.MJAI(), nil
}

func translateAll(tiles []string) ([]string, error) {
	out := make([]string, len(tiles))
	for i, s := range tiles {
		t, err := translate(s)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
