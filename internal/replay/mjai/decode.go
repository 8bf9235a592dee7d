// Package mjai decodes a newline-delimited MJAI event log into
// []replay.Event. The wire shape is a typed-record-per-line idiom, the same
// shape as the teacher's push.go DTOs (RoundStartDTO, DiscardTileDTO, ...)
// projected from engine state; here it runs in reverse, decoding records
// into the shared replay.Event instead of building them from a live round.
package mjai

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lamyinia/riichi-engine/internal/replay"
)

// wireEvent is every field any MJAI record kind might carry; unused fields
// for a given "type" are simply absent from that line.
type wireEvent struct {
	Type        string      `json:"type"`
	Actor       int         `json:"actor"`
	Target      int         `json:"target"`
	Pai         string      `json:"pai"`
	Consumed    []string    `json:"consumed"`
	Tsumogiri   bool        `json:"tsumogiri"`
	Tehais      [4][]string `json:"tehais"`
	RoundWind   string      `json:"bakaze"`
	RoundNumber int         `json:"kyoku"`
	Honba       int         `json:"honba"`
	Kyotaku     int         `json:"kyotaku"`
	Dealer      int         `json:"oya"`
	Yaku        []int       `json:"yaku"`
	Han         int         `json:"han"`
	Fu          int         `json:"fu"`
	Points      int         `json:"points"`
}

// Decode reads one JSON record per line and projects each into a
// replay.Event. A blank line is skipped (some exporters trail the file with
// one).
func Decode(r io.Reader) ([]replay.Event, error) {
	var out []replay.Event
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var w wireEvent
		if err := json.Unmarshal(line, &w); err != nil {
			return nil, fmt.Errorf("replay/mjai: line %d: %w", lineNo, err)
		}
		out = append(out, replay.Event{
			Type:        replay.EventType(w.Type),
			Actor:       w.Actor,
			Target:      w.Target,
			Tile:        w.Pai,
			Consumed:    w.Consumed,
			Tsumogiri:   w.Tsumogiri,
			Tehais:      w.Tehais,
			RoundWind:   w.RoundWind,
			RoundNumber: w.RoundNumber,
			Honba:       w.Honba,
			Kyotaku:     w.Kyotaku,
			Dealer:      w.Dealer,
			Yaku:        w.Yaku,
			Han:         w.Han,
			Fu:          w.Fu,
			Points:      w.Points,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay/mjai: scan: %w", err)
	}
	return out, nil
}

// DecodeBytes is a convenience wrapper for callers already holding the
// whole log in memory (e.g. an HTTP request body).
func DecodeBytes(b []byte) ([]replay.Event, error) {
	return Decode(bytes.NewReader(b))
}
