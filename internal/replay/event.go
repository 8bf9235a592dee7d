// Package replay implements the replay verification driver (C8): it
// replays a dialect-decoded event log through a fresh internal/mahjong
// engine, asserting every hora record's han/fu/points against what
// internal/agari recomputes, and reports mismatches instead of aborting on
// the first one. Grounded on the teacher's persist.go event-recording
// idiom (AddEvent(type, actor, data)), adapted from "write to Mongo" to
// "build/compare event records in memory".
package replay

// EventType names one dialect-neutral event kind. Values mirror
// internal/mahjong's MJAI-dialect vocabulary; both internal/replay/mjai and
// internal/replay/mjsoul decode into this shared vocabulary so driver.go
// never needs to know which dialect produced a log.
type EventType string

const (
	EventStartGame     EventType = "start_game"
	EventStartKyoku    EventType = "start_kyoku"
	EventTsumo         EventType = "tsumo"
	EventDahai         EventType = "dahai"
	EventChi           EventType = "chi"
	EventPon           EventType = "pon"
	EventDaiminkan     EventType = "daiminkan"
	EventAnkan         EventType = "ankan"
	EventKakan         EventType = "kakan"
	EventReach         EventType = "reach"
	EventReachAccepted EventType = "reach_accepted"
	EventHora          EventType = "hora"
	EventRyukyoku      EventType = "ryukyoku"
	EventEndKyoku      EventType = "end_kyoku"
	EventEndGame       EventType = "end_game"
	EventDora          EventType = "dora"
)

// Event is the dialect-neutral intermediate record both decoders produce.
// Tile/Consumed always hold MJAI-notation strings (mjsoul's own notation is
// translated at decode time), so Driver never deals with dialect-specific
// tile spellings.
type Event struct {
	Type      EventType
	Actor     int
	Target    int
	Tile      string
	Consumed  []string
	Tsumogiri bool
	Tehais    [4][]string // populated on StartKyoku; full, unmasked hands

	RoundWind   string // "E", "S", "W", "N" — populated on StartKyoku
	RoundNumber int
	Honba       int
	Kyotaku     int
	Dealer      int

	Yaku   []int
	Han    int
	Fu     int
	Points int
}
