package mahjong

import "github.com/lamyinia/riichi-engine/internal/tile"

// ActionKind is the tagged-variant discriminator for one seat's step input.
type ActionKind int

const (
	ActionDiscard ActionKind = iota
	ActionChi
	ActionPon
	ActionDaiminkan
	ActionAnkan
	ActionKakan
	ActionRiichi
	ActionRon
	ActionTsumo
	ActionKyushuKyuhai
	ActionPass
)

func (k ActionKind) String() string {
	switch k {
	case ActionDiscard:
		return "discard"
	case ActionChi:
		return "chi"
	case ActionPon:
		return "pon"
	case ActionDaiminkan:
		return "daiminkan"
	case ActionAnkan:
		return "ankan"
	case ActionKakan:
		return "kakan"
	case ActionRiichi:
		return "riichi"
	case ActionRon:
		return "ron"
	case ActionTsumo:
		return "tsumo"
	case ActionKyushuKyuhai:
		return "kyushu_kyuhai"
	case ActionPass:
		return "pass"
	default:
		return "unknown"
	}
}

// Action is one seat's submission to a Step call. Tile is the discarded
// tile (Discard), the claimed tile (Chi/Pon/Daiminkan), the fourth tile
// (Kakan) or any member of the quad (Ankan); it is unused for Riichi, Ron,
// Tsumo, KyushuKyuhai and Pass. Consume is used only for Chi: it lists the
// two concealed tiles that complete the run, and a submitted Chi must match
// one of the legal combinations. For Pon, Daiminkan, Ankan and Kakan,
// Consume is left empty and ignored; the engine takes the matching tiles
// from the caller's hand itself.
type Action struct {
	Kind    ActionKind
	Tile    tile.Tile
	Consume []tile.Tile
}

// Discard builds a plain discard action.
func Discard(t tile.Tile) Action { return Action{Kind: ActionDiscard, Tile: t} }

// Pass builds a pass action for the WaitResponse phase.
func Pass() Action { return Action{Kind: ActionPass} }
