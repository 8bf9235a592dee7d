package mahjong

import (
	"github.com/lamyinia/riichi-engine/internal/hand"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

// LegalActions returns the actions available to seat under the current
// phase. Only the acting seat gets a non-empty list during PhaseWaitAct;
// only reacting seats get one during PhaseWaitResponse.
func (eg *RiichiMahjong4p) LegalActions(seat int) []Action {
	if eg.Turn.Phase == PhaseWaitAct {
		if seat != eg.Turn.Current {
			return nil
		}
		return eg.waitActOptions(seat)
	}
	if seat == eg.lastDiscardSeat {
		return nil
	}
	return eg.reactionOptions(seat)
}

func (eg *RiichiMahjong4p) waitActOptions(seat int) []Action {
	p := eg.Players[seat]
	var ops []Action

	if p.RiichiStage {
		// between declaring and discarding, only the riichi discard and
		// (rarely) a tsumo on the drawn tile are legal.
		if _, ok := eg.canTsumo(seat); ok {
			ops = append(ops, Action{Kind: ActionTsumo})
		}
		if p.Drawn != nil {
			ops = append(ops, Discard(*p.Drawn))
		}
		return ops
	}

	for _, t := range p.AllTiles() {
		ops = append(ops, Discard(t))
	}

	if _, ok := eg.canTsumo(seat); ok {
		ops = append(ops, Action{Kind: ActionTsumo})
	}

	for _, tt := range eg.canAnkan(seat) {
		ops = append(ops, Action{Kind: ActionAnkan, Tile: firstOfType(p.AllTiles(), tt)})
	}
	for _, tt := range eg.canKakan(seat) {
		ops = append(ops, Action{Kind: ActionKakan, Tile: firstOfType(p.AllTiles(), tt)})
	}

	if eg.canDeclareRiichi(seat) {
		ops = append(ops, Action{Kind: ActionRiichi})
	}

	if eg.canKyushuKyuhai(seat) {
		ops = append(ops, Action{Kind: ActionKyushuKyuhai})
	}

	return ops
}

func (eg *RiichiMahjong4p) reactionOptions(seat int) []Action {
	discarder := eg.lastDiscardSeat
	t := eg.lastDiscard
	var ops []Action

	if _, ok := eg.canRon(seat, t); ok {
		ops = append(ops, Action{Kind: ActionRon, Tile: t})
	}
	if !eg.kakanChankanOnly {
		if eg.canPon(seat, t) {
			ops = append(ops, Action{Kind: ActionPon, Tile: t})
		}
		if eg.canDaiminkan(seat, t) {
			ops = append(ops, Action{Kind: ActionDaiminkan, Tile: t})
		}
		if (discarder+1)%4 == seat {
			for _, combo := range eg.canChi(seat, t) {
				ops = append(ops, Action{Kind: ActionChi, Tile: t, Consume: combo})
			}
		}
	}
	if len(ops) > 0 {
		ops = append(ops, Pass())
	}
	return ops
}

// canDeclareRiichi checks concealment, funds, live-wall depth and tenpai
// against at least one discard candidate.
func (eg *RiichiMahjong4p) canDeclareRiichi(seat int) bool {
	p := eg.Players[seat]
	if p.Riichi || p.RiichiStage || !p.IsMenzen() {
		return false
	}
	if p.Score < eg.Rules.MinRiichiFunds {
		return false
	}
	if eg.Deck.RemainingLive() < 4 {
		return false
	}
	all := p.AllTiles()
	if len(all) != 14 {
		return false
	}
	for i := range all {
		trial := make([]tile.Tile, 0, 13)
		for j, c := range all {
			if j != i {
				trial = append(trial, c)
			}
		}
		counts := hand.FromTiles(trial)
		if _, ok := hand.IsTenpai(counts, p.SetsNeeded()); ok {
			return true
		}
	}
	return false
}

// canKyushuKyuhai reports whether seat may call kyuushu kyuuhai: the very
// first uninterrupted draw of the round with 9+ distinct terminal/honor
// types in a 14-tile hand no one has called on yet.
func (eg *RiichiMahjong4p) canKyushuKyuhai(seat int) bool {
	if !eg.firstUninterruptedGoAround {
		return false
	}
	p := eg.Players[seat]
	distinct := map[int]bool{}
	for _, t := range p.AllTiles() {
		if t.IsTerminalOrHonor() {
			distinct[t.Type()] = true
		}
	}
	return len(distinct) >= 9
}

func firstOfType(tiles []tile.Tile, tt int) tile.Tile {
	for _, t := range tiles {
		if t.Type() == tt {
			return t
		}
	}
	return 0
}
