package mahjong

import (
	"github.com/lamyinia/riichi-engine/internal/hand"
	"github.com/lamyinia/riichi-engine/internal/meld"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

// PlayerState is one seat's full private+public state within a round,
// adapted from the teacher's PlayerImage: same responsibilities (concealed
// tiles, discard pile, melds, riichi/furiten bookkeeping, score), rebuilt
// on top of tile.Tile and meld.Meld instead of the teacher's own types.
type PlayerState struct {
	Seat  int
	Wind  Wind
	Score int

	Concealed []tile.Tile
	Drawn     *tile.Tile
	Melds     []meld.Meld
	Discards  []tile.Tile

	discardedTypes [tile.NumTypes]bool

	Riichi             bool
	DoubleRiichi       bool
	RiichiStage        bool // declared, discard not yet made
	RiichiDiscardIndex int
	Ippatsu            bool

	TemporaryFuriten bool
	PermanentFuriten bool
}

// NewPlayerState creates a fresh seat state at the start of a game.
func NewPlayerState(seat int, wind Wind, startingScore int) *PlayerState {
	return &PlayerState{
		Seat:               seat,
		Wind:               wind,
		Score:              startingScore,
		Concealed:          make([]tile.Tile, 0, 14),
		Melds:              make([]meld.Meld, 0, 4),
		Discards:           make([]tile.Tile, 0, 24),
		RiichiDiscardIndex: -1,
	}
}

// ResetForRound clears everything that does not persist across rounds
// (score does, per spec.md's Lifecycle).
func (p *PlayerState) ResetForRound(wind Wind) {
	p.Wind = wind
	p.Concealed = p.Concealed[:0]
	p.Drawn = nil
	p.Melds = p.Melds[:0]
	p.Discards = p.Discards[:0]
	p.discardedTypes = [tile.NumTypes]bool{}
	p.Riichi = false
	p.DoubleRiichi = false
	p.RiichiStage = false
	p.RiichiDiscardIndex = -1
	p.Ippatsu = false
	p.TemporaryFuriten = false
	p.PermanentFuriten = false
}

// Counts returns the 34-type count vector of the concealed hand, including
// the drawn tile if one is held.
func (p *PlayerState) Counts() hand.Counts {
	all := make([]tile.Tile, 0, len(p.Concealed)+1)
	all = append(all, p.Concealed...)
	if p.Drawn != nil {
		all = append(all, *p.Drawn)
	}
	return hand.FromTiles(all)
}

// SetsNeeded is how many concealed sets the decomposer must still find,
// i.e. 4 minus the melds already called (each meld, including a kan,
// occupies exactly one of the four set slots).
func (p *PlayerState) SetsNeeded() int { return 4 - len(p.Melds) }

// Draw appends a newly drawn tile, replacing any previous undiscarded one.
// A fresh draw always follows a discard, so Drawn is nil beforehand.
func (p *PlayerState) Draw(t tile.Tile) { p.Drawn = &t }

// AllTiles returns concealed tiles plus the drawn tile, the 14-tile hand a
// discard/ankan/kakan/riichi decision is made against.
func (p *PlayerState) AllTiles() []tile.Tile {
	if p.Drawn == nil {
		return p.Concealed
	}
	out := make([]tile.Tile, 0, len(p.Concealed)+1)
	out = append(out, p.Concealed...)
	out = append(out, *p.Drawn)
	return out
}

// Discard removes t from the hand (drawn tile folded in first) and appends
// it to the discard pile.
func (p *PlayerState) Discard(t tile.Tile) bool {
	p.AbsorbDrawn()
	if !p.removeConcealed(t) {
		return false
	}
	p.Discards = append(p.Discards, t)
	p.discardedTypes[t.Type()] = true
	return true
}

func (p *PlayerState) removeConcealed(t tile.Tile) bool {
	for i, c := range p.Concealed {
		if c == t {
			p.Concealed = append(p.Concealed[:i], p.Concealed[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveFromHand removes t from concealed+drawn tiles (used when forming a
// meld, which consumes tiles without discarding them).
func (p *PlayerState) RemoveFromHand(t tile.Tile) bool {
	if p.Drawn != nil && *p.Drawn == t {
		p.Drawn = nil
		return true
	}
	return p.removeConcealed(t)
}

// AbsorbDrawn folds an undiscarded drawn tile back into the concealed hand,
// used when a meld is called from a tile other than the one just drawn.
func (p *PlayerState) AbsorbDrawn() {
	if p.Drawn != nil {
		p.Concealed = append(p.Concealed, *p.Drawn)
		p.Drawn = nil
	}
}

// HasDiscarded reports whether the seat has ever discarded a tile of type tt.
func (p *PlayerState) HasDiscarded(tt int) bool { return p.discardedTypes[tt] }

// IsMenzen reports whether every meld (if any) is concealed (ankan only).
func (p *PlayerState) IsMenzen() bool {
	for _, m := range p.Melds {
		if m.Opened {
			return false
		}
	}
	return true
}
