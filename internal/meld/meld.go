// Package meld implements the called-set model (C6): chi, pon, daiminkan,
// kakan and ankan, each carrying its constituent tiles and provenance.
package meld

import (
	"fmt"
	"sort"

	"github.com/lamyinia/riichi-engine/internal/tile"
)

// Kind is the tagged variant discriminator for a called set.
type Kind int

const (
	Chi Kind = iota
	Pon
	Daiminkan
	Kakan
	Ankan
)

func (k Kind) String() string {
	switch k {
	case Chi:
		return "chi"
	case Pon:
		return "pon"
	case Daiminkan:
		return "daiminkan"
	case Kakan:
		return "kakan"
	case Ankan:
		return "ankan"
	default:
		return "unknown"
	}
}

// IsQuad reports whether the meld occupies 4 physical tiles.
func (k Kind) IsQuad() bool { return k == Daiminkan || k == Kakan || k == Ankan }

// Meld is a called set with provenance. Source is -1 for Ankan (no seat
// supplied the call). Called is the tile id that was claimed; it is unset
// (use CalledValid) for Ankan, where no outside tile is involved.
type Meld struct {
	Kind        Kind
	Tiles       []tile.Tile // the 3 or 4 constituent tiles, ascending id order
	Called      tile.Tile   // the claimed tile id; meaningful only if CalledValid
	CalledValid bool
	Source      int // discarder's seat, or -1 (Ankan; also unused for Kakan's original pon source tracking elsewhere)
	Opened      bool
}

// New builds a Meld and fills Opened from Kind (every kind but Ankan is
// opened).
func New(kind Kind, tiles []tile.Tile, called tile.Tile, calledValid bool, source int) Meld {
	sorted := make([]tile.Tile, len(tiles))
	copy(sorted, tiles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return Meld{
		Kind:        kind,
		Tiles:       sorted,
		Called:      called,
		CalledValid: calledValid,
		Source:      source,
		Opened:      kind != Ankan,
	}
}

// Type returns the tile type (0-33) all constituent tiles share, or for Chi
// the type of the lowest tile in the run.
func (m Meld) Type() int {
	if len(m.Tiles) == 0 {
		return -1
	}
	return m.Tiles[0].Type()
}

// IsTriplet reports whether this meld is a pon, ankan or a triplet-shaped
// kan (Daiminkan/Kakan share triplet semantics for yaku purposes once the
// 4th tile is set aside).
func (m Meld) IsTriplet() bool { return m.Kind == Pon || m.Kind.IsQuad() }

// IsConcealedTriplet reports whether this meld counts as an ankou (concealed
// triplet) for sanankou/fu purposes — true only for Ankan, since a
// concealed hand triplet that was never called is represented directly in
// the hand decomposition, not as a Meld.
func (m Meld) IsConcealedTriplet() bool { return m.Kind == Ankan }

// Validate checks constituent-tile arity and homogeneity invariants.
func Validate(m Meld) error {
	switch m.Kind {
	case Chi:
		if len(m.Tiles) != 3 {
			return fmt.Errorf("meld: chi requires 3 tiles, got %d", len(m.Tiles))
		}
		if m.Tiles[0].IsHonor() {
			return fmt.Errorf("meld: chi cannot be formed from honors")
		}
		k := m.Tiles[0].Kind()
		for _, t := range m.Tiles {
			if t.Kind() != k {
				return fmt.Errorf("meld: chi tiles must share a suit")
			}
		}
		r0, r1, r2 := m.Tiles[0].Rank(), m.Tiles[1].Rank(), m.Tiles[2].Rank()
		if !(r1 == r0+1 && r2 == r0+2) {
			return fmt.Errorf("meld: chi ranks must be consecutive, got %d %d %d", r0, r1, r2)
		}
	case Pon:
		if len(m.Tiles) != 3 {
			return fmt.Errorf("meld: pon requires 3 tiles, got %d", len(m.Tiles))
		}
		if err := sameType(m.Tiles); err != nil {
			return err
		}
	case Daiminkan, Kakan, Ankan:
		if len(m.Tiles) != 4 {
			return fmt.Errorf("meld: %s requires 4 tiles, got %d", m.Kind, len(m.Tiles))
		}
		if err := sameType(m.Tiles); err != nil {
			return err
		}
	default:
		return fmt.Errorf("meld: unknown kind %v", m.Kind)
	}
	if m.Kind == Ankan && m.Source >= 0 {
		return fmt.Errorf("meld: ankan must have no source seat")
	}
	if m.Kind == Chi && m.Source < 0 {
		return fmt.Errorf("meld: chi must have a source seat")
	}
	return nil
}

func sameType(tiles []tile.Tile) error {
	tt := tiles[0].Type()
	for _, t := range tiles {
		if t.Type() != tt {
			return fmt.Errorf("meld: tiles must share a tile type")
		}
	}
	return nil
}

// RedFiveCount returns how many of the meld's tiles are red fives.
func (m Meld) RedFiveCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t.IsRedFive() {
			n++
		}
	}
	return n
}
