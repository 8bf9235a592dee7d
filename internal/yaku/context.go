package yaku

import (
	"github.com/lamyinia/riichi-engine/internal/hand"
	"github.com/lamyinia/riichi-engine/internal/meld"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

// WaitKind classifies how the winning tile completed the hand.
type WaitKind int

const (
	Ryanmen WaitKind = iota
	Kanchan
	Penchan
	Tanki
	Shanpon
)

// Situation carries the situational flags and seat context a winning hand
// is evaluated against. It is supplied by the caller (the engine, or a
// replay driver reconstructing a historical win) rather than derived here.
type Situation struct {
	Tsumo        bool
	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool
	Haitei       bool // tsumo on the last drawable tile
	Houtei       bool // ron on the last discard
	Rinshan      bool // tsumo after a kan replacement draw
	Chankan      bool // ron on a tile another player added to a pon (kakan robbed)
	PlayerWind   int  // tile type, TypeEast..TypeNorth
	RoundWind    int  // tile type, TypeEast..TypeNorth
}

// GroupKind distinguishes the three physical shapes a finished hand is
// built from, spanning both concealed sets and called melds uniformly.
type GroupKind int

const (
	GroupSequence GroupKind = iota
	GroupTriplet
	GroupPair
)

// Group is one tile-group of a finished hand, concealed or called,
// normalized so every yaku/fu predicate can walk a single list instead of
// special-casing melds against decomposition sets.
type Group struct {
	Kind       GroupKind
	Base       int // tile type; for a sequence, the lowest tile type in the run
	Opened     bool
	IsKan      bool
	ContainsWin bool
}

// Context is everything the evaluator needs for one candidate decomposition
// of one winning hand.
type Context struct {
	Decomp      hand.Decomposition
	AllCounts   hand.Counts // concealed tiles + win tile + every meld tile, full 14-tile-equivalent shape
	Melds       []meld.Meld
	WinTile     tile.Tile
	WinType     int
	Concealed   bool // no opened (non-ankan) melds
	Situation   Situation
	DoraIndicators []tile.Tile
	UraIndicators  []tile.Tile
	RedFiveCount   int // concealed + win tile + meld red fives, total
}

// Groups builds the unified group list for this context's decomposition.
// A concealed triplet that was completed by ron on a shanpon wait is
// reported as Opened: true, matching the standard scoring convention that
// such a triplet counts as a minkou for sanankou/fu purposes even though
// the hand itself stays menzen.
func (c Context) Groups() []Group {
	var groups []Group
	wait := c.classifyWaitRaw()

	switch c.Decomp.Shape {
	case hand.Chiitoitsu:
		for _, p := range c.Decomp.Pairs {
			groups = append(groups, Group{Kind: GroupPair, Base: p, ContainsWin: p == c.WinType})
		}
		return groups
	case hand.Kokushi:
		groups = append(groups, Group{Kind: GroupPair, Base: c.Decomp.Pair, ContainsWin: c.Decomp.Pair == c.WinType})
		return groups
	}

	groups = append(groups, Group{Kind: GroupPair, Base: c.Decomp.Pair, ContainsWin: c.Decomp.Pair == c.WinType})
	for _, s := range c.Decomp.Sets {
		g := Group{Base: s.Base}
		switch s.Kind {
		case hand.Sequence:
			g.Kind = GroupSequence
			g.ContainsWin = c.WinType >= s.Base && c.WinType <= s.Base+2
		case hand.Triplet:
			g.Kind = GroupTriplet
			g.ContainsWin = s.Base == c.WinType
			if g.ContainsWin && wait == Shanpon && !c.Situation.Tsumo {
				g.Opened = true
			}
		}
		groups = append(groups, g)
	}
	for _, m := range c.Melds {
		g := Group{Opened: m.Opened, IsKan: m.Kind.IsQuad(), Base: m.Type()}
		switch m.Kind {
		case meld.Chi:
			g.Kind = GroupSequence
		default:
			g.Kind = GroupTriplet
		}
		groups = append(groups, g)
	}
	return groups
}

// WaitKind classifies the winning tile's wait shape. Chiitoitsu and kokushi
// are always reported as Tanki (they have no fu relevance beyond the fixed
// chiitoitsu base, but callers may still want a label).
func (c Context) WaitKind() WaitKind { return c.classifyWaitRaw() }

func (c Context) classifyWaitRaw() WaitKind {
	if c.Decomp.Shape != hand.Standard {
		return Tanki
	}
	if c.Decomp.Pair == c.WinType {
		return Tanki
	}
	for _, s := range c.Decomp.Sets {
		switch s.Kind {
		case hand.Triplet:
			if s.Base == c.WinType {
				return Shanpon
			}
		case hand.Sequence:
			if c.WinType < s.Base || c.WinType > s.Base+2 {
				continue
			}
			offset := c.WinType - s.Base
			rankOfBase := s.Base % 9
			switch offset {
			case 1:
				return Kanchan
			case 0:
				if rankOfBase == 6 { // run is 7-8-9, win is the 7
					return Penchan
				}
				return Ryanmen
			case 2:
				if rankOfBase == 0 { // run is 1-2-3, win is the 3
					return Penchan
				}
				return Ryanmen
			}
		}
	}
	return Ryanmen
}

// doraHits counts how many of the hand's tiles match the dora type each
// indicator in indicators points to.
func (c Context) doraHits(indicators []tile.Tile) int {
	n := 0
	for _, ind := range indicators {
		n += c.AllCounts[ind.CyclicDoraNext()]
	}
	return n
}
