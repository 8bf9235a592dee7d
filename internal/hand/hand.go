// Package hand implements the hand decomposer (C2): enumeration of every
// valid (4 sets + 1 pair), chiitoitsu, or kokushi musou decomposition of a
// 14-tile concealed count vector.
package hand

import "github.com/lamyinia/riichi-engine/internal/tile"

// Counts is a count vector over the 34 tile types.
type Counts [tile.NumTypes]int

// FromTiles builds a Counts vector from a slice of 136-ids.
func FromTiles(tiles []tile.Tile) Counts {
	var c Counts
	for _, t := range tiles {
		c[t.Type()]++
	}
	return c
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Shape is the family of a decomposition.
type Shape int

const (
	Standard Shape = iota
	Chiitoitsu
	Kokushi
)

// SetKind distinguishes a sequence from a triplet within a Standard shape.
type SetKind int

const (
	Sequence SetKind = iota
	Triplet
)

// Set is one concealed meld found by the decomposer (melds already called
// by the player are not part of this search — see Decompose's setsNeeded).
type Set struct {
	Kind SetKind
	Base int // tile type; for Sequence, the lowest tile type in the run
}

// Decomposition is one complete, valid interpretation of a hand.
type Decomposition struct {
	Shape Shape
	Pair  int   // Standard: the pair's tile type. Kokushi: the duplicated tile type.
	Sets  []Set // Standard only: the concealed sets found by the search
	Pairs []int // Chiitoitsu only: the 7 distinct pair tile types, ascending
}

// Decompose enumerates every valid decomposition of counts given that
// setsNeeded concealed sets remain to be found (4 minus the number of melds
// the player has already called; each meld, including ankan, occupies one
// of the four set slots). Chiitoitsu and kokushi are only considered when
// setsNeeded == 4 (fully concealed hand, no melds at all).
func Decompose(counts Counts, setsNeeded int) []Decomposition {
	var results []Decomposition
	results = append(results, standardDecompositions(counts, setsNeeded)...)
	if setsNeeded == 4 {
		if d, ok := chiitoitsuDecomposition(counts); ok {
			results = append(results, d)
		}
		if d, ok := kokushiDecomposition(counts); ok {
			results = append(results, d)
		}
	}
	return results
}

func standardDecompositions(counts Counts, setsNeeded int) []Decomposition {
	if counts.Total() != setsNeeded*3+2 {
		return nil
	}
	var results []Decomposition
	for tt := 0; tt < tile.NumTypes; tt++ {
		if counts[tt] < 2 {
			continue
		}
		work := counts
		work[tt] -= 2
		searchSets(work, setsNeeded, nil, tt, &results)
	}
	return results
}

func searchSets(counts Counts, remaining int, acc []Set, pairType int, results *[]Decomposition) {
	if remaining == 0 {
		for _, c := range counts {
			if c != 0 {
				return
			}
		}
		cp := make([]Set, len(acc))
		copy(cp, acc)
		*results = append(*results, Decomposition{Shape: Standard, Pair: pairType, Sets: cp})
		return
	}

	idx := -1
	for i := 0; i < tile.NumTypes; i++ {
		if counts[i] > 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	if counts[idx] >= 3 {
		work := counts
		work[idx] -= 3
		searchSets(work, remaining-1, appendSet(acc, Set{Kind: Triplet, Base: idx}), pairType, results)
	}

	if idx < 27 { // suit tile: sequences never span honors
		rankIdx := idx % 9
		if rankIdx <= 6 && counts[idx] >= 1 && counts[idx+1] >= 1 && counts[idx+2] >= 1 {
			work := counts
			work[idx]--
			work[idx+1]--
			work[idx+2]--
			searchSets(work, remaining-1, appendSet(acc, Set{Kind: Sequence, Base: idx}), pairType, results)
		}
	}
}

func appendSet(acc []Set, s Set) []Set {
	out := make([]Set, len(acc)+1)
	copy(out, acc)
	out[len(acc)] = s
	return out
}

func chiitoitsuDecomposition(counts Counts) (Decomposition, bool) {
	var pairs []int
	for tt := 0; tt < tile.NumTypes; tt++ {
		switch counts[tt] {
		case 0:
		case 2:
			pairs = append(pairs, tt)
		default:
			return Decomposition{}, false
		}
	}
	if len(pairs) != 7 {
		return Decomposition{}, false
	}
	return Decomposition{Shape: Chiitoitsu, Pairs: pairs}, true
}

var kokushiTypes = []int{0, 8, 9, 17, 18, 26, tile.TypeEast, tile.TypeSouth, tile.TypeWest, tile.TypeNorth, tile.TypeWhite, tile.TypeGreen, tile.TypeRed}

func isKokushiType(tt int) bool {
	for _, k := range kokushiTypes {
		if k == tt {
			return true
		}
	}
	return false
}

func kokushiDecomposition(counts Counts) (Decomposition, bool) {
	dup := -1
	for tt := 0; tt < tile.NumTypes; tt++ {
		c := counts[tt]
		if c == 0 {
			continue
		}
		if !isKokushiType(tt) {
			return Decomposition{}, false
		}
		switch c {
		case 1:
		case 2:
			if dup != -1 {
				return Decomposition{}, false
			}
			dup = tt
		default:
			return Decomposition{}, false
		}
	}
	if dup == -1 {
		return Decomposition{}, false
	}
	for _, tt := range kokushiTypes {
		if counts[tt] == 0 {
			return Decomposition{}, false
		}
	}
	return Decomposition{Shape: Kokushi, Pair: dup}, true
}

// IsTenpai reports whether counts (a 13-tile concealed hand, setsNeeded
// concealed sets short of complete) is one tile away from at least one
// valid decomposition, and returns the waiting tile types.
func IsTenpai(counts Counts, setsNeeded int) (waits []int, tenpai bool) {
	for tt := 0; tt < tile.NumTypes; tt++ {
		if counts[tt] >= 4 {
			continue
		}
		trial := counts
		trial[tt]++
		if len(Decompose(trial, setsNeeded)) > 0 {
			waits = append(waits, tt)
		}
	}
	return waits, len(waits) > 0
}
