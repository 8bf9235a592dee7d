package tile

import "fmt"

// ParsePaishan parses a compact wall notation: runs of digits followed by a
// suit letter (m/p/s/z), same grammar as a hand's MPSZ body but covering an
// arbitrary number of tiles (typically the full 136-tile wall). Duplicate
// symbols are disambiguated by sequential assignment within each tile type
// in ascending physical-id order, except that "0x" is always forced to that
// suit's red id and "5x" always skips it, drawing only from the three plain
// copies.
func ParsePaishan(s string) ([]Tile, error) {
	var out []Tile
	// cursor[tt] = next copy index (0..3) to hand out for tile type tt,
	// used for every type except the three suit-5 types, which use
	// fiveCursor/redUsed instead.
	var cursor [NumTypes]int
	var fiveCursor [3]int // per suit: next plain-copy index, 0..2 -> ids base+17,18,19
	var redUsed [3]bool

	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return nil, fmt.Errorf("tile: paishan: expected digit run at byte %d in %q", start, s)
		}
		digits := s[start:i]
		if i >= len(s) {
			return nil, fmt.Errorf("tile: paishan: digit run %q missing suit letter", digits)
		}
		suitCh := s[i]
		i++

		var suitIdx int
		isHonor := false
		switch suitCh {
		case 'm':
			suitIdx = 0
		case 'p':
			suitIdx = 1
		case 's':
			suitIdx = 2
		case 'z':
			isHonor = true
		default:
			return nil, fmt.Errorf("tile: paishan: invalid suit %q", suitCh)
		}

		for _, d := range digits {
			n := int(d - '0')
			if isHonor {
				if n < 1 || n > 7 {
					return nil, fmt.Errorf("tile: paishan: invalid honor number %d", n)
				}
				tt := TypeEast + (n - 1)
				if cursor[tt] >= 4 {
					return nil, fmt.Errorf("tile: paishan: too many copies of honor %d", n)
				}
				out = append(out, Tile(108+(n-1)*4+cursor[tt]))
				cursor[tt]++
				continue
			}
			base := suitIdx * 36
			switch {
			case n == 0:
				if redUsed[suitIdx] {
					return nil, fmt.Errorf("tile: paishan: duplicate red five in suit %q", suitCh)
				}
				redUsed[suitIdx] = true
				out = append(out, Tile(base+16))
			case n == 5:
				if fiveCursor[suitIdx] >= 3 {
					return nil, fmt.Errorf("tile: paishan: too many plain fives in suit %q", suitCh)
				}
				out = append(out, Tile(base+17+fiveCursor[suitIdx]))
				fiveCursor[suitIdx]++
			case n >= 1 && n <= 9:
				tt := suitIdx*9 + (n - 1)
				if cursor[tt] >= 4 {
					return nil, fmt.Errorf("tile: paishan: too many copies of %d%c", n, suitCh)
				}
				out = append(out, Tile(base+(n-1)*4+cursor[tt]))
				cursor[tt]++
			default:
				return nil, fmt.Errorf("tile: paishan: invalid number %d", n)
			}
		}
	}
	return out, nil
}
