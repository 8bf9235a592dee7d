package yaku

import "github.com/lamyinia/riichi-engine/internal/hand"

func isYaochuType(tt int) bool {
	if tt >= 27 {
		return true
	}
	r := tt % 9
	return r == 0 || r == 8
}

// Fu computes the fu score for this context's decomposition, rounded up to
// the nearest 10 (except the fixed chiitoitsu value, which is already a
// multiple of 5 short of 10 by convention and rounds to 25 exactly).
func Fu(c Context) int {
	if c.Decomp.Shape == hand.Chiitoitsu {
		return 25
	}
	if c.Decomp.Shape == hand.Kokushi {
		return 0
	}

	wait := c.classifyWaitRaw()
	if isPinfuShape(c) {
		if c.Situation.Tsumo {
			return 20
		}
		return 30
	}

	fu := 20
	if c.Situation.Tsumo {
		fu += 2
	} else if c.Concealed {
		fu += 10 // menzen ron bonus
	}

	groups := c.Groups()
	for _, g := range groups {
		switch g.Kind {
		case GroupPair:
			fu += pairFu(g.Base, c.Situation)
		case GroupTriplet:
			fu += meldFu(g)
		}
	}

	switch wait {
	case Kanchan, Penchan, Tanki:
		fu += 2
	}

	rem := fu % 10
	if rem != 0 {
		fu += 10 - rem
	}
	return fu
}

func pairFu(tt int, sit Situation) int {
	n := 0
	switch tt {
	case 31, 32, 33: // white, green, red dragons
		n += 2
	}
	if tt == sit.RoundWind {
		n += 2
	}
	if tt == sit.PlayerWind {
		n += 2
	}
	return n
}

func meldFu(g Group) int {
	base := 2
	if !g.Opened {
		base = 4
	}
	if g.IsKan {
		base *= 4
	}
	if isYaochuType(g.Base) {
		base *= 2
	}
	return base
}

// isPinfuShape reports whether the decomposition, independent of the
// pinfu yaku's menzen requirement, has the all-sequence / non-value-pair /
// ryanmen shape that pinfu needs. Used both by the Pinfu yaku check and by
// Fu's special-cased scoring.
func isPinfuShape(c Context) bool {
	if c.Decomp.Shape != hand.Standard {
		return false
	}
	if len(c.Melds) != 0 {
		return false
	}
	for _, s := range c.Decomp.Sets {
		if s.Kind != hand.Sequence {
			return false
		}
	}
	if pairFu(c.Decomp.Pair, c.Situation) != 0 {
		return false
	}
	return c.classifyWaitRaw() == Ryanmen
}
