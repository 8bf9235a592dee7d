package yaku

import (
	"github.com/lamyinia/riichi-engine/internal/hand"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

// check evaluates one yaku against a context, returning its han value (0
// for "not satisfied" — also returned as ok=false to disambiguate from a
// genuinely 0-han entry, which does not occur in this registry).
type check struct {
	id ID
	fn func(Context) (han int, ok bool)
}

func groupTiles(g Group) []int {
	if g.Kind == GroupSequence {
		return []int{g.Base, g.Base + 1, g.Base + 2}
	}
	return []int{g.Base}
}

func countConcealedTriplets(groups []Group) int {
	n := 0
	for _, g := range groups {
		if g.Kind == GroupTriplet && !g.Opened {
			n++
		}
	}
	return n
}

func countKans(groups []Group) int {
	n := 0
	for _, g := range groups {
		if g.IsKan {
			n++
		}
	}
	return n
}

func hasSequenceRun(groups []Group, base int) bool {
	for _, g := range groups {
		if g.Kind == GroupSequence && g.Base == base {
			return true
		}
	}
	return false
}

func checkMenzenTsumo(c Context) (int, bool) {
	if c.Concealed && c.Situation.Tsumo {
		return 1, true
	}
	return 0, false
}

func checkRiichi(c Context) (int, bool) {
	if c.Situation.DoubleRiichi {
		return 0, false // scored by DoubleRiichi instead
	}
	if c.Situation.Riichi {
		return 1, true
	}
	return 0, false
}

func checkDoubleRiichi(c Context) (int, bool) {
	if c.Situation.DoubleRiichi {
		return 2, true
	}
	return 0, false
}

func checkIppatsu(c Context) (int, bool) {
	if c.Situation.Ippatsu && (c.Situation.Riichi || c.Situation.DoubleRiichi) {
		return 1, true
	}
	return 0, false
}

func checkHaitei(c Context) (int, bool) {
	if c.Situation.Haitei {
		return 1, true
	}
	return 0, false
}

func checkHoutei(c Context) (int, bool) {
	if c.Situation.Houtei {
		return 1, true
	}
	return 0, false
}

func checkRinshan(c Context) (int, bool) {
	if c.Situation.Rinshan {
		return 1, true
	}
	return 0, false
}

func checkChankan(c Context) (int, bool) {
	if c.Situation.Chankan {
		return 1, true
	}
	return 0, false
}

func checkPinfu(c Context) (int, bool) {
	if c.Concealed && isPinfuShape(c) {
		return 1, true
	}
	return 0, false
}

func checkTanyao(c Context) (int, bool) {
	for tt, n := range c.AllCounts {
		if n > 0 && isYaochuType(tt) {
			return 0, false
		}
	}
	return 1, true
}

func checkIipeiko(c Context) (int, bool) {
	if !c.Concealed || c.Decomp.Shape != hand.Standard {
		return 0, false
	}
	seen := map[int]int{}
	for _, s := range c.Decomp.Sets {
		if s.Kind == hand.Sequence {
			seen[s.Base]++
		}
	}
	dupPairs := 0
	for _, n := range seen {
		dupPairs += n / 2
	}
	if dupPairs == 1 {
		return 1, true
	}
	return 0, false
}

func checkRyanpeiko(c Context) (int, bool) {
	if !c.Concealed || c.Decomp.Shape != hand.Standard {
		return 0, false
	}
	seen := map[int]int{}
	for _, s := range c.Decomp.Sets {
		if s.Kind == hand.Sequence {
			seen[s.Base]++
		}
	}
	dupPairs := 0
	for _, n := range seen {
		dupPairs += n / 2
	}
	if dupPairs == 2 {
		return 1, true
	}
	return 0, false
}

func checkYakuhaiDragon(tt int) func(Context) (int, bool) {
	return func(c Context) (int, bool) {
		for _, g := range c.Groups() {
			if g.Kind == GroupTriplet && g.Base == tt {
				return 1, true
			}
		}
		return 0, false
	}
}

func checkYakuhaiRound(tt int) func(Context) (int, bool) {
	return func(c Context) (int, bool) {
		if c.Situation.RoundWind != tt {
			return 0, false
		}
		for _, g := range c.Groups() {
			if g.Kind == GroupTriplet && g.Base == tt {
				return 1, true
			}
		}
		return 0, false
	}
}

func checkYakuhaiSeat(tt int) func(Context) (int, bool) {
	return func(c Context) (int, bool) {
		if c.Situation.PlayerWind != tt {
			return 0, false
		}
		for _, g := range c.Groups() {
			if g.Kind == GroupTriplet && g.Base == tt {
				return 1, true
			}
		}
		return 0, false
	}
}

func checkSanshokuDoujun(c Context) (int, bool) {
	groups := c.Groups()
	for base := 0; base < 9; base++ {
		if hasSequenceRun(groups, base) && hasSequenceRun(groups, base+9) && hasSequenceRun(groups, base+18) {
			if c.Concealed {
				return 2, true
			}
			return 1, true
		}
	}
	return 0, false
}

func checkIttsu(c Context) (int, bool) {
	groups := c.Groups()
	for base := 0; base < 27; base += 9 {
		if hasSequenceRun(groups, base) && hasSequenceRun(groups, base+3) && hasSequenceRun(groups, base+6) {
			if c.Concealed {
				return 2, true
			}
			return 1, true
		}
	}
	return 0, false
}

func checkChantaJunchan(c Context) (hanChanta int, okChanta bool, hanJunchan int, okJunchan bool) {
	if c.Decomp.Shape == hand.Kokushi {
		return 0, false, 0, false
	}
	groups := c.Groups()
	noHonor := true
	for _, g := range groups {
		switch g.Kind {
		case GroupSequence:
			rank := g.Base % 9
			if rank != 0 && rank != 6 {
				return 0, false, 0, false
			}
		default:
			if !isYaochuType(g.Base) {
				return 0, false, 0, false
			}
			if g.Base >= 27 {
				noHonor = false
			}
		}
	}
	if !noHonor {
		if c.Concealed {
			return 2, true, 0, false
		}
		return 1, true, 0, false
	}
	if c.Concealed {
		return 0, false, 3, true
	}
	return 0, false, 2, true
}

func checkChanta(c Context) (int, bool) {
	h, ok, _, _ := checkChantaJunchan(c)
	return h, ok
}

func checkJunchan(c Context) (int, bool) {
	_, _, h, ok := checkChantaJunchan(c)
	return h, ok
}

func checkHonroutou(c Context) (int, bool) {
	if c.Decomp.Shape == hand.Kokushi {
		return 0, false
	}
	groups := c.Groups()
	for _, g := range groups {
		if g.Kind == GroupSequence {
			return 0, false
		}
		if !isYaochuType(g.Base) {
			return 0, false
		}
	}
	return 2, true
}

func suitOf(tt int) tile.Kind {
	switch {
	case tt < 9:
		return tile.Man
	case tt < 18:
		return tile.Pin
	case tt < 27:
		return tile.Sou
	default:
		return tile.Honor
	}
}

func checkHonitsuChinitsu(c Context) (honH int, honOK bool, chinH int, chinOK bool) {
	var suit tile.Kind = -1
	hasHonor := false
	for tt, n := range c.AllCounts {
		if n == 0 {
			continue
		}
		k := suitOf(tt)
		if k == tile.Honor {
			hasHonor = true
			continue
		}
		if suit == -1 {
			suit = k
		} else if suit != k {
			return 0, false, 0, false
		}
	}
	if suit == -1 {
		return 0, false, 0, false // all-honor hands are tsuuiisou, not chinitsu/honitsu
	}
	if hasHonor {
		if c.Concealed {
			return 3, true, 0, false
		}
		return 2, true, 0, false
	}
	if c.Concealed {
		return 0, false, 6, true
	}
	return 0, false, 5, true
}

func checkHonitsu(c Context) (int, bool) {
	h, ok, _, _ := checkHonitsuChinitsu(c)
	return h, ok
}

func checkChinitsu(c Context) (int, bool) {
	_, _, h, ok := checkHonitsuChinitsu(c)
	return h, ok
}

func checkToitoi(c Context) (int, bool) {
	if c.Decomp.Shape != hand.Standard {
		return 0, false
	}
	groups := c.Groups()
	for _, g := range groups {
		if g.Kind == GroupSequence {
			return 0, false
		}
	}
	return 2, true
}

func checkSanankou(c Context) (int, bool) {
	if countConcealedTriplets(c.Groups()) >= 3 {
		return 2, true
	}
	return 0, false
}

func checkSankantsu(c Context) (int, bool) {
	if countKans(c.Groups()) == 3 {
		return 2, true
	}
	return 0, false
}

func dragonTypes() []int { return []int{tile.TypeWhite, tile.TypeGreen, tile.TypeRed} }
func windTypes() []int {
	return []int{tile.TypeEast, tile.TypeSouth, tile.TypeWest, tile.TypeNorth}
}

func checkShousangen(c Context) (int, bool) {
	groups := c.Groups()
	triplets, pair := 0, false
	for _, tt := range dragonTypes() {
		isTriplet, isPair := false, false
		for _, g := range groups {
			if g.Base != tt {
				continue
			}
			if g.Kind == GroupTriplet {
				isTriplet = true
			}
			if g.Kind == GroupPair {
				isPair = true
			}
		}
		if isTriplet {
			triplets++
		}
		if isPair {
			pair = true
		}
	}
	if triplets == 2 && pair {
		return 2, true
	}
	return 0, false
}

func checkShousuushi(c Context) (int, bool) {
	groups := c.Groups()
	triplets, pair := 0, false
	for _, tt := range windTypes() {
		isTriplet, isPair := false, false
		for _, g := range groups {
			if g.Base != tt {
				continue
			}
			if g.Kind == GroupTriplet {
				isTriplet = true
			}
			if g.Kind == GroupPair {
				isPair = true
			}
		}
		if isTriplet {
			triplets++
		}
		if isPair {
			pair = true
		}
	}
	if triplets == 3 && pair {
		return 1, true
	}
	return 0, false
}

func checkDaisuushi(c Context) (int, bool) {
	groups := c.Groups()
	triplets := 0
	for _, tt := range windTypes() {
		for _, g := range groups {
			if g.Base == tt && g.Kind == GroupTriplet {
				triplets++
			}
		}
	}
	if triplets == 4 {
		return 1, true
	}
	return 0, false
}

func checkDaisangen(c Context) (int, bool) {
	groups := c.Groups()
	triplets := 0
	for _, tt := range dragonTypes() {
		for _, g := range groups {
			if g.Base == tt && g.Kind == GroupTriplet {
				triplets++
			}
		}
	}
	if triplets == 3 {
		return 1, true
	}
	return 0, false
}

func checkTsuuiisou(c Context) (int, bool) {
	for tt, n := range c.AllCounts {
		if n > 0 && tt < 27 {
			return 0, false
		}
	}
	return 1, true
}

func checkChinroutou(c Context) (int, bool) {
	for tt, n := range c.AllCounts {
		if n == 0 {
			continue
		}
		if tt >= 27 {
			return 0, false
		}
		r := tt % 9
		if r != 0 && r != 8 {
			return 0, false
		}
	}
	return 1, true
}

var greenTypes = map[int]bool{19: true, 20: true, 21: true, 23: true, 25: true, tile.TypeGreen: true}

func checkRyuuiisou(c Context) (int, bool) {
	for tt, n := range c.AllCounts {
		if n > 0 && !greenTypes[tt] {
			return 0, false
		}
	}
	return 1, true
}

func checkSuuankouSuuankouTanki(c Context) (han int, id ID, ok bool) {
	groups := c.Groups()
	if countConcealedTriplets(groups) != 4 {
		return 0, 0, false
	}
	if c.classifyWaitRaw() == Tanki {
		return 2, SuuankouTanki, true
	}
	return 1, Suuankou, true
}

func checkSuukantsu(c Context) (int, bool) {
	if countKans(c.Groups()) == 4 {
		return 1, true
	}
	return 0, false
}

func checkKokushiKokushi13(c Context) (han int, id ID, ok bool) {
	if c.Decomp.Shape != hand.Kokushi {
		return 0, 0, false
	}
	if c.Decomp.Pair == c.WinType {
		return 2, Kokushi13, true
	}
	return 1, Kokushi, true
}

func checkChuurenJunsei(c Context) (han int, id ID, ok bool) {
	if !c.Concealed || len(c.Melds) != 0 {
		return 0, 0, false
	}
	base := -1
	for s := 0; s < 27; s += 9 {
		nonZero := false
		for r := 0; r < 9; r++ {
			if c.AllCounts[s+r] > 0 {
				nonZero = true
				break
			}
		}
		if nonZero {
			if base != -1 {
				return 0, 0, false
			}
			base = s
		}
	}
	for tt, n := range c.AllCounts {
		if tt < base || tt >= base+9 {
			if n > 0 {
				return 0, 0, false
			}
		}
	}
	if base == -1 {
		return 0, 0, false
	}
	if c.AllCounts[base] < 3 || c.AllCounts[base+8] < 3 {
		return 0, 0, false
	}
	for r := 1; r < 8; r++ {
		if c.AllCounts[base+r] < 1 {
			return 0, 0, false
		}
	}
	pre := c.AllCounts
	pre[c.WinType]--
	canonical := true
	for r := 0; r < 9; r++ {
		want := 1
		if r == 0 || r == 8 {
			want = 3
		}
		if pre[base+r] != want {
			canonical = false
			break
		}
	}
	if canonical {
		return 2, JunseiChuuren, true
	}
	return 1, Chuuren, true
}
