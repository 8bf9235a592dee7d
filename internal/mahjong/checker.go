package mahjong

import (
	"github.com/lamyinia/riichi-engine/internal/agari"
	"github.com/lamyinia/riichi-engine/internal/hand"
	"github.com/lamyinia/riichi-engine/internal/meld"
	"github.com/lamyinia/riichi-engine/internal/score"
	"github.com/lamyinia/riichi-engine/internal/tile"
	"github.com/lamyinia/riichi-engine/internal/yaku"
)

// winningDecomps reports every standard/chiitoitsu/kokushi decomposition of
// seat's current hand plus candidate, ignoring furiten and yaku-shibari —
// used both for the real ron/tsumo check and, per the "furiten beyond the
// legal-action filter" design note, for furiten bookkeeping that must see
// shape-valid wins even when they carry no yaku.
func (eg *RiichiMahjong4p) winningDecomps(seat int, candidate tile.Tile) []hand.Decomposition {
	p := eg.Players[seat]
	all := append(append([]tile.Tile{}, p.Concealed...), candidate)
	if p.Drawn != nil {
		all = append(all, *p.Drawn)
	}
	counts := hand.FromTiles(all)
	return hand.Decompose(counts, p.SetsNeeded())
}

// evaluateWin runs the full agari facade for seat winning on winTile, either
// by tsumo (winTile already in hand, drawn == true) or by ron.
func (eg *RiichiMahjong4p) evaluateWin(seat int, winTile tile.Tile, tsumo bool) (*agari.Verdict, error) {
	p := eg.Players[seat]
	concealed := append([]tile.Tile{}, p.Concealed...)
	if tsumo && p.Drawn != nil && *p.Drawn != winTile {
		concealed = append(concealed, *p.Drawn)
	}
	sit := eg.situationFor(seat, tsumo)
	req := agari.Request{
		Concealed:      concealed,
		Melds:          p.Melds,
		WinTile:        winTile,
		IsDealer:       seat == eg.Situation.DealerSeat,
		Honba:          eg.Situation.Honba,
		Situation:      sit,
		DoraIndicators: eg.Deck.DoraIndicators(),
		UraIndicators:  eg.uraForSeat(seat),
		Rules:          score.Ruleset{KiriageMangan: eg.Rules.KiriageMangan},
	}
	return agari.Evaluate(req)
}

func (eg *RiichiMahjong4p) uraForSeat(seat int) []tile.Tile {
	if !eg.Players[seat].Riichi && !eg.Players[seat].DoubleRiichi {
		return nil
	}
	return eg.Deck.RevealUraDoraIndicators()
}

func (eg *RiichiMahjong4p) situationFor(seat int, tsumo bool) yaku.Situation {
	p := eg.Players[seat]
	return yaku.Situation{
		Tsumo:        tsumo,
		Riichi:       p.Riichi,
		DoubleRiichi: p.DoubleRiichi,
		Ippatsu:      p.Ippatsu,
		Haitei:       tsumo && eg.Deck.Haitei(),
		Houtei:       !tsumo && eg.lastDiscardWasHaitei,
		Rinshan:      tsumo && eg.drewFromDeadWall,
		Chankan:      !tsumo && eg.chankanInProgress,
		PlayerWind:   p.Wind.Type(),
		RoundWind:    eg.Situation.RoundWind.Type(),
	}
}

// canRon reports whether seat can declare ron on candidate: the hand must
// be shape-valid and yaku-bearing, and seat must not be in furiten.
func (eg *RiichiMahjong4p) canRon(seat int, candidate tile.Tile) (*agari.Verdict, bool) {
	p := eg.Players[seat]
	if p.PermanentFuriten || p.TemporaryFuriten {
		return nil, false
	}
	v, err := eg.evaluateWin(seat, candidate, false)
	if err != nil {
		return nil, false
	}
	return v, true
}

// canTsumo reports whether seat can declare tsumo on the tile just drawn.
func (eg *RiichiMahjong4p) canTsumo(seat int) (*agari.Verdict, bool) {
	p := eg.Players[seat]
	if p.Drawn == nil {
		return nil, false
	}
	v, err := eg.evaluateWin(seat, *p.Drawn, true)
	if err != nil {
		return nil, false
	}
	return v, true
}

// wouldWinIgnoringYaku reports a shape-valid win on candidate regardless of
// yaku-shibari or furiten, for furiten bookkeeping.
func (eg *RiichiMahjong4p) wouldWinIgnoringYaku(seat int, candidate tile.Tile) bool {
	return len(eg.winningDecomps(seat, candidate)) > 0
}

// canPon reports whether seat holds at least 2 tiles matching t's type.
func (eg *RiichiMahjong4p) canPon(seat int, t tile.Tile) bool {
	if eg.Players[seat].Riichi {
		return false
	}
	return countType(eg.Players[seat].Concealed, t.Type()) >= 2
}

// canDaiminkan reports whether seat holds 3 tiles matching t's type.
func (eg *RiichiMahjong4p) canDaiminkan(seat int, t tile.Tile) bool {
	if eg.Players[seat].Riichi {
		return false
	}
	return countType(eg.Players[seat].Concealed, t.Type()) >= 3
}

// canChi enumerates every sequence the caller can legally form with t,
// returning the two hand tiles each combination would consume.
func (eg *RiichiMahjong4p) canChi(seat int, t tile.Tile) [][]tile.Tile {
	if eg.Players[seat].Riichi || t.IsHonor() {
		return nil
	}
	concealed := eg.Players[seat].Concealed
	rank := t.Rank()
	suitBase := t.Type() - (rank - 1)
	var combos [][]tile.Tile

	tryOffsets := func(offsets [2]int) {
		if rank+offsets[0] < 1 || rank+offsets[1] < 1 || rank+offsets[0] > 9 || rank+offsets[1] > 9 {
			return
		}
		tt0 := suitBase + (rank - 1 + offsets[0])
		tt1 := suitBase + (rank - 1 + offsets[1])
		m0, ok0 := findByType(concealed, tt0)
		if !ok0 {
			return
		}
		remaining := removeOne(concealed, m0)
		m1, ok1 := findByType(remaining, tt1)
		if !ok1 {
			return
		}
		combos = append(combos, []tile.Tile{m0, m1})
	}
	tryOffsets([2]int{-2, -1}) // t is the high tile: n-2,n-1,n
	tryOffsets([2]int{-1, 1})  // t is the middle tile: n-1,n,n+1
	tryOffsets([2]int{1, 2})   // t is the low tile: n,n+1,n+2
	return combos
}

// canAnkan returns the tile types for which seat holds all 4 copies
// concealed (including a just-drawn 4th copy).
func (eg *RiichiMahjong4p) canAnkan(seat int) []int {
	p := eg.Players[seat]
	counts := p.Counts()
	var types []int
	for tt := 0; tt < tile.NumTypes; tt++ {
		if counts[tt] == 4 {
			types = append(types, tt)
		}
	}
	return types
}

// canKakan returns the tile types for which seat has an existing Pon and
// holds the 4th copy in hand.
func (eg *RiichiMahjong4p) canKakan(seat int) []int {
	p := eg.Players[seat]
	var types []int
	for _, m := range p.Melds {
		if m.Kind != meld.Pon {
			continue
		}
		tt := m.Type()
		if countType(p.AllTiles(), tt) >= 1 {
			types = append(types, tt)
		}
	}
	return types
}

func countType(tiles []tile.Tile, tt int) int {
	n := 0
	for _, t := range tiles {
		if t.Type() == tt {
			n++
		}
	}
	return n
}

func findByType(tiles []tile.Tile, tt int) (tile.Tile, bool) {
	for _, t := range tiles {
		if t.Type() == tt {
			return t, true
		}
	}
	return 0, false
}

func removeOne(tiles []tile.Tile, t tile.Tile) []tile.Tile {
	out := make([]tile.Tile, 0, len(tiles)-1)
	removed := false
	for _, c := range tiles {
		if !removed && c == t {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}
