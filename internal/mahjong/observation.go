package mahjong

import (
	"github.com/lamyinia/riichi-engine/internal/meld"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

// PublicState is the table-wide information visible to every seat.
type PublicState struct {
	Discards       [4][]tile.Tile
	Melds          [4][]meld.Meld
	DoraIndicators []tile.Tile
	Scores         [4]int
	Riichi         [4]bool
	Honba          int
	Kyotaku        int
	RoundWind      Wind
	RoundNumber    int
	Dealer         int
	CurrentSeat    int
	Phase          Phase
}

// Observation is returned per actionable seat on every Step/Reset call
// (spec.md §4.7 Observation contract). Non-actionable seats receive no
// entry in the map Step/Reset return.
type Observation struct {
	Seat         int
	Hand         []tile.Tile // concealed tiles plus the drawn tile, if any
	Public       PublicState
	Events       []Event // masked: other seats' start_kyoku tehais hidden
	LegalActions []Action
}

func (eg *RiichiMahjong4p) publicState() PublicState {
	var ps PublicState
	for s := 0; s < 4; s++ {
		ps.Discards[s] = eg.Players[s].Discards
		ps.Melds[s] = eg.Players[s].Melds
		ps.Scores[s] = eg.Players[s].Score
		ps.Riichi[s] = eg.Players[s].Riichi || eg.Players[s].DoubleRiichi
	}
	ps.DoraIndicators = eg.Deck.DoraIndicators()
	ps.Honba = eg.Situation.Honba
	ps.Kyotaku = eg.Situation.RiichiSticks
	ps.RoundWind = eg.Situation.RoundWind
	ps.RoundNumber = eg.Situation.RoundNumber
	ps.Dealer = eg.Situation.DealerSeat
	ps.CurrentSeat = eg.Turn.Current
	ps.Phase = eg.Turn.Phase
	return ps
}

func (eg *RiichiMahjong4p) maskedEvents(seat int) []Event {
	out := make([]Event, len(eg.EventLog))
	for i, ev := range eg.EventLog {
		out[i] = ev.maskFor(seat)
	}
	return out
}

// observations builds the Observation map for every seat whose
// LegalActions is currently non-empty.
func (eg *RiichiMahjong4p) observations() map[int]Observation {
	out := make(map[int]Observation)
	for s := 0; s < 4; s++ {
		legal := eg.LegalActions(s)
		if len(legal) == 0 {
			continue
		}
		out[s] = Observation{
			Seat:         s,
			Hand:         append([]tile.Tile{}, eg.Players[s].AllTiles()...),
			Public:       eg.publicState(),
			Events:       eg.maskedEvents(s),
			LegalActions: legal,
		}
	}
	return out
}
