// Package mahjong implements the rule engine (C7): a synchronous two-phase
// turn/response state machine driving four PlayerStates, a DeckManager and
// an append-only MJAI-dialect event log, delegating every win/claim
// evaluation to internal/agari. Adapted in place from the teacher's
// runtime/game/engines/mahjong package: same package, same phase
// vocabulary and method names where they still apply (leadTsumoEnding,
// leadRonEnding, finalizeRound, CheckFourKanDraw,
// DeckManager.RevealUraDoraIndicators),
// the async actor-loop/goroutine-ticker machinery dropped per spec.md §5.
package mahjong

import (
	"fmt"

	"github.com/lamyinia/riichi-engine/internal/agari"
	"github.com/lamyinia/riichi-engine/internal/config"
	"github.com/lamyinia/riichi-engine/internal/corelog"
	"github.com/lamyinia/riichi-engine/internal/hand"
	"github.com/lamyinia/riichi-engine/internal/meld"
	"github.com/lamyinia/riichi-engine/internal/tile"
)

// RiichiMahjong4p is one live round (and, across Reset calls, one hanchan)
// of four-player riichi mahjong.
type RiichiMahjong4p struct {
	Players   [4]*PlayerState
	Deck      *DeckManager
	Situation Situation
	Turn      *TurnManager
	Rules     config.Ruleset
	EventLog  []Event
	GameOver  bool

	lastDiscardSeat            int
	lastDiscard                tile.Tile
	lastDiscardWasHaitei       bool
	drewFromDeadWall           bool
	chankanInProgress          bool
	kakanChankanOnly           bool
	firstUninterruptedGoAround bool
	kanDeclarers               map[int]bool // distinct seats that have declared any kan this round
	totalKans                  int

	pendingNextDealer int
	pendingHonba      int
	pendingKyotaku    int

	LastResult RoundResult
}

// RoundResult summarizes how the most recently concluded round ended,
// available once GameOver is true.
type RoundResult struct {
	Kind   RoundEndKind
	Claims []HuClaim
}

// NewRiichiMahjong4p creates an idle engine whose wall shuffles are fully
// determined by seed (spec.md §5's determinism requirement).
func NewRiichiMahjong4p(seed int64, rules config.Ruleset) *RiichiMahjong4p {
	return &RiichiMahjong4p{
		Deck:  NewDeckManager(seed),
		Rules: rules,
	}
}

// Reset starts a fresh round: reshuffles the wall, redeals 13 tiles to each
// seat, draws the dealer's first tile, and returns the initial observation
// set. Scores persist across rounds (spec.md's Lifecycle); only the first
// Reset of a hanchan should receive startingScore-equal player states.
func (eg *RiichiMahjong4p) Reset(roundWind Wind, roundNumber, dealer, honba, kyotaku int) map[int]Observation {
	eg.Situation = Situation{
		DealerSeat:   dealer,
		Honba:        honba,
		RoundWind:    roundWind,
		RoundNumber:  roundNumber,
		RiichiSticks: kyotaku,
	}
	eg.Deck.InitRound()
	eg.EventLog = eg.EventLog[:0]
	eg.GameOver = false
	eg.kakanChankanOnly = false
	eg.chankanInProgress = false
	eg.firstUninterruptedGoAround = true
	eg.kanDeclarers = make(map[int]bool)
	eg.totalKans = 0

	for s := 0; s < 4; s++ {
		wind := Wind((s - dealer + 4) % 4)
		if eg.Players[s] == nil {
			eg.Players[s] = NewPlayerState(s, wind, eg.Rules.StartingScore)
		} else {
			score := eg.Players[s].Score
			eg.Players[s].ResetForRound(wind)
			eg.Players[s].Score = score
		}
	}

	for round := 0; round < 13; round++ {
		for s := 0; s < 4; s++ {
			t, ok := eg.Deck.Draw()
			if !ok {
				panicInvariant("engine.Reset", "wall underflow during initial deal")
			}
			eg.Players[s].Concealed = append(eg.Players[s].Concealed, t)
		}
	}

	var tehais [4][]tile.Tile
	for s := 0; s < 4; s++ {
		tehais[s] = append([]tile.Tile{}, eg.Players[s].Concealed...)
	}
	eg.appendEvent(Event{Type: EventStartKyoku, Actor: dealer, Tehais: tehais})

	if _, ok := eg.Deck.RevealDoraIndicator(); !ok {
		panicInvariant("engine.Reset", "no dora indicator available at round start")
	}
	eg.appendEvent(Event{Type: EventDora, Tile: eg.Deck.DoraIndicators()[len(eg.Deck.DoraIndicators())-1]})

	eg.Turn = NewTurnManager(dealer)
	eg.drawForCurrent()
	return eg.observations()
}

func (eg *RiichiMahjong4p) appendEvent(ev Event) { eg.EventLog = append(eg.EventLog, ev) }

// drawForCurrent draws the next live tile for the acting seat and clears
// its temporary furiten (cleared at the seat's next draw per spec.md).
func (eg *RiichiMahjong4p) drawForCurrent() {
	seat := eg.Turn.Current
	t, ok := eg.Deck.Draw()
	if !ok {
		eg.leadRyukyoku()
		return
	}
	eg.Players[seat].Draw(t)
	eg.Players[seat].TemporaryFuriten = false
	eg.drewFromDeadWall = false
	eg.Turn.EnterWaitAct(seat)
	eg.appendEvent(Event{Type: EventTsumo, Actor: seat, Tile: t})
}

// Step advances the engine by one set of player submissions: during
// PhaseWaitAct, actions[eg.Turn.Current] is consulted; during
// PhaseWaitResponse, every reacting seat's entry is consulted (a missing
// entry is treated as Pass).
func (eg *RiichiMahjong4p) Step(actions map[int]Action) (map[int]Observation, error) {
	if eg.GameOver {
		return nil, fmt.Errorf("mahjong: round already concluded")
	}
	if eg.Turn.Phase == PhaseWaitAct {
		return eg.stepWaitAct(actions)
	}
	return eg.stepWaitResponse(actions)
}

func (eg *RiichiMahjong4p) stepWaitAct(actions map[int]Action) (map[int]Observation, error) {
	seat := eg.Turn.Current
	act, ok := actions[seat]
	if !ok {
		return nil, fmt.Errorf("%w: no action submitted for acting seat %d", ErrIllegalAction, seat)
	}
	if !actionIn(act, eg.LegalActions(seat)) {
		return nil, fmt.Errorf("%w: %s not legal for seat %d", ErrIllegalAction, act.Kind, seat)
	}

	switch act.Kind {
	case ActionDiscard:
		eg.discardForSeat(seat, act.Tile)
	case ActionRiichi:
		eg.declareRiichi(seat)
		return eg.observations(), nil
	case ActionTsumo:
		eg.leadTsumoEnding(seat)
	case ActionAnkan:
		eg.doAnkan(seat, act.Tile)
	case ActionKakan:
		eg.doKakan(seat, act.Tile)
	case ActionKyushuKyuhai:
		eg.leadAbortiveDraw("kyushu_kyuhai")
	default:
		return nil, fmt.Errorf("%w: %s invalid during wait-act", ErrMalformedAction, act.Kind)
	}
	return eg.observations(), nil
}

// actionIn reports whether act matches one of legal by kind+tile (Consume
// compared for Chi, where multiple combinations may otherwise tie).
func actionIn(act Action, legal []Action) bool {
	for _, l := range legal {
		if l.Kind != act.Kind || l.Tile != act.Tile {
			continue
		}
		if act.Kind != ActionChi {
			return true
		}
		if len(l.Consume) != len(act.Consume) {
			continue
		}
		match := true
		for i := range l.Consume {
			if l.Consume[i] != act.Consume[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// doDiscard removes t from seat's hand, records it as the pending claim
// target, and opens the response phase; when no other seat can react, the
// turn passes straight to the next seat's draw. riichiDiscard marks the
// just-made discard as the seat's riichi-declaration tile.
func (eg *RiichiMahjong4p) doDiscard(seat int, t tile.Tile, riichiDiscard bool) {
	p := eg.Players[seat]
	tsumogiri := p.Drawn != nil && *p.Drawn == t
	if !p.Discard(t) {
		panicInvariant("engine.doDiscard", fmt.Sprintf("seat %d does not hold %v", seat, t))
	}
	if riichiDiscard {
		p.Riichi = true
		p.RiichiStage = false
		p.RiichiDiscardIndex = len(p.Discards) - 1
		if eg.firstUninterruptedGoAround {
			p.DoubleRiichi = true
		}
		p.Ippatsu = true
		eg.Situation.RiichiSticks++
		p.Score -= eg.Rules.MinRiichiFunds
		eg.appendEvent(Event{Type: EventReachAccepted, Actor: seat})
	} else if p.Ippatsu {
		p.Ippatsu = false
	}

	eg.updateFuriten(seat)
	eg.lastDiscardSeat = seat
	eg.lastDiscard = t
	eg.lastDiscardWasHaitei = eg.Deck.Haitei()
	eg.kakanChankanOnly = false
	eg.markPassedRonOpportunities(seat, t)
	eg.appendEvent(Event{Type: EventDahai, Actor: seat, Tile: t, Tsumogiri: tsumogiri})

	if !eg.anyoneHasReaction(seat) {
		if eg.lastDiscardWasHaitei {
			eg.leadRyukyoku()
			return
		}
		eg.firstUninterruptedGoAround = eg.firstUninterruptedGoAround && seat != (eg.Situation.DealerSeat+3)%4
		eg.Turn.EnterWaitAct(eg.Turn.NextTurn())
		eg.drawForCurrent()
		return
	}
	eg.Turn.EnterWaitResponse()
}

// updateFuriten recomputes seat's permanent furiten from its current
// concealed hand's wait set against its own discard pile.
func (eg *RiichiMahjong4p) updateFuriten(seat int) {
	p := eg.Players[seat]
	if p.Drawn != nil {
		return
	}
	counts := p.Counts()
	waits, tenpai := hand.IsTenpai(counts, p.SetsNeeded())
	if !tenpai {
		return
	}
	for _, tt := range waits {
		if p.HasDiscarded(tt) {
			p.PermanentFuriten = true
			return
		}
	}
	p.PermanentFuriten = false
}

// markPassedRonOpportunities sets temporary furiten on every seat that had
// a shape-valid (yaku-shibari-and-furiten-agnostic) win on the discarded
// tile but no legal ron on it, per the "furiten beyond the legal-action
// filter" design note. Seats offered a legal ron are left unmarked here;
// stepWaitResponse marks them if they pass.
func (eg *RiichiMahjong4p) markPassedRonOpportunities(discarder int, t tile.Tile) {
	for s := 0; s < 4; s++ {
		if s == discarder {
			continue
		}
		if _, ok := eg.canRon(s, t); ok {
			continue
		}
		if eg.wouldWinIgnoringYaku(s, t) {
			eg.Players[s].TemporaryFuriten = true
		}
	}
}

func (eg *RiichiMahjong4p) anyoneHasReaction(excludeSeat int) bool {
	for s := 0; s < 4; s++ {
		if s == excludeSeat {
			continue
		}
		if len(eg.reactionOptions(s)) > 0 {
			return true
		}
	}
	return false
}

func (eg *RiichiMahjong4p) stepWaitResponse(actions map[int]Action) (map[int]Observation, error) {
	discarder := eg.lastDiscardSeat
	t := eg.lastDiscard

	rons := map[int]Action{}
	var ponSeat, kanSeat, chiSeat int = -1, -1, -1
	var chiAction Action
	var passedRon []int

	for s := 0; s < 4; s++ {
		if s == discarder {
			continue
		}
		act, ok := actions[s]
		if !ok {
			act = Pass()
		}
		legal := eg.LegalActions(s)
		if act.Kind != ActionPass && !actionIn(act, legal) {
			return nil, fmt.Errorf("%w: %s not legal for seat %d", ErrIllegalAction, act.Kind, s)
		}
		if act.Kind != ActionRon && actionIn(Action{Kind: ActionRon, Tile: t}, legal) {
			passedRon = append(passedRon, s)
		}
		switch act.Kind {
		case ActionRon:
			rons[s] = act
		case ActionPon:
			if ponSeat == -1 || seatDistance(discarder, s) < seatDistance(discarder, ponSeat) {
				ponSeat = s
			}
		case ActionDaiminkan:
			if kanSeat == -1 || seatDistance(discarder, s) < seatDistance(discarder, kanSeat) {
				kanSeat = s
			}
		case ActionChi:
			chiSeat, chiAction = s, act
		}
	}

	for _, s := range passedRon {
		eg.Players[s].TemporaryFuriten = true
	}
	if len(rons) > 0 {
		eg.leadRonEnding(rons)
		return eg.observations(), nil
	}
	if eg.chankanInProgress {
		// chankan offered no rons: the kakan stands and the kan
		// replacement draw follows.
		eg.chankanInProgress = false
		eg.kakanChankanOnly = false
		eg.registerKan(discarder)
		eg.kanReplacementDraw(discarder)
		return eg.observations(), nil
	}
	if ponSeat != -1 {
		eg.doPon(ponSeat, t, discarder)
		return eg.observations(), nil
	}
	if kanSeat != -1 {
		eg.doDaiminkan(kanSeat, t, discarder)
		return eg.observations(), nil
	}
	if chiSeat != -1 {
		eg.doChi(chiSeat, chiAction.Tile, chiAction.Consume, discarder)
		return eg.observations(), nil
	}

	eg.firstUninterruptedGoAround = eg.firstUninterruptedGoAround && discarder != (eg.Situation.DealerSeat+3)%4
	eg.Turn.EnterWaitAct(eg.Turn.NextTurn())
	eg.drawForCurrent()
	return eg.observations(), nil
}

func seatDistance(from, to int) int { return (to - from + 4) % 4 }

func (eg *RiichiMahjong4p) absorbCall(seat int) {
	eg.Players[seat].AbsorbDrawn()
}

func (eg *RiichiMahjong4p) doPon(seat int, t tile.Tile, discarder int) {
	eg.absorbCall(seat)
	p := eg.Players[seat]
	m0, _ := findByType(p.Concealed, t.Type())
	p.RemoveFromHand(m0)
	remaining := p.Concealed
	m1, _ := findByType(remaining, t.Type())
	p.RemoveFromHand(m1)
	m := meld.New(meld.Pon, []tile.Tile{m0, m1, t}, t, true, discarder)
	p.Melds = append(p.Melds, m)
	eg.afterCall(seat, EventPon, t, []tile.Tile{m0, m1})
}

func (eg *RiichiMahjong4p) doChi(seat int, t tile.Tile, consume []tile.Tile, discarder int) {
	eg.absorbCall(seat)
	p := eg.Players[seat]
	for _, c := range consume {
		p.RemoveFromHand(c)
	}
	tiles := append(append([]tile.Tile{}, consume...), t)
	m := meld.New(meld.Chi, tiles, t, true, discarder)
	p.Melds = append(p.Melds, m)
	eg.afterCall(seat, EventChi, t, consume)
}

func (eg *RiichiMahjong4p) doDaiminkan(seat int, t tile.Tile, discarder int) {
	eg.absorbCall(seat)
	p := eg.Players[seat]
	var consumed []tile.Tile
	for i := 0; i < 3; i++ {
		m0, ok := findByType(p.Concealed, t.Type())
		if !ok {
			panicInvariant("engine.doDaiminkan", "insufficient matching tiles")
		}
		p.RemoveFromHand(m0)
		consumed = append(consumed, m0)
	}
	m := meld.New(meld.Daiminkan, append(append([]tile.Tile{}, consumed...), t), t, true, discarder)
	p.Melds = append(p.Melds, m)
	eg.registerKan(seat)
	eg.appendEvent(Event{Type: EventDaiminkan, Actor: seat, Target: discarder, Tile: t, Consumed: consumed})
	eg.breakIppatsuExcept(-1)
	eg.kanReplacementDraw(seat)
}

func (eg *RiichiMahjong4p) doAnkan(seat int, anyTile tile.Tile) {
	p := eg.Players[seat]
	p.AbsorbDrawn()
	tt := anyTile.Type()
	var consumed []tile.Tile
	for i := 0; i < 4; i++ {
		m0, ok := findByType(p.Concealed, tt)
		if !ok {
			panicInvariant("engine.doAnkan", "insufficient matching tiles")
		}
		p.RemoveFromHand(m0)
		consumed = append(consumed, m0)
	}
	m := meld.New(meld.Ankan, consumed, 0, false, -1)
	p.Melds = append(p.Melds, m)
	eg.registerKan(seat)
	eg.appendEvent(Event{Type: EventAnkan, Actor: seat, Consumed: consumed})
	p.Ippatsu = false
	eg.kanReplacementDraw(seat)
}

func (eg *RiichiMahjong4p) doKakan(seat int, t tile.Tile) {
	p := eg.Players[seat]
	p.AbsorbDrawn()
	var idx = -1
	for i, m := range p.Melds {
		if m.Kind == meld.Pon && m.Type() == t.Type() {
			idx = i
			break
		}
	}
	if idx == -1 {
		panicInvariant("engine.doKakan", "no existing pon to augment")
	}
	p.RemoveFromHand(t)
	old := p.Melds[idx]
	p.Melds[idx] = meld.New(meld.Kakan, append(append([]tile.Tile{}, old.Tiles...), t), old.Called, true, old.Source)
	eg.appendEvent(Event{Type: EventKakan, Actor: seat, Tile: t})
	p.Ippatsu = false

	// chankan: every other seat may ron on the added tile before the kan
	// replacement draw proceeds.
	eg.lastDiscardSeat = seat
	eg.lastDiscard = t
	eg.chankanInProgress = true
	eg.kakanChankanOnly = true
	eg.markPassedRonOpportunities(seat, t)
	if !eg.anyoneHasReaction(seat) {
		eg.chankanInProgress = false
		eg.kakanChankanOnly = false
		eg.registerKan(seat)
		eg.kanReplacementDraw(seat)
		return
	}
	eg.Turn.EnterWaitResponse()
}

func (eg *RiichiMahjong4p) registerKan(seat int) {
	eg.kanDeclarers[seat] = true
	eg.totalKans++
}

func (eg *RiichiMahjong4p) kanReplacementDraw(seat int) {
	if eg.CheckFourKanDraw() {
		eg.leadAbortiveDraw("four_kan")
		return
	}
	t, ok := eg.Deck.DrawKanTile()
	if !ok {
		panicInvariant("engine.kanReplacementDraw", "dead wall kan tiles exhausted")
	}
	eg.Deck.RevealDoraIndicator()
	eg.Players[seat].Draw(t)
	eg.drewFromDeadWall = true
	eg.Turn.EnterWaitAct(seat)
	eg.appendEvent(Event{Type: EventTsumo, Actor: seat, Tile: t})
}

// CheckFourKanDraw reports the four-kan abortive draw: four kans have been
// declared across more than one distinct seat (four kans by a single seat
// is legal and play continues).
func (eg *RiichiMahjong4p) CheckFourKanDraw() bool {
	return eg.totalKans >= 4 && len(eg.kanDeclarers) > 1
}

func (eg *RiichiMahjong4p) afterCall(seat int, evType EventType, called tile.Tile, consumed []tile.Tile) {
	eg.breakIppatsuExcept(-1)
	eg.appendEvent(Event{Type: evType, Actor: seat, Target: eg.lastDiscardSeat, Tile: called, Consumed: consumed})
	eg.firstUninterruptedGoAround = false
	eg.Turn.EnterWaitAct(seat)
}

func (eg *RiichiMahjong4p) breakIppatsuExcept(keep int) {
	for s := 0; s < 4; s++ {
		if s == keep {
			continue
		}
		eg.Players[s].Ippatsu = false
	}
}

// declareRiichi enters riichi-stage; the following discard (submitted as
// the acting seat's next action) finalises the declaration.
func (eg *RiichiMahjong4p) declareRiichi(seat int) {
	eg.Players[seat].RiichiStage = true
	eg.appendEvent(Event{Type: EventReach, Actor: seat})
}

// Override of doDiscard's riichi path: the engine distinguishes a normal
// discard from the riichi-stage discard by checking RiichiStage before the
// discard is applied.
func (eg *RiichiMahjong4p) discardForSeat(seat int, t tile.Tile) {
	riichiDiscard := eg.Players[seat].RiichiStage
	eg.doDiscard(seat, t, riichiDiscard)
}

func (eg *RiichiMahjong4p) leadTsumoEnding(seat int) {
	p := eg.Players[seat]
	v, ok := eg.canTsumo(seat)
	if !ok {
		panicInvariant("engine.leadTsumoEnding", "tsumo declared without a valid win")
	}
	eg.appendEvent(Event{Type: EventHora, Actor: seat, Target: seat, Tile: *p.Drawn, Han: v.Result.Han, Fu: v.Result.Fu, Points: v.Payment.Total})
	eg.finalizeRound([]seatVerdict{{seat: seat, v: v}}, true)
}

func (eg *RiichiMahjong4p) leadRonEnding(rons map[int]Action) {
	winners := eg.resolveMultiRon(rons)
	var verdicts []seatVerdict
	for _, seat := range winners {
		v, ok := eg.canRon(seat, eg.lastDiscard)
		if !ok {
			panicInvariant("engine.leadRonEnding", "ron declared without a valid win")
		}
		eg.appendEvent(Event{Type: EventHora, Actor: seat, Target: eg.lastDiscardSeat, Tile: eg.lastDiscard, Han: v.Result.Han, Fu: v.Result.Fu, Points: v.Payment.Total})
		verdicts = append(verdicts, seatVerdict{seat: seat, v: v})
	}
	eg.finalizeRound(verdicts, false)
}

// resolveMultiRon applies the configured multi-ron policy: head-bump keeps
// only the seat closest clockwise from the discarder; double/triple ron
// keep up to that many winners in clockwise order.
func (eg *RiichiMahjong4p) resolveMultiRon(rons map[int]Action) []int {
	var seats []int
	for s := range rons {
		seats = append(seats, s)
	}
	for i := 0; i < len(seats); i++ {
		for j := i + 1; j < len(seats); j++ {
			if seatDistance(eg.lastDiscardSeat, seats[j]) < seatDistance(eg.lastDiscardSeat, seats[i]) {
				seats[i], seats[j] = seats[j], seats[i]
			}
		}
	}
	switch eg.Rules.MultiRon {
	case config.DoubleRon:
		if len(seats) > 2 {
			seats = seats[:2]
		}
	case config.TripleRon:
		if len(seats) > 3 {
			seats = seats[:3]
		}
	default: // head_bump
		if len(seats) > 1 {
			seats = seats[:1]
		}
	}
	return seats
}

type seatVerdict struct {
	seat int
	v    *agari.Verdict
}

// finalizeRound applies payments, kyotaku, honba and dealer-rotation rules
// and ends the round.
func (eg *RiichiMahjong4p) finalizeRound(verdicts []seatVerdict, tsumo bool) {
	var delta [4]int
	dealerWon := false
	var claims []HuClaim
	for _, sv := range verdicts {
		if tsumo {
			claims = append(claims, HuClaim{WinnerSeat: sv.seat, WinTile: *eg.Players[sv.seat].Drawn})
		} else {
			claims = append(claims, HuClaim{WinnerSeat: sv.seat, HasLoser: true, LoserSeat: eg.lastDiscardSeat, WinTile: eg.lastDiscard})
		}
	}
	if tsumo {
		eg.LastResult = RoundResult{Kind: RoundEndTsumo, Claims: claims}
	} else {
		eg.LastResult = RoundResult{Kind: RoundEndRon, Claims: claims}
	}
	for _, sv := range verdicts {
		if sv.seat == eg.Situation.DealerSeat {
			dealerWon = true
		}
		if tsumo {
			p := sv.v.Payment
			for s := 0; s < 4; s++ {
				if s == sv.seat {
					continue
				}
				if sv.seat == eg.Situation.DealerSeat || s == eg.Situation.DealerSeat {
					pay := p.DealerPays
					if sv.seat == eg.Situation.DealerSeat {
						pay = p.NonDealerPays
					}
					delta[s] -= pay
					delta[sv.seat] += pay
				} else {
					delta[s] -= p.NonDealerPays
					delta[sv.seat] += p.NonDealerPays
				}
			}
		} else {
			delta[eg.lastDiscardSeat] -= sv.v.Payment.Total
			delta[sv.seat] += sv.v.Payment.Total
		}
	}
	delta[verdicts[0].seat] += eg.Situation.RiichiSticks * 1000
	for s := 0; s < 4; s++ {
		eg.Players[s].Score += delta[s]
	}

	nextDealer := eg.Situation.DealerSeat
	honba := eg.Situation.Honba
	if dealerWon {
		honba++
	} else {
		nextDealer = (eg.Situation.DealerSeat + 1) % 4
		honba = 0
	}
	eg.appendEvent(Event{Type: EventEndKyoku})
	eg.concludeRound(nextDealer, honba, 0)
}

func (eg *RiichiMahjong4p) leadRyukyoku() {
	tenpai := [4]bool{}
	tenpaiCount := 0
	for s := 0; s < 4; s++ {
		_, ok := hand.IsTenpai(eg.Players[s].Counts(), eg.Players[s].SetsNeeded())
		tenpai[s] = ok
		if ok {
			tenpaiCount++
		}
	}
	if tenpaiCount > 0 && tenpaiCount < 4 {
		noten := 4 - tenpaiCount
		share := 3000 / noten
		for s := 0; s < 4; s++ {
			if tenpai[s] {
				eg.Players[s].Score += 3000 / tenpaiCount
			} else {
				eg.Players[s].Score -= share
			}
		}
	}
	dealerTenpai := tenpai[eg.Situation.DealerSeat]
	nextDealer := eg.Situation.DealerSeat
	honba := eg.Situation.Honba + 1
	if !dealerTenpai {
		nextDealer = (eg.Situation.DealerSeat + 1) % 4
	}
	eg.LastResult = RoundResult{Kind: RoundEndDrawExhaustive}
	eg.appendEvent(Event{Type: EventRyukyoku})
	eg.concludeRound(nextDealer, honba, eg.Situation.RiichiSticks)
}

func (eg *RiichiMahjong4p) leadAbortiveDraw(reason string) {
	corelog.Info("mahjong: abortive draw", "reason", reason)
	eg.LastResult = RoundResult{Kind: RoundEndDrawAbortive}
	eg.appendEvent(Event{Type: EventRyukyoku})
	eg.concludeRound(eg.Situation.DealerSeat, eg.Situation.Honba+1, eg.Situation.RiichiSticks)
}

func (eg *RiichiMahjong4p) concludeRound(nextDealer, honba, kyotaku int) {
	eg.GameOver = true
	eg.pendingNextDealer = nextDealer
	eg.pendingHonba = honba
	eg.pendingKyotaku = kyotaku
}

// NextRoundParams reports the dealer/honba/kyotaku the caller should pass
// to Reset to continue the hanchan, valid once GameOver is true.
func (eg *RiichiMahjong4p) NextRoundParams() (dealer, honba, kyotaku int) {
	return eg.pendingNextDealer, eg.pendingHonba, eg.pendingKyotaku
}

// LastDiscard returns the tile currently open to claims during
// PhaseWaitResponse (the tile a Ron/Pon/Chi/Daiminkan action targets).
func (eg *RiichiMahjong4p) LastDiscard() tile.Tile { return eg.lastDiscard }

// WallDigest returns this round's wall commitment, published at Reset
// before any tile is dealt.
func (eg *RiichiMahjong4p) WallDigest() string { return eg.Deck.WallDigest() }

// RevealSalt returns the commitment salt once the round has concluded, so
// a third party can recompute WallDigest and confirm the wall was not
// altered mid-round. It returns "" while the round is still in progress.
func (eg *RiichiMahjong4p) RevealSalt() string {
	if !eg.GameOver {
		return ""
	}
	return eg.Deck.Salt()
}
