package mahjong

// Phase is the engine's two-phase state machine (spec.md §4.7), collapsed
// from the teacher's five-state TurnState vocabulary: TurnStateWaitMain and
// TurnStateSelecting fold into PhaseWaitAct (the acting seat chooses a
// discard/riichi/kan/tsumo/kyushu-kyuhai); TurnStateWaitReactions and
// TurnStateApplyOperation fold into PhaseWaitResponse (other seats may
// claim the just-discarded or just-kakan'd tile). The teacher's per-seat
// wall-clock PlayerTicker goroutines are dropped entirely: the engine is
// synchronous and owns no timers (spec.md §5).
type Phase int

const (
	PhaseWaitAct Phase = iota
	PhaseWaitResponse
)

func (ph Phase) String() string {
	if ph == PhaseWaitResponse {
		return "wait_response"
	}
	return "wait_act"
}

// TurnManager tracks whose turn it is and which phase the round is in.
type TurnManager struct {
	Current int
	Phase   Phase
}

// NewTurnManager starts the manager on dealer's WaitAct.
func NewTurnManager(dealer int) *TurnManager {
	return &TurnManager{Current: dealer, Phase: PhaseWaitAct}
}

// NextTurn advances Current to the following seat clockwise.
func (tm *TurnManager) NextTurn() int {
	tm.Current = (tm.Current + 1) % 4
	return tm.Current
}

// EnterWaitAct sets seat as the acting player.
func (tm *TurnManager) EnterWaitAct(seat int) {
	tm.Current = seat
	tm.Phase = PhaseWaitAct
}

// EnterWaitResponse switches to awaiting claims against the last discard.
func (tm *TurnManager) EnterWaitResponse() { tm.Phase = PhaseWaitResponse }
