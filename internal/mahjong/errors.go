package mahjong

import "errors"

// Sentinel error kinds per the engine's external contract. Callers
// distinguish them with errors.Is; none of them mutate engine state.
var (
	ErrIllegalAction      = errors.New("mahjong: action not in the legal set for this observation")
	ErrMalformedAction    = errors.New("mahjong: action is missing a tile/consume list or has the wrong arity")
	ErrInconsistentReplay = errors.New("mahjong: log prescribes an event the engine cannot produce")
	ErrScoringMismatch    = errors.New("mahjong: computed han/fu/yaku disagree with the expected values")
)

// InvariantViolation is a structured payload describing a fatal internal
// invariant breach (wall underflow, meld arity, hand count out of [13,14]).
// It is only ever panicked with, never returned as an error: an invariant
// violation means the engine itself is wrong, not the caller.
type InvariantViolation struct {
	Component string
	Detail    string
}

func (v InvariantViolation) Error() string {
	return "mahjong: invariant violation in " + v.Component + ": " + v.Detail
}

func panicInvariant(component, detail string) {
	panic(InvariantViolation{Component: component, Detail: detail})
}
