package domain

// Phase tags a Snapshot. The set is closed: every snapshot is exactly one of
// Pending, Value, or Failure.
type Phase int

const (
	PhasePending Phase = iota
	PhaseValue
	PhaseFailure
)

// String returns a human-readable representation of the phase
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "Pending"
	case PhaseValue:
		return "Value"
	case PhaseFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Snapshot is the unit of communication between the synchronization
// repository and its consumers.
//
// Per stream invocation the emission order is fixed: Pending first, then at
// most one cached Value followed by at most one fresh Value, and at most one
// terminal Failure which is always the last emission.
type Snapshot[T any] struct {
	Phase     Phase
	Value     T     // valid only when Phase == PhaseValue
	Err       error // valid only when Phase == PhaseFailure
	FromCache bool  // Value came from the local store, not the network
}

// Pending returns the initial loading snapshot.
func Pending[T any]() Snapshot[T] {
	return Snapshot[T]{Phase: PhasePending}
}

// Cached returns a Value snapshot sourced from the local store.
func Cached[T any](v T) Snapshot[T] {
	return Snapshot[T]{Phase: PhaseValue, Value: v, FromCache: true}
}

// Fresh returns a Value snapshot sourced from the remote catalog.
func Fresh[T any](v T) Snapshot[T] {
	return Snapshot[T]{Phase: PhaseValue, Value: v}
}

// Failed returns a terminal Failure snapshot carrying the underlying cause.
func Failed[T any](err error) Snapshot[T] {
	return Snapshot[T]{Phase: PhaseFailure, Err: err}
}
