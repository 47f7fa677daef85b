package ticket

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid ticket status")
	ErrIllegalTransition = errors.New("illegal ticket status transition")
	// ErrAlreadyTerminal is returned when a transition targets a ticket that
	// has already left PENDING. Callers treat it as an idempotent no-op.
	ErrAlreadyTerminal = errors.New("ticket already in terminal state")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusPaid     Status = "PAID"
	StatusFailed   Status = "FAILED"
	StatusRejected Status = "REJECTED"
)

// PENDING is the only state with outgoing edges.
var transitions = map[Status][]Status{
	StatusPending:  {StatusPaid, StatusFailed, StatusRejected},
	StatusPaid:     nil,
	StatusFailed:   nil,
	StatusRejected: nil,
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// HoldsSeats reports whether a ticket in this status still owns its share of
// the match inventory. FAILED and REJECTED gave their seats back on entry.
func (s Status) HoldsSeats() bool {
	return s == StatusPending || s == StatusPaid
}

// ReleasesSeats reports whether entering this status returns the seat hold.
func (s Status) ReleasesSeats() bool {
	return s == StatusFailed || s == StatusRejected
}

// CheckTransition validates from -> to. A terminal source yields
// ErrAlreadyTerminal so retries collapse into no-ops; any other illegal pair
// yields ErrIllegalTransition.
func CheckTransition(from, to Status) error {
	if !from.IsValid() || !to.IsValid() {
		return ErrInvalidStatus
	}
	if from.CanTransitionTo(to) {
		return nil
	}
	if from.IsTerminal() {
		return ErrAlreadyTerminal
	}
	return ErrIllegalTransition
}
