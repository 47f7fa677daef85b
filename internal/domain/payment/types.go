package payment

import "errors"

var ErrInvalidStatus = errors.New("invalid payment status")

type Status string

const (
	StatusPending              Status = "PENDING"
	StatusAwaitingVerification Status = "AWAITING_VERIFICATION"
	StatusSuccess              Status = "SUCCESS"
	StatusCompleted            Status = "COMPLETED"
	StatusFailed               Status = "FAILED"
	StatusRejected             Status = "REJECTED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAwaitingVerification, StatusSuccess,
		StatusCompleted, StatusFailed, StatusRejected:
		return true
	default:
		return false
	}
}

// AcceptsReference reports whether a buyer may still attach a gateway
// reference to the attempt.
func (s Status) AcceptsReference() bool {
	return s == StatusPending || s == StatusAwaitingVerification
}

// IsSettled is true once verification or an administrator decided the attempt.
func (s Status) IsSettled() bool {
	return s.IsValid() && !s.AcceptsReference()
}
