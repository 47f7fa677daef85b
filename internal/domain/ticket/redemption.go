package ticket

import "time"

// Outcome is the answer shown to gate staff after a scan.
type Outcome string

const (
	OutcomeEnter       Outcome = "ENTER"
	OutcomeAlreadyUsed Outcome = "ALREADY_USED"
	OutcomeUnpaid      Outcome = "UNPAID"
	OutcomeInvalid     Outcome = "INVALID"
)

func (o Outcome) String() string { return string(o) }

// Admits reports whether the holder may pass the gate.
func (o Outcome) Admits() bool { return o == OutcomeEnter }

// Decide maps a locked ticket snapshot to a redemption outcome. It does not
// mutate; the caller persists used_at only for OutcomeEnter.
func Decide(status Status, usedAt *time.Time) Outcome {
	switch {
	case status != StatusPaid:
		return OutcomeUnpaid
	case usedAt != nil:
		return OutcomeAlreadyUsed
	default:
		return OutcomeEnter
	}
}
