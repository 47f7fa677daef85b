package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"goalkick/internal/domain/payment"
	"goalkick/internal/domain/ticket"
	"goalkick/internal/usecase/shared"
)

// Helpers shared by gateway settlement and administrative settlement. All of
// them run on a ticket row that the caller has already locked.

// releaseOnTransition moves a PENDING ticket to a seat-releasing status. Seats
// are returned only when this call performed the transition.
func releaseOnTransition(ctx context.Context, tx shared.Tx, t *ticket.Ticket, to ticket.Status, paymentTo payment.Status, payload []byte) (bool, error) {
	transitioned, err := tx.Tickets().Transition(ctx, tx.DB(), t.ID(), to, nil)
	if err != nil {
		return false, err
	}
	if !transitioned {
		return false, nil
	}

	if to.ReleasesSeats() {
		if _, err := tx.Matches().ReleaseSeats(ctx, tx.DB(), t.MatchID(), t.Quantity().Int()); err != nil {
			return false, err
		}
	}
	if err := tx.Payments().Settle(ctx, tx.DB(), t.ID(), paymentTo, nil, payload); err != nil {
		return false, err
	}
	return true, nil
}

// markPaid moves a PENDING ticket to PAID with a freshly allocated code.
func markPaid(ctx context.Context, tx shared.Tx, gen ticket.CodeGenerator, maxAttempts int, t *ticket.Ticket) (ticket.Code, bool, error) {
	code, err := allocateCode(ctx, tx, gen, maxAttempts)
	if err != nil {
		return ticket.Code{}, false, err
	}
	transitioned, err := tx.Tickets().Transition(ctx, tx.DB(), t.ID(), ticket.StatusPaid, &code)
	if err != nil {
		return ticket.Code{}, false, err
	}
	if !transitioned {
		slog.Error("ticket left PENDING while locked", "ticket_id", t.ID())
		return ticket.Code{}, false, nil
	}
	return code, true, nil
}

func allocateCode(ctx context.Context, tx shared.Tx, gen ticket.CodeGenerator, maxAttempts int) (ticket.Code, error) {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		code, err := gen.Generate()
		if err != nil {
			return ticket.Code{}, err
		}
		exists, err := tx.Tickets().CodeExists(ctx, tx.DB(), code)
		if err != nil {
			return ticket.Code{}, err
		}
		if !exists {
			return code, nil
		}
		slog.Warn("redemption code collision", "attempt", attempt)
	}
	return ticket.Code{}, ErrCodeExhausted
}

type verificationPayload struct {
	Outcome        string          `json:"outcome"`
	Reason         string          `json:"reason,omitempty"`
	ExternalRef    string          `json:"external_ref,omitempty"`
	ReportedAmount string          `json:"reported_amount,omitempty"`
	ExpectedAmount string          `json:"expected_amount,omitempty"`
	Gateway        json.RawMessage `json:"gateway,omitempty"`
	Actor          string          `json:"actor,omitempty"`
	RecordedAt     time.Time       `json:"recorded_at"`
}

func (p verificationPayload) encode() []byte {
	b, err := json.Marshal(p)
	if err != nil {
		slog.Warn("failed to encode verification payload", "error", err.Error())
		return nil
	}
	return b
}

// refusedPayload turns a verified payload into a failed one, keeping the
// gateway evidence already collected.
func refusedPayload(verified []byte, reason string) []byte {
	var p verificationPayload
	if err := json.Unmarshal(verified, &p); err != nil {
		slog.Warn("failed to decode verification payload", "error", err.Error())
	}
	p.Outcome = "failed"
	p.Reason = reason
	return p.encode()
}

// gatewayRaw wraps a raw gateway body so it always embeds as valid JSON.
func gatewayRaw(raw []byte) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	if json.Valid(raw) {
		return raw
	}
	b, err := json.Marshal(string(raw))
	if err != nil {
		return nil
	}
	return b
}
