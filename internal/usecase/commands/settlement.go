package commands

import (
	"context"
	"log/slog"
	"time"

	"goalkick/internal/domain/payment"
	"goalkick/internal/domain/ticket"
	"goalkick/internal/infra"
	"goalkick/internal/pkg/clock"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SettlementOutcome string

const (
	OutcomePaid            SettlementOutcome = "PAID"
	OutcomeReplayed        SettlementOutcome = "REPLAYED"
	OutcomeFailed          SettlementOutcome = "FAILED"
	OutcomeAlreadyTerminal SettlementOutcome = "ALREADY_TERMINAL"
)

const (
	DefaultVerifyTimeout   = 10 * time.Second
	DefaultCodeMaxAttempts = 5
)

type GatewayCallback struct {
	OrderID     uuid.UUID
	ExternalRef string
	Amount      decimal.Decimal
}

type SettlementResult struct {
	Outcome  SettlementOutcome
	TicketID uuid.UUID
	Status   ticket.Status
	Code     *string
	Reason   string
}

type SubmissionResult struct {
	TicketID      uuid.UUID
	PaymentStatus payment.Status
	ExternalRef   string
	Unchanged     bool
}

type SettlementConfig struct {
	VerifyTimeout   time.Duration
	CodeMaxAttempts int
}

type SettlementCommands interface {
	HandleGatewayCallback(ctx context.Context, cb GatewayCallback) (*SettlementResult, error)
	SubmitManualReference(ctx context.Context, ticketID uuid.UUID, externalRef string) (*SubmissionResult, error)
	HandleGatewayFailure(ctx context.Context, orderID uuid.UUID) (*SettlementResult, error)
}

type settlementCommandsImpl struct {
	uow      shared.UnitOfWork
	verifier PaymentVerifier
	codes    ticket.CodeGenerator
	notifier Notifier
	clock    clock.Clock
	recorder Recorder
	cfg      SettlementConfig
}

func NewSettlementCommands(
	uow shared.UnitOfWork,
	verifier PaymentVerifier,
	codes ticket.CodeGenerator,
	notifier Notifier,
	clk clock.Clock,
	recorder Recorder,
	cfg SettlementConfig,
) SettlementCommands {
	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = DefaultVerifyTimeout
	}
	if cfg.CodeMaxAttempts <= 0 {
		cfg.CodeMaxAttempts = DefaultCodeMaxAttempts
	}
	if recorder == nil {
		recorder = NopRecorder()
	}
	return &settlementCommandsImpl{
		uow:      uow,
		verifier: verifier,
		codes:    codes,
		notifier: notifier,
		clock:    clk,
		recorder: recorder,
		cfg:      cfg,
	}
}

// HandleGatewayCallback settles a ticket from the gateway's success redirect.
// Callbacks can be replayed by the browser; only the first one for a PENDING
// ticket mutates anything.
func (s *settlementCommandsImpl) HandleGatewayCallback(ctx context.Context, cb GatewayCallback) (*SettlementResult, error) {
	ref, err := payment.NewExternalRef(cb.ExternalRef)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var (
		result *SettlementResult
		event  *Event
	)
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, event = nil, nil

		t, lockErr := tx.Tickets().LockByID(ctx, tx.DB(), cb.OrderID)
		if lockErr != nil {
			return mapNotFound(lockErr, ErrTicketNotFound)
		}
		if t.Status() != ticket.StatusPending {
			result = settledResult(t)
			return nil
		}

		payload, reason, verifyErr := s.verify(ctx, tx, t, ref, cb.Amount)
		if verifyErr != nil {
			return verifyErr
		}
		if reason != "" {
			if _, failErr := releaseOnTransition(ctx, tx, t, ticket.StatusFailed, payment.StatusFailed, payload); failErr != nil {
				return failErr
			}
			result = &SettlementResult{Outcome: OutcomeFailed, TicketID: t.ID(), Status: ticket.StatusFailed, Reason: reason}
			return nil
		}

		var code ticket.Code
		spErr := tx.Savepoint(ctx, func(ctx context.Context) error {
			c, paid, payErr := markPaid(ctx, tx, s.codes, s.cfg.CodeMaxAttempts, t)
			if payErr != nil {
				return payErr
			}
			if !paid {
				return ErrAlreadyTerminal
			}
			code = c
			return tx.Payments().Settle(ctx, tx.DB(), t.ID(), payment.StatusSuccess, &ref, payload)
		})
		if spErr != nil {
			if !infra.IsKind(spErr, infra.KindDuplicateKey) {
				return spErr
			}
			// another ticket claimed the reference after the lookup in verify
			const reason = "reference already used by another payment"
			slog.Warn("gateway reference claimed concurrently", "ticket_id", t.ID(), "external_ref", ref.String())
			if _, failErr := releaseOnTransition(ctx, tx, t, ticket.StatusFailed, payment.StatusFailed, refusedPayload(payload, reason)); failErr != nil {
				return failErr
			}
			result = &SettlementResult{Outcome: OutcomeFailed, TicketID: t.ID(), Status: ticket.StatusFailed, Reason: reason}
			return nil
		}

		codeStr := code.String()
		result = &SettlementResult{Outcome: OutcomePaid, TicketID: t.ID(), Status: ticket.StatusPaid, Code: &codeStr}
		event = s.soldEvent(ctx, tx, t)
		return nil
	})
	if err != nil {
		err = toCommandErr(err)
		s.recorder.Settlement("gateway", "error")
		slog.Error("gateway settlement failed", "ticket_id", cb.OrderID, "error", err.Error())
		return nil, err
	}

	s.recorder.Settlement("gateway", string(result.Outcome))
	s.logResult("gateway", result)
	s.publish(ctx, event)
	return result, nil
}

// verify returns a non-empty reason when the payment must be treated as
// failed. An error is returned only for datastore failures.
func (s *settlementCommandsImpl) verify(ctx context.Context, tx shared.Tx, t *ticket.Ticket, ref payment.ExternalRef, reported decimal.Decimal) ([]byte, string, error) {
	p := verificationPayload{
		ExternalRef:    ref.String(),
		ReportedAmount: reported.String(),
		ExpectedAmount: t.TotalAmount().String(),
		RecordedAt:     s.clock.Now(),
	}
	fail := func(reason string) ([]byte, string, error) {
		p.Outcome = "failed"
		p.Reason = reason
		return p.encode(), reason, nil
	}

	if !t.AmountMatches(reported) {
		return fail("amount mismatch")
	}

	claimed, err := tx.Payments().FindByExternalRef(ctx, tx.DB(), ref)
	switch {
	case err == nil && claimed.TicketID != t.ID():
		return fail("reference already used by another payment")
	case err != nil && !infra.IsKind(err, infra.KindNotFound):
		return nil, "", err
	}

	vctx, cancel := context.WithTimeout(ctx, s.cfg.VerifyTimeout)
	defer cancel()
	v, err := s.verifier.Verify(vctx, VerificationRequest{
		OrderID:     t.ID(),
		ExternalRef: ref.String(),
		Amount:      t.TotalAmount(),
	})
	if err != nil {
		slog.Warn("payment verification error", "ticket_id", t.ID(), "error", err.Error())
		return fail("verification unavailable")
	}
	p.Gateway = gatewayRaw(v.Raw)
	if !v.Verified {
		reason := v.Reason
		if reason == "" {
			reason = "gateway did not confirm payment"
		}
		return fail(reason)
	}

	p.Outcome = "verified"
	return p.encode(), "", nil
}

// SubmitManualReference records the buyer's wallet transaction id for an
// administrator to verify. The ticket itself is not touched.
func (s *settlementCommandsImpl) SubmitManualReference(ctx context.Context, ticketID uuid.UUID, externalRef string) (*SubmissionResult, error) {
	ref, err := payment.NewExternalRef(externalRef)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var (
		result *SubmissionResult
		event  *Event
	)
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, event = nil, nil

		p, lockErr := tx.Payments().LockByTicket(ctx, tx.DB(), ticketID)
		if lockErr != nil {
			return mapNotFound(lockErr, ErrPaymentNotFound)
		}
		if p.HasReference(ref) {
			result = &SubmissionResult{TicketID: ticketID, PaymentStatus: p.Status, ExternalRef: ref.String(), Unchanged: true}
			return nil
		}
		if !p.Status.AcceptsReference() {
			return ErrAlreadyTerminal
		}

		claimed, findErr := tx.Payments().FindByExternalRef(ctx, tx.DB(), ref)
		switch {
		case findErr == nil && claimed.TicketID != ticketID:
			return ErrDuplicateExternalReference
		case findErr != nil && !infra.IsKind(findErr, infra.KindNotFound):
			return findErr
		}

		if submitErr := tx.Payments().SubmitReference(ctx, tx.DB(), ticketID, ref); submitErr != nil {
			if infra.IsKind(submitErr, infra.KindDuplicateKey) {
				return errs.Mark(submitErr, ErrDuplicateExternalReference)
			}
			return submitErr
		}

		result = &SubmissionResult{TicketID: ticketID, PaymentStatus: payment.StatusAwaitingVerification, ExternalRef: ref.String()}
		event = &Event{
			Type:      EventPaymentSubmitted,
			TicketID:  ticketID,
			Amount:    p.Amount,
			Reference: ref.String(),
			Timestamp: s.clock.Now(),
		}
		return nil
	})
	if err != nil {
		err = toCommandErr(err)
		s.recorder.Settlement("manual", "rejected")
		if errs.Is(err, ErrDatabaseOperationFailed) {
			slog.Error("manual reference submission failed", "ticket_id", ticketID, "error", err.Error())
		}
		return nil, err
	}

	s.recorder.Settlement("manual", "submitted")
	slog.Info("payment reference submitted", "ticket_id", ticketID, "unchanged", result.Unchanged)
	s.publish(ctx, event)
	return result, nil
}

// HandleGatewayFailure processes the gateway's explicit failure redirect.
func (s *settlementCommandsImpl) HandleGatewayFailure(ctx context.Context, orderID uuid.UUID) (*SettlementResult, error) {
	var result *SettlementResult
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		t, lockErr := tx.Tickets().LockByID(ctx, tx.DB(), orderID)
		if lockErr != nil {
			return mapNotFound(lockErr, ErrTicketNotFound)
		}
		if t.Status() != ticket.StatusPending {
			result = settledResult(t)
			return nil
		}

		payload := verificationPayload{
			Outcome:    "failed",
			Reason:     "gateway reported failure",
			RecordedAt: s.clock.Now(),
		}.encode()
		if _, failErr := releaseOnTransition(ctx, tx, t, ticket.StatusFailed, payment.StatusFailed, payload); failErr != nil {
			return failErr
		}
		result = &SettlementResult{Outcome: OutcomeFailed, TicketID: t.ID(), Status: ticket.StatusFailed, Reason: "gateway reported failure"}
		return nil
	})
	if err != nil {
		err = toCommandErr(err)
		s.recorder.Settlement("failure_callback", "error")
		return nil, err
	}

	s.recorder.Settlement("failure_callback", string(result.Outcome))
	s.logResult("failure_callback", result)
	return result, nil
}

func (s *settlementCommandsImpl) soldEvent(ctx context.Context, tx shared.Tx, t *ticket.Ticket) *Event {
	e := &Event{
		Type:      EventTicketSold,
		TicketID:  t.ID(),
		Amount:    t.TotalAmount(),
		Quantity:  t.Quantity().Int(),
		Timestamp: s.clock.Now(),
	}
	m, err := tx.Reads().MatchByID(ctx, t.MatchID())
	if err != nil {
		slog.Warn("match lookup for notification failed", "match_id", t.MatchID(), "error", err.Error())
		return e
	}
	e.Match = m.Label()
	return e
}

func (s *settlementCommandsImpl) publish(ctx context.Context, e *Event) {
	if e == nil || s.notifier == nil {
		return
	}
	s.notifier.Notify(context.WithoutCancel(ctx), *e)
}

func (s *settlementCommandsImpl) logResult(path string, r *SettlementResult) {
	attrs := []any{"path", path, "ticket_id", r.TicketID, "outcome", r.Outcome, "status", r.Status}
	if r.Reason != "" {
		attrs = append(attrs, "reason", r.Reason)
	}
	if r.Outcome == OutcomeFailed {
		slog.Warn("payment settlement failed", attrs...)
		return
	}
	slog.Info("payment settled", attrs...)
}

// settledResult describes a ticket that already left PENDING. A PAID ticket
// is a replay and returns its existing code.
func settledResult(t *ticket.Ticket) *SettlementResult {
	r := &SettlementResult{TicketID: t.ID(), Status: t.Status()}
	if t.Status() == ticket.StatusPaid {
		r.Outcome = OutcomeReplayed
		if c := t.Code(); c != nil {
			code := c.String()
			r.Code = &code
		}
		return r
	}
	r.Outcome = OutcomeAlreadyTerminal
	return r
}
