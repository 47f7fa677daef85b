package commands

import (
	"context"
	"log/slog"
	"time"

	"goalkick/internal/domain/match"
	"goalkick/internal/domain/payment"
	"goalkick/internal/domain/ticket"
	"goalkick/internal/pkg/clock"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateMatchRequest struct {
	TeamHome   string
	TeamAway   string
	Venue      string
	StartTime  time.Time
	Price      decimal.Decimal
	TotalSeats int
}

type DeleteResult struct {
	TicketID      uuid.UUID
	Status        ticket.Status
	ReleasedSeats int
}

type MatchState struct {
	MatchID  uuid.UUID
	IsActive bool
}

// AdminCommands are the manual settlement and match management operations.
// They go through the same state machine and ledger as gateway settlement.
type AdminCommands interface {
	ApprovePayment(ctx context.Context, ticketID, actorID uuid.UUID) (*SettlementResult, error)
	RejectPayment(ctx context.Context, ticketID, actorID uuid.UUID) (*SettlementResult, error)
	DeleteTicket(ctx context.Context, ticketID, actorID uuid.UUID) (*DeleteResult, error)
	MarkUsed(ctx context.Context, ticketID, actorID uuid.UUID) (*RedemptionResult, error)
	CreateMatch(ctx context.Context, req CreateMatchRequest) (uuid.UUID, error)
	ToggleMatch(ctx context.Context, matchID uuid.UUID) (*MatchState, error)
}

type adminCommandsImpl struct {
	uow             shared.UnitOfWork
	codes           ticket.CodeGenerator
	notifier        Notifier
	clock           clock.Clock
	recorder        Recorder
	codeMaxAttempts int
}

func NewAdminCommands(uow shared.UnitOfWork, codes ticket.CodeGenerator, notifier Notifier, clk clock.Clock, recorder Recorder, codeMaxAttempts int) AdminCommands {
	if recorder == nil {
		recorder = NopRecorder()
	}
	if codeMaxAttempts <= 0 {
		codeMaxAttempts = DefaultCodeMaxAttempts
	}
	return &adminCommandsImpl{
		uow:             uow,
		codes:           codes,
		notifier:        notifier,
		clock:           clk,
		recorder:        recorder,
		codeMaxAttempts: codeMaxAttempts,
	}
}

func (a *adminCommandsImpl) ApprovePayment(ctx context.Context, ticketID, actorID uuid.UUID) (*SettlementResult, error) {
	var (
		result *SettlementResult
		event  *Event
	)
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, event = nil, nil

		t, err := tx.Tickets().LockByID(ctx, tx.DB(), ticketID)
		if err != nil {
			return mapNotFound(err, ErrTicketNotFound)
		}
		if err := ticket.CheckTransition(t.Status(), ticket.StatusPaid); err != nil {
			if t.Status() == ticket.StatusPaid {
				result = settledResult(t)
				return nil
			}
			return errs.Mark(err, ErrAlreadyTerminal)
		}

		code, paid, err := markPaid(ctx, tx, a.codes, a.codeMaxAttempts, t)
		if err != nil {
			return err
		}
		if !paid {
			return ErrAlreadyTerminal
		}
		payload := verificationPayload{
			Outcome:    "approved",
			Actor:      actorID.String(),
			RecordedAt: a.clock.Now(),
		}.encode()
		if err := tx.Payments().Settle(ctx, tx.DB(), t.ID(), payment.StatusCompleted, nil, payload); err != nil {
			return err
		}

		codeStr := code.String()
		result = &SettlementResult{Outcome: OutcomePaid, TicketID: t.ID(), Status: ticket.StatusPaid, Code: &codeStr}
		event = &Event{
			Type:      EventTicketSold,
			TicketID:  t.ID(),
			Amount:    t.TotalAmount(),
			Quantity:  t.Quantity().Int(),
			Timestamp: a.clock.Now(),
		}
		if m, err := tx.Reads().MatchByID(ctx, t.MatchID()); err == nil {
			event.Match = m.Label()
		}
		return nil
	})
	if err != nil {
		a.recorder.Settlement("admin_approve", "error")
		return nil, toCommandErr(err)
	}

	a.recorder.Settlement("admin_approve", string(result.Outcome))
	slog.Info("payment approved", "ticket_id", ticketID, "actor_id", actorID, "outcome", result.Outcome)
	if event != nil && a.notifier != nil {
		a.notifier.Notify(context.WithoutCancel(ctx), *event)
	}
	return result, nil
}

func (a *adminCommandsImpl) RejectPayment(ctx context.Context, ticketID, actorID uuid.UUID) (*SettlementResult, error) {
	var result *SettlementResult
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		t, err := tx.Tickets().LockByID(ctx, tx.DB(), ticketID)
		if err != nil {
			return mapNotFound(err, ErrTicketNotFound)
		}
		if err := ticket.CheckTransition(t.Status(), ticket.StatusRejected); err != nil {
			if t.Status() == ticket.StatusRejected {
				result = settledResult(t)
				return nil
			}
			return errs.Mark(err, ErrAlreadyTerminal)
		}

		payload := verificationPayload{
			Outcome:    "rejected",
			Actor:      actorID.String(),
			RecordedAt: a.clock.Now(),
		}.encode()
		rejected, err := releaseOnTransition(ctx, tx, t, ticket.StatusRejected, payment.StatusRejected, payload)
		if err != nil {
			return err
		}
		if !rejected {
			return ErrAlreadyTerminal
		}
		result = &SettlementResult{Outcome: OutcomeFailed, TicketID: t.ID(), Status: ticket.StatusRejected, Reason: "rejected by administrator"}
		return nil
	})
	if err != nil {
		a.recorder.Settlement("admin_reject", "error")
		return nil, toCommandErr(err)
	}

	a.recorder.Settlement("admin_reject", string(result.Outcome))
	slog.Info("payment rejected", "ticket_id", ticketID, "actor_id", actorID, "outcome", result.Outcome)
	return result, nil
}

// DeleteTicket removes a ticket and its payment. Seats come back only if the
// ticket still held them; FAILED and REJECTED tickets returned theirs already.
func (a *adminCommandsImpl) DeleteTicket(ctx context.Context, ticketID, actorID uuid.UUID) (*DeleteResult, error) {
	var result *DeleteResult
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		t, err := tx.Tickets().LockByID(ctx, tx.DB(), ticketID)
		if err != nil {
			return mapNotFound(err, ErrTicketNotFound)
		}

		released := 0
		if t.Status().HoldsSeats() {
			if _, err := tx.Matches().ReleaseSeats(ctx, tx.DB(), t.MatchID(), t.Quantity().Int()); err != nil {
				return err
			}
			released = t.Quantity().Int()
		}

		deleted, err := tx.Tickets().Delete(ctx, tx.DB(), t.ID())
		if err != nil {
			return err
		}
		if !deleted {
			return ErrTicketNotFound
		}
		result = &DeleteResult{TicketID: t.ID(), Status: t.Status(), ReleasedSeats: released}
		return nil
	})
	if err != nil {
		return nil, toCommandErr(err)
	}

	slog.Info("ticket deleted",
		"ticket_id", ticketID,
		"actor_id", actorID,
		"status", result.Status.String(),
		"released_seats", result.ReleasedSeats)
	return result, nil
}

// MarkUsed is the manual override for a gate without a scanner. It applies
// the same rule as Redeem.
func (a *adminCommandsImpl) MarkUsed(ctx context.Context, ticketID, actorID uuid.UUID) (*RedemptionResult, error) {
	var result *RedemptionResult
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		t, err := tx.Tickets().LockByID(ctx, tx.DB(), ticketID)
		if err != nil {
			return mapNotFound(err, ErrTicketNotFound)
		}

		result = &RedemptionResult{
			Outcome:  ticket.Decide(t.Status(), t.UsedAt()),
			TicketID: t.ID(),
			Status:   t.Status(),
			UsedAt:   t.UsedAt(),
			Quantity: t.Quantity().Int(),
		}
		if c := t.Code(); c != nil {
			result.Code = c.String()
		}
		if result.Outcome != ticket.OutcomeEnter {
			return nil
		}

		now := a.clock.Now()
		marked, err := tx.Tickets().MarkUsed(ctx, tx.DB(), t.ID(), now)
		if err != nil {
			return err
		}
		if !marked {
			return ErrAlreadyTerminal
		}
		result.UsedAt = &now
		return nil
	})
	if err != nil {
		return nil, toCommandErr(err)
	}

	result.Message = outcomeMessage(result)
	a.recorder.Redemption(result.Outcome.String())
	slog.Info("ticket marked used", "ticket_id", ticketID, "actor_id", actorID, "outcome", result.Outcome.String())
	return result, nil
}

func (a *adminCommandsImpl) CreateMatch(ctx context.Context, req CreateMatchRequest) (uuid.UUID, error) {
	m, err := match.NewMatch(req.TeamHome, req.TeamAway, req.Venue, req.StartTime, req.Price, req.TotalSeats)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Matches().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		return uuid.Nil, toCommandErr(err)
	}

	slog.Info("match created", "match_id", m.ID(), "label", m.Label(), "total_seats", m.TotalSeats())
	return m.ID(), nil
}

func (a *adminCommandsImpl) ToggleMatch(ctx context.Context, matchID uuid.UUID) (*MatchState, error) {
	var state *MatchState
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Matches().LockByID(ctx, tx.DB(), matchID)
		if err != nil {
			return mapNotFound(err, ErrMatchUnavailable)
		}
		updated, err := tx.Matches().SetActive(ctx, tx.DB(), m.ID(), !m.IsActive())
		if err != nil {
			return err
		}
		state = &MatchState{MatchID: updated.ID(), IsActive: updated.IsActive()}
		return nil
	})
	if err != nil {
		return nil, toCommandErr(err)
	}

	slog.Info("match toggled", "match_id", matchID, "is_active", state.IsActive)
	return state, nil
}
