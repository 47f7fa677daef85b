package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"goalkick/internal/domain/match"
	"goalkick/internal/domain/ticket"
	"goalkick/internal/infra"
	"goalkick/internal/pkg/clock"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
)

const msgScanAgain = "Could not verify ticket, please scan again"

type RedemptionResult struct {
	Outcome    ticket.Outcome
	Code       string
	TicketID   uuid.UUID
	Status     ticket.Status
	UsedAt     *time.Time
	MatchLabel string
	Venue      string
	StartTime  time.Time
	Quantity   int
	BuyerName  string
	Message    string
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, rawCode string) *RedemptionResult
}

type redemptionCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder Recorder
}

func NewRedemptionCommands(uow shared.UnitOfWork, clk clock.Clock, recorder Recorder) RedemptionCommands {
	if recorder == nil {
		recorder = NopRecorder()
	}
	return &redemptionCommandsImpl{uow: uow, clock: clk, recorder: recorder}
}

// Redeem always answers with one of the four gate outcomes. Infrastructure
// failures roll back and surface as INVALID so the gatekeeper rescans.
func (r *redemptionCommandsImpl) Redeem(ctx context.Context, rawCode string) *RedemptionResult {
	code, err := ticket.NormalizeCode(rawCode)
	if err != nil {
		return r.finish(invalidResult(rawCode, "Ticket code is required"))
	}

	var result *RedemptionResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		snap, lockErr := tx.Tickets().LockForRedemption(ctx, tx.DB(), code)
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				result = invalidResult(code.String(), "Invalid ticket code")
				return nil
			}
			return lockErr
		}

		result = &RedemptionResult{
			Outcome:    ticket.Decide(snap.Status, snap.UsedAt),
			Code:       code.String(),
			TicketID:   snap.TicketID,
			Status:     snap.Status,
			UsedAt:     snap.UsedAt,
			MatchLabel: match.Label(snap.TeamHome, snap.TeamAway),
			Venue:      snap.Venue,
			StartTime:  snap.StartTime,
			Quantity:   snap.Quantity,
			BuyerName:  snap.BuyerName,
		}
		if result.Outcome != ticket.OutcomeEnter {
			return nil
		}

		now := r.clock.Now()
		marked, markErr := tx.Tickets().MarkUsed(ctx, tx.DB(), snap.TicketID, now)
		if markErr != nil {
			return markErr
		}
		if !marked {
			return errs.Newf("ticket %s changed while locked", snap.TicketID)
		}
		result.UsedAt = &now
		return nil
	})
	if err != nil {
		slog.Error("redemption failed", "code", code.String(), "error", err.Error())
		return r.finish(invalidResult(code.String(), msgScanAgain))
	}

	result.Message = outcomeMessage(result)
	return r.finish(result)
}

func (r *redemptionCommandsImpl) finish(res *RedemptionResult) *RedemptionResult {
	r.recorder.Redemption(res.Outcome.String())
	slog.Info("ticket scanned", "code", res.Code, "outcome", res.Outcome.String())
	return res
}

func invalidResult(code, msg string) *RedemptionResult {
	return &RedemptionResult{Outcome: ticket.OutcomeInvalid, Code: code, Message: msg}
}

func outcomeMessage(r *RedemptionResult) string {
	switch r.Outcome {
	case ticket.OutcomeEnter:
		return fmt.Sprintf("Entry allowed for %d", r.Quantity)
	case ticket.OutcomeAlreadyUsed:
		return "Ticket already used at " + r.UsedAt.Format(time.RFC3339)
	case ticket.OutcomeUnpaid:
		return "Ticket is not paid (" + r.Status.String() + ")"
	default:
		return "Invalid ticket code"
	}
}
