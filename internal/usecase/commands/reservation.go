package commands

import (
	"context"
	"log/slog"

	"goalkick/internal/domain/buyer"
	"goalkick/internal/domain/match"
	"goalkick/internal/domain/ticket"
	"goalkick/internal/pkg/clock"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReserveRequest struct {
	MatchID  uuid.UUID
	Quantity int
	Phone    string
	Name     string
}

type ReserveResult struct {
	TicketID       uuid.UUID
	MatchID        uuid.UUID
	Quantity       int
	TotalAmount    decimal.Decimal
	Status         ticket.Status
	RemainingSeats int
	Checkout       Checkout
}

type ReservationCommands interface {
	Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error)
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	checkout CheckoutBuilder
	clock    clock.Clock
	recorder Recorder
}

func NewReservationCommands(uow shared.UnitOfWork, checkout CheckoutBuilder, clk clock.Clock, recorder Recorder) ReservationCommands {
	if recorder == nil {
		recorder = NopRecorder()
	}
	return &reservationCommandsImpl{
		uow:      uow,
		checkout: checkout,
		clock:    clk,
		recorder: recorder,
	}
}

type reserveInput struct {
	qty   ticket.Quantity
	phone buyer.Phone
	name  buyer.Name
}

func parseReserveRequest(req ReserveRequest) (reserveInput, error) {
	qty, err := ticket.NewQuantity(req.Quantity)
	if err != nil {
		return reserveInput{}, errs.Mark(err, ErrValidation)
	}
	phone, err := buyer.NewPhone(req.Phone)
	if err != nil {
		return reserveInput{}, errs.Mark(err, ErrValidation)
	}
	name, err := buyer.NewName(req.Name)
	if err != nil {
		return reserveInput{}, errs.Mark(err, ErrValidation)
	}
	return reserveInput{qty: qty, phone: phone, name: name}, nil
}

// Reserve holds seats for a buyer. The match row stays locked from the seat
// check until commit, so two buyers racing for the last seats cannot both win.
func (r *reservationCommandsImpl) Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error) {
	in, err := parseReserveRequest(req)
	if err != nil {
		r.recorder.Reservation("invalid")
		return nil, err
	}

	var result *ReserveResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, lockErr := tx.Matches().LockByID(ctx, tx.DB(), req.MatchID)
		if lockErr != nil {
			return mapNotFound(lockErr, ErrMatchUnavailable)
		}
		if checkErr := m.CanReserve(in.qty.Int()); checkErr != nil {
			return ledgerErr(checkErr)
		}

		buyerID, upsertErr := tx.Buyers().Upsert(ctx, tx.DB(), in.phone, in.name)
		if upsertErr != nil {
			return upsertErr
		}

		t, newErr := ticket.NewTicket(m.ID(), buyerID, in.qty, m.Price(), r.clock.Now())
		if newErr != nil {
			return errs.Mark(newErr, ErrValidation)
		}
		if createErr := tx.Tickets().Create(ctx, tx.DB(), t); createErr != nil {
			return createErr
		}

		remaining, ok, reserveErr := tx.Matches().ReserveSeats(ctx, tx.DB(), m.ID(), in.qty.Int())
		if reserveErr != nil {
			return reserveErr
		}
		if !ok {
			return ErrInsufficientSeats
		}

		if payErr := tx.Payments().Create(ctx, tx.DB(), t.ID(), t.TotalAmount()); payErr != nil {
			return payErr
		}

		result = &ReserveResult{
			TicketID:       t.ID(),
			MatchID:        m.ID(),
			Quantity:       in.qty.Int(),
			TotalAmount:    t.TotalAmount(),
			Status:         t.Status(),
			RemainingSeats: remaining,
		}
		return nil
	})
	if err != nil {
		err = toCommandErr(err)
		r.recorder.Reservation(reservationResultLabel(err))
		if errs.Is(err, ErrDatabaseOperationFailed) {
			slog.Error("reservation failed", "match_id", req.MatchID, "error", err.Error())
		}
		return nil, err
	}

	if r.checkout != nil {
		result.Checkout = r.checkout.Checkout(result.TicketID, result.TotalAmount)
	}
	r.recorder.Reservation("reserved")
	slog.Info("tickets reserved",
		"ticket_id", result.TicketID,
		"match_id", result.MatchID,
		"quantity", result.Quantity,
		"remaining_seats", result.RemainingSeats)
	return result, nil
}

func ledgerErr(err error) error {
	switch {
	case errs.Is(err, match.ErrMatchUnavailable):
		return errs.Mark(err, ErrMatchUnavailable)
	case errs.Is(err, match.ErrInsufficientSeats):
		return errs.Mark(err, ErrInsufficientSeats)
	default:
		return errs.Mark(err, ErrValidation)
	}
}

func reservationResultLabel(err error) string {
	switch {
	case errs.Is(err, ErrInsufficientSeats):
		return "sold_out"
	case errs.Is(err, ErrMatchUnavailable):
		return "unavailable"
	case errs.Is(err, ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
