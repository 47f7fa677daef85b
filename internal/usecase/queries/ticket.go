package queries

import (
	"context"

	"goalkick/internal/domain/ticket"
	"goalkick/internal/infra"
	"goalkick/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultTicketListLimit = 100
	MaxTicketListLimit     = 500
)

var ErrTicketNotFound = errs.New("ticket not found")

type TicketReadStore interface {
	FindByCode(ctx context.Context, code string) (*TicketView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
	List(ctx context.Context, filter TicketFilter) ([]*TicketView, error)
}

type TicketQueries interface {
	GetByCode(ctx context.Context, rawCode string) (*TicketView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
	CheckCode(ctx context.Context, rawCode string) (*CodeCheck, error)
	List(ctx context.Context, filter TicketFilter) ([]*TicketView, error)
}

type ticketQueriesImpl struct {
	store TicketReadStore
}

func NewTicketQueries(store TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{store: store}
}

func (q *ticketQueriesImpl) GetByCode(ctx context.Context, rawCode string) (*TicketView, error) {
	code, err := ticket.NormalizeCode(rawCode)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	return q.find(func() (*TicketView, error) { return q.store.FindByCode(ctx, code.String()) })
}

func (q *ticketQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TicketView, error) {
	return q.find(func() (*TicketView, error) { return q.store.FindByID(ctx, id) })
}

// CheckCode reads without locking; the gate still has to redeem to enter.
func (q *ticketQueriesImpl) CheckCode(ctx context.Context, rawCode string) (*CodeCheck, error) {
	code, err := ticket.NormalizeCode(rawCode)
	if err != nil {
		return &CodeCheck{Code: rawCode}, nil
	}

	view, err := q.store.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CodeCheck{Code: code.String()}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CodeCheck{
		Code:       code.String(),
		Exists:     true,
		Status:     view.Status,
		Used:       view.UsedAt != nil,
		UsedAt:     view.UsedAt,
		MatchLabel: view.MatchLabel(),
		Quantity:   view.Quantity,
		BuyerName:  view.BuyerName,
	}, nil
}

func (q *ticketQueriesImpl) List(ctx context.Context, filter TicketFilter) ([]*TicketView, error) {
	if filter.Status != nil {
		if _, err := ticket.ParseStatus(*filter.Status); err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultTicketListLimit
	case filter.Limit > MaxTicketListLimit:
		filter.Limit = MaxTicketListLimit
	}

	tickets, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return tickets, nil
}

func (q *ticketQueriesImpl) find(fn func() (*TicketView, error)) (*TicketView, error) {
	view, err := fn()
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
