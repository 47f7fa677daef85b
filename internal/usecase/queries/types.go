package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MatchView represents read-optimized match data for the browse page
type MatchView struct {
	ID             uuid.UUID       `json:"id"`
	TeamHome       string          `json:"team_home"`
	TeamAway       string          `json:"team_away"`
	Venue          string          `json:"venue"`
	StartTime      time.Time       `json:"start_time"`
	Price          decimal.Decimal `json:"price"`
	TotalSeats     int32           `json:"total_seats"`
	AvailableSeats int32           `json:"available_seats"`
	IsActive       bool            `json:"is_active"`
}

func (m MatchView) SoldOut() bool {
	return m.AvailableSeats <= 0
}

// TicketView joins a ticket with its match, buyer and payment
type TicketView struct {
	ID            uuid.UUID       `json:"id"`
	MatchID       uuid.UUID       `json:"match_id"`
	Quantity      int32           `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	Code          *string         `json:"code,omitempty"`
	UsedAt        *time.Time      `json:"used_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	TeamHome      string          `json:"team_home"`
	TeamAway      string          `json:"team_away"`
	Venue         string          `json:"venue"`
	StartTime     time.Time       `json:"start_time"`
	BuyerName     string          `json:"buyer_name"`
	BuyerPhone    string          `json:"buyer_phone"`
	PaymentStatus *string         `json:"payment_status,omitempty"`
	ExternalRef   *string         `json:"external_ref,omitempty"`
}

func (t TicketView) MatchLabel() string {
	return t.TeamHome + " vs " + t.TeamAway
}

// CodeCheck is the non-locking answer to "does this code exist and can it enter"
type CodeCheck struct {
	Code       string     `json:"code"`
	Exists     bool       `json:"exists"`
	Status     string     `json:"status,omitempty"`
	Used       bool       `json:"used"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
	MatchLabel string     `json:"match_label,omitempty"`
	Quantity   int32      `json:"quantity,omitempty"`
	BuyerName  string     `json:"buyer_name,omitempty"`
}

type TicketFilter struct {
	Status  *string
	MatchID *uuid.UUID
	Search  *string
	Limit   int
}
