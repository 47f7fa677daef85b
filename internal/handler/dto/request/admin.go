package request

import (
	"strings"
	"time"

	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateMatchRequest struct {
	TeamHome   string          `json:"team_home" binding:"required"`
	TeamAway   string          `json:"team_away" binding:"required"`
	Venue      string          `json:"venue" binding:"required"`
	StartTime  time.Time       `json:"start_time" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	TotalSeats int             `json:"total_seats" binding:"required,min=1"`
}

func (r CreateMatchRequest) ToCommand() commands.CreateMatchRequest {
	return commands.CreateMatchRequest{
		TeamHome:   strings.TrimSpace(r.TeamHome),
		TeamAway:   strings.TrimSpace(r.TeamAway),
		Venue:      strings.TrimSpace(r.Venue),
		StartTime:  r.StartTime,
		Price:      r.Price,
		TotalSeats: r.TotalSeats,
	}
}

type ListTicketsQuery struct {
	Status  string `form:"status"`
	MatchID string `form:"match_id"`
	Search  string `form:"search"`
	Limit   int    `form:"limit" binding:"omitempty,min=1"`
}

func (q ListTicketsQuery) ToFilter() (queries.TicketFilter, error) {
	f := queries.TicketFilter{Limit: q.Limit}
	if s := strings.TrimSpace(q.Status); s != "" {
		s = strings.ToUpper(s)
		f.Status = &s
	}
	if m := strings.TrimSpace(q.MatchID); m != "" {
		id, err := uuid.Parse(m)
		if err != nil {
			return queries.TicketFilter{}, err
		}
		f.MatchID = &id
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		f.Search = &s
	}
	return f, nil
}
