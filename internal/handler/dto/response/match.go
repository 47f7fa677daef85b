package response

import (
	"time"

	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID             uuid.UUID `json:"id"`
	TeamHome       string    `json:"team_home"`
	TeamAway       string    `json:"team_away"`
	Venue          string    `json:"venue"`
	StartTime      time.Time `json:"start_time"`
	Price          string    `json:"price"`
	TotalSeats     int32     `json:"total_seats"`
	AvailableSeats int32     `json:"available_seats"`
	IsActive       bool      `json:"is_active"`
	SoldOut        bool      `json:"sold_out"`
}

func FromMatchView(v *queries.MatchView) *MatchResponse {
	res := &MatchResponse{}
	copyInto(res, v)
	res.SoldOut = v.SoldOut()
	return res
}

func FromMatchViews(views []*queries.MatchView) []*MatchResponse {
	res := make([]*MatchResponse, len(views))
	for i, v := range views {
		res[i] = FromMatchView(v)
	}
	return res
}

type CreateMatchResponse struct {
	ID uuid.UUID `json:"id"`
}

type MatchStateResponse struct {
	MatchID  uuid.UUID `json:"match_id"`
	IsActive bool      `json:"is_active"`
}

func FromMatchState(s *commands.MatchState) *MatchStateResponse {
	return &MatchStateResponse{MatchID: s.MatchID, IsActive: s.IsActive}
}
