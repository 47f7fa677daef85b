package converter

import (
	"goalkick/internal/domain/match"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/pgconv"
)

func MatchToCreateParams(m *match.Match) sqlc.CreateMatchParams {
	return sqlc.CreateMatchParams{
		ID:         m.ID(),
		TeamHome:   m.TeamHome(),
		TeamAway:   m.TeamAway(),
		Venue:      m.Venue(),
		StartTime:  pgconv.TimeToPgtype(m.StartTime()),
		Price:      pgconv.DecimalToNumeric(m.Price()),
		TotalSeats: int32(m.TotalSeats()), // #nosec G115 -- bounded by domain validation
	}
}

func MatchFromRow(row sqlc.Matches) (*match.Match, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return match.Reconstruct(
		row.ID,
		row.TeamHome,
		row.TeamAway,
		row.Venue,
		pgconv.TimeFromPgtype(row.StartTime),
		price,
		int(row.TotalSeats),
		int(row.AvailableSeats),
		row.IsActive,
	), nil
}
