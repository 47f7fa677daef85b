//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MatchFixture struct {
	Home   string
	Away   string
	Price  decimal.Decimal
	Seats  int
	Active bool
}

func DefaultMatch() MatchFixture {
	return MatchFixture{
		Home:   "Nepal",
		Away:   "India",
		Price:  decimal.NewFromInt(500),
		Seats:  100,
		Active: true,
	}
}

func CreateTestMatch(t *testing.T, db DBLike, f MatchFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO matches (id, team_home, team_away, venue, start_time, price, total_seats, available_seats, is_active)
		VALUES ($1, $2, $3, 'Dasharath Stadium', $4, $5, $6, $6, $7)`,
		id, f.Home, f.Away, time.Now().Add(72*time.Hour), f.Price, f.Seats, f.Active)
	require.NoError(t, err)
	return id
}

func AvailableSeats(t *testing.T, db DBLike, matchID uuid.UUID) int {
	t.Helper()

	var seats int
	err := db.QueryRow(context.Background(), "SELECT available_seats FROM matches WHERE id = $1", matchID).Scan(&seats)
	require.NoError(t, err)
	return seats
}

func TicketStatus(t *testing.T, db DBLike, ticketID uuid.UUID) (status string, code *string) {
	t.Helper()

	err := db.QueryRow(context.Background(), "SELECT status, code FROM tickets WHERE id = $1", ticketID).Scan(&status, &code)
	require.NoError(t, err)
	return status, code
}

func CreateTestStaff(t *testing.T, db DBLike, email, rawPassword, role string) uuid.UUID {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.MinCost)
	require.NoError(t, err)

	id := uuid.New()
	err = db.QueryRow(context.Background(), `
		INSERT INTO staff (id, email, password_hash, role) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role
		RETURNING id`,
		id, email, string(hash), role).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
