package match

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMatchUnavailable  = errors.New("match not found or not active")
	ErrInsufficientSeats = errors.New("insufficient seats available")
	ErrInvalidTeams      = errors.New("home and away teams are required")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidSeats      = errors.New("total seats must be positive")
	ErrInvalidQuantity   = errors.New("seat quantity must be positive")
)

// Match is a fixture with an aggregate seat pool. totalSeats never changes
// after creation; availableSeats stays within [0, totalSeats].
type Match struct {
	id             uuid.UUID
	teamHome       string
	teamAway       string
	venue          string
	startTime      time.Time
	price          decimal.Decimal
	totalSeats     int
	availableSeats int
	isActive       bool
}

func NewMatch(teamHome, teamAway, venue string, startTime time.Time, price decimal.Decimal, totalSeats int) (*Match, error) {
	teamHome = strings.TrimSpace(teamHome)
	teamAway = strings.TrimSpace(teamAway)
	if teamHome == "" || teamAway == "" {
		return nil, ErrInvalidTeams
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if totalSeats <= 0 {
		return nil, ErrInvalidSeats
	}
	return &Match{
		id:             uuid.New(),
		teamHome:       teamHome,
		teamAway:       teamAway,
		venue:          strings.TrimSpace(venue),
		startTime:      startTime,
		price:          price,
		totalSeats:     totalSeats,
		availableSeats: totalSeats,
		isActive:       true,
	}, nil
}

func Reconstruct(id uuid.UUID, teamHome, teamAway, venue string, startTime time.Time, price decimal.Decimal, totalSeats, availableSeats int, isActive bool) *Match {
	return &Match{
		id:             id,
		teamHome:       teamHome,
		teamAway:       teamAway,
		venue:          venue,
		startTime:      startTime,
		price:          price,
		totalSeats:     totalSeats,
		availableSeats: availableSeats,
		isActive:       isActive,
	}
}

func (m *Match) ID() uuid.UUID          { return m.id }
func (m *Match) TeamHome() string       { return m.teamHome }
func (m *Match) TeamAway() string       { return m.teamAway }
func (m *Match) Venue() string          { return m.venue }
func (m *Match) StartTime() time.Time   { return m.startTime }
func (m *Match) Price() decimal.Decimal { return m.price }
func (m *Match) TotalSeats() int        { return m.totalSeats }
func (m *Match) AvailableSeats() int    { return m.availableSeats }
func (m *Match) IsActive() bool         { return m.isActive }

func (m *Match) Label() string {
	return Label(m.teamHome, m.teamAway)
}

func Label(home, away string) string {
	return home + " vs " + away
}

// CanReserve checks a locked snapshot before the conditional decrement.
func (m *Match) CanReserve(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if !m.isActive {
		return ErrMatchUnavailable
	}
	if m.availableSeats < qty {
		return ErrInsufficientSeats
	}
	return nil
}

// Reserve applies the decrement to the in-memory snapshot.
func (m *Match) Reserve(qty int) error {
	if err := m.CanReserve(qty); err != nil {
		return err
	}
	m.availableSeats -= qty
	return nil
}

// Release returns seats to the pool, clamped at totalSeats. It reports how
// many seats were actually restored.
func (m *Match) Release(qty int) int {
	if qty <= 0 {
		return 0
	}
	restored := min(qty, m.totalSeats-m.availableSeats)
	m.availableSeats += restored
	return restored
}
