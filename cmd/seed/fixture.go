package main

import (
	"io"
	"time"

	"goalkick/internal/domain/match"
	"goalkick/internal/domain/staff"
	"goalkick/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	Matches []matchFixture `yaml:"matches"`
	Staff   []staffFixture `yaml:"staff"`
}

type matchFixture struct {
	TeamHome   string    `yaml:"team_home"`
	TeamAway   string    `yaml:"team_away"`
	Venue      string    `yaml:"venue"`
	StartTime  time.Time `yaml:"start_time"`
	Price      string    `yaml:"price"`
	TotalSeats int       `yaml:"total_seats"`
	Inactive   bool      `yaml:"inactive"`
}

type staffFixture struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type staffSeed struct {
	credentials staff.Credentials
	role        staff.Role
}

func loadFixture(r io.Reader) (*fixture, error) {
	var f fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errs.Wrap(err, "decode fixture")
	}
	return &f, nil
}

func (f *fixture) matches() ([]*match.Match, error) {
	out := make([]*match.Match, 0, len(f.Matches))
	for i, mf := range f.Matches {
		price, err := decimal.NewFromString(mf.Price)
		if err != nil {
			return nil, errs.Wrapf(err, "matches[%d]: price", i)
		}
		m, err := match.NewMatch(mf.TeamHome, mf.TeamAway, mf.Venue, mf.StartTime, price, mf.TotalSeats)
		if err != nil {
			return nil, errs.Wrapf(err, "matches[%d]", i)
		}
		if mf.Inactive {
			m = match.Reconstruct(m.ID(), m.TeamHome(), m.TeamAway(), m.Venue(), m.StartTime(), m.Price(), m.TotalSeats(), m.AvailableSeats(), false)
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fixture) staff() ([]staffSeed, error) {
	out := make([]staffSeed, 0, len(f.Staff))
	for i, sf := range f.Staff {
		creds, err := staff.NewCredentials(sf.Email, sf.Password)
		if err != nil {
			return nil, errs.Wrapf(err, "staff[%d]", i)
		}
		role, err := staff.NewRole(sf.Role)
		if err != nil {
			return nil, errs.Wrapf(err, "staff[%d]", i)
		}
		out = append(out, staffSeed{credentials: creds, role: role})
	}
	return out, nil
}
