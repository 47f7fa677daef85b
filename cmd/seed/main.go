// seed loads matches and staff accounts from a YAML file.
//
// Staff rows are upserted by email, so re-running updates passwords and
// roles. Matches are always inserted.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"goalkick/internal/infra/db"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/infra/uow"
	"goalkick/internal/pkg/config"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/pkg/password"
	"goalkick/internal/usecase/shared"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		filePath    string
		dryRun      bool
		skipMatches bool
	)

	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringVarP(&filePath, "file", "f", "seed.yaml", "path to the YAML fixture")
	flagSet.BoolVar(&dryRun, "dry-run", false, "validate the fixture without writing")
	flagSet.BoolVar(&skipMatches, "skip-matches", false, "only seed staff accounts")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return errs.Wrap(err, "open fixture")
	}
	defer f.Close()

	fixt, err := loadFixture(f)
	if err != nil {
		return err
	}
	matches, err := fixt.matches()
	if err != nil {
		return err
	}
	staffSeeds, err := fixt.staff()
	if err != nil {
		return err
	}
	if skipMatches {
		matches = nil
	}

	slog.Info("fixture loaded", "matches", len(matches), "staff", len(staffSeeds), "dry_run", dryRun)
	if dryRun {
		return nil
	}

	ctx := context.Background()
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// hash outside the transaction so a retry does not redo bcrypt
	hashes := make([]string, len(staffSeeds))
	for i, s := range staffSeeds {
		if hashes[i], err = password.HashPassword(s.credentials.Password().Value()); err != nil {
			return errs.Wrapf(err, "hash password for %s", s.credentials.Email().Value())
		}
	}

	u := uow.NewPostgresUoW(pool, sqlc.New())
	return u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, m := range matches {
			if err := tx.Matches().Create(ctx, tx.DB(), m); err != nil {
				return errs.Wrapf(err, "create match %s", m.Label())
			}
			slog.Info("match created", "id", m.ID(), "match", m.Label(), "seats", m.TotalSeats())
		}
		for i, s := range staffSeeds {
			id, err := tx.Staff().Upsert(ctx, tx.DB(), s.credentials.Email(), hashes[i], s.role)
			if err != nil {
				return errs.Wrapf(err, "upsert staff %s", s.credentials.Email().Value())
			}
			slog.Info("staff upserted", "id", id, "email", s.credentials.Email().Value(), "role", s.role)
		}
		return nil
	})
}
