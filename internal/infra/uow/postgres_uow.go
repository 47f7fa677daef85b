package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"goalkick/internal/domain/staff"
	"goalkick/internal/domain/ticket"
	"goalkick/internal/infra/readstore"
	"goalkick/internal/infra/repository"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/pkg/errs"
	"goalkick/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type RetryPolicy struct {
	MaxRetries  int
	BaseBackoff time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseBackoff: 100 * time.Millisecond}

type Option func(*PostgresUoW)

func WithRetryPolicy(p RetryPolicy) Option {
	return func(u *PostgresUoW) { u.retry = p }
}

// WithRetryObserver is called before each retry with the failed attempt number.
func WithRetryObserver(fn func(attempt int, err error)) Option {
	return func(u *PostgresUoW) { u.onRetry = fn }
}

type PostgresUoW struct {
	pool    *pgxpool.Pool
	q       *sqlc.Queries
	retry   RetryPolicy
	onRetry func(attempt int, err error)
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, opts ...Option) shared.UnitOfWork {
	u := &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: DefaultRetryPolicy,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.retry.MaxRetries
	base := u.retry.BaseBackoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx:  pgxTx,
			pgxTx: pgxTx,
			uow:   u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)
		if u.onRetry != nil {
			u.onRetry(attempt+1, err)
		}

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx  sqlc.DBTX
	pgxTx pgx.Tx
	uow   *PostgresUoW

	// Lazy-initialized repositories
	matchRepo    shared.MatchRepository
	ticketRepo   shared.TicketRepository
	paymentRepo  shared.PaymentRepository
	buyerRepo    shared.BuyerRepository
	staffRepo    shared.StaffRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

// Savepoint relies on pgx nested transactions, which issue SAVEPOINT on the
// same connection. Repositories keep writing through the outer handle.
func (t *pgTx) Savepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	sp, err := t.pgxTx.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to create savepoint")
	}
	if err := fn(ctx); err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return errs.Wrap(rbErr, "failed to roll back to savepoint")
		}
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to release savepoint")
	}
	return nil
}

func (t *pgTx) Matches() shared.MatchRepository {
	if t.matchRepo == nil {
		t.matchRepo = repository.NewMatchRepository(t.uow.q, t.dbtx)
	}
	return t.matchRepo
}

func (t *pgTx) Tickets() shared.TicketRepository {
	if t.ticketRepo == nil {
		t.ticketRepo = repository.NewTicketRepository(t.uow.q, t.dbtx)
	}
	return t.ticketRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) Buyers() shared.BuyerRepository {
	if t.buyerRepo == nil {
		t.buyerRepo = repository.NewBuyerRepository(t.uow.q, t.dbtx)
	}
	return t.buyerRepo
}

func (t *pgTx) Staff() shared.StaffRepository {
	if t.staffRepo == nil {
		t.staffRepo = repository.NewStaffRepository(t.uow.q, t.dbtx)
	}
	return t.staffRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	staffStore  *readstore.StaffReadStore
	ticketStore *readstore.TicketReadStore
	matchStore  *readstore.MatchReadStore
}

func (r *commandReads) StaffByEmail(ctx context.Context, email staff.Email) (*shared.StaffSnapshot, error) {
	if r.staffStore == nil {
		r.staffStore = readstore.NewStaffReadStore(r.uow.q, r.dbtx)
	}
	return r.staffStore.FindByEmail(ctx, email.Value())
}

func (r *commandReads) TicketCodeExists(ctx context.Context, code ticket.Code) (bool, error) {
	if r.ticketStore == nil {
		r.ticketStore = readstore.NewTicketReadStore(r.uow.q, r.dbtx)
	}
	return r.ticketStore.CodeExists(ctx, code.String())
}

func (r *commandReads) MatchByID(ctx context.Context, id uuid.UUID) (*shared.MatchSnapshot, error) {
	if r.matchStore == nil {
		r.matchStore = readstore.NewMatchReadStore(r.uow.q, r.dbtx)
	}
	m, err := r.matchStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.MatchSnapshot{
		ID:        m.ID,
		TeamHome:  m.TeamHome,
		TeamAway:  m.TeamAway,
		Venue:     m.Venue,
		StartTime: m.StartTime,
	}, nil
}
