package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trends/trends_api/internal/config"
	"github.com/trends/trends_api/internal/models"
)

const (
	connTimeout       = time.Second * 5
	defaultQueryLimit = 100
)

type Store interface {
	CreateTrend(ctx context.Context, trend *models.Trend) error
	GetTrend(ctx context.Context, id uuid.UUID) (*models.Trend, error)
	GetTrendByName(ctx context.Context, name string) (*models.Trend, error)
	ListTrends(ctx context.Context, limit, offset int) ([]models.Trend, error)
	UpdateTrendScore(ctx context.Context, id uuid.UUID, score float64) error
	DeleteTrend(ctx context.Context, id uuid.UUID) error
	ImportTrends(ctx context.Context, trends []*models.Trend) error
	DeleteAllTrends(ctx context.Context) (int64, error)

	Ping(ctx context.Context) error
	Close()
	ExecTx(ctx context.Context, fn func(Store) error) error
}

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Connection interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type pgStore struct {
	q    DBTX
	pool Connection
}

func NewPgStore(q DBTX, conn Connection) Store {
	return &pgStore{q: q, pool: conn}
}

func NewPGStore(conf config.Config) (Store, *pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, conf.DB.DSN())
	if err != nil {
		return nil, nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return NewPgStore(pool, pool), pool, nil
}

func (s *pgStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	return s.pool.Ping(ctx)
}

func (s *pgStore) Close() {
	s.pool.Close()
}

// ExecTx runs fn against a store bound to one transaction. The transaction is
// committed only if fn returns nil.
func (s *pgStore) ExecTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&pgStore{q: tx, pool: s.pool}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
