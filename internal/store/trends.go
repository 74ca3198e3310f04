package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/trends/trends_api/internal/errlocal"
	"github.com/trends/trends_api/internal/models"
)

const storeSystem = "store"

const (
	trendColumns = `id, name, description, score, created_at, updated_at`

	createTrendQuery = `INSERT INTO trends (name, description, score)
VALUES ($1, $2, $3)
RETURNING ` + trendColumns

	getTrendQuery       = `SELECT ` + trendColumns + ` FROM trends WHERE id = $1`
	getTrendByNameQuery = `SELECT ` + trendColumns + ` FROM trends WHERE name = $1`
	listTrendsQuery     = `SELECT ` + trendColumns + ` FROM trends ORDER BY score DESC, name ASC LIMIT $1 OFFSET $2`

	updateTrendScoreQuery = `UPDATE trends SET score = $2, updated_at = now() WHERE id = $1`
	deleteTrendQuery      = `DELETE FROM trends WHERE id = $1`
	deleteAllTrendsQuery  = `DELETE FROM trends`
)

func scanTrend(row pgx.Row, trend *models.Trend) error {
	return row.Scan(
		&trend.ID,
		&trend.Name,
		&trend.Description,
		&trend.Score,
		&trend.CreatedAt,
		&trend.UpdatedAt,
	)
}

func (s *pgStore) CreateTrend(ctx context.Context, trend *models.Trend) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	row := s.q.QueryRow(ctx, createTrendQuery, trend.Name, trend.Description, trend.Score)
	if err := scanTrend(row, trend); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errlocal.NewErrConflict(fmt.Sprintf("trend %q already exists", trend.Name), storeSystem,
				map[string]any{"name": trend.Name})
		}
		return errlocal.NewErrInternal("failed to create trend", err.Error(),
			map[string]any{"name": trend.Name})
	}

	return nil
}

func (s *pgStore) GetTrend(ctx context.Context, id uuid.UUID) (*models.Trend, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	var trend models.Trend
	if err := scanTrend(s.q.QueryRow(ctx, getTrendQuery, id), &trend); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errlocal.NewErrNotFound(fmt.Sprintf("trend %s not found", id), storeSystem,
				map[string]any{"trend_id": id.String()})
		}
		return nil, errlocal.NewErrInternal("failed to get trend", err.Error(),
			map[string]any{"trend_id": id.String()})
	}

	return &trend, nil
}

func (s *pgStore) GetTrendByName(ctx context.Context, name string) (*models.Trend, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	var trend models.Trend
	if err := scanTrend(s.q.QueryRow(ctx, getTrendByNameQuery, name), &trend); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errlocal.NewErrNotFound(fmt.Sprintf("trend %q not found", name), storeSystem,
				map[string]any{"name": name})
		}
		return nil, errlocal.NewErrInternal("failed to get trend", err.Error(),
			map[string]any{"name": name})
	}

	return &trend, nil
}

func (s *pgStore) ListTrends(ctx context.Context, limit, offset int) ([]models.Trend, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultQueryLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.q.Query(ctx, listTrendsQuery, limit, offset)
	if err != nil {
		return nil, errlocal.NewErrInternal("failed to list trends", err.Error(),
			map[string]any{"limit": limit, "offset": offset})
	}

	trends, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Trend])
	if err != nil {
		return nil, errlocal.NewErrInternal("failed to read trends", err.Error(),
			map[string]any{"limit": limit, "offset": offset})
	}

	return trends, nil
}

func (s *pgStore) UpdateTrendScore(ctx context.Context, id uuid.UUID, score float64) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	tag, err := s.q.Exec(ctx, updateTrendScoreQuery, id, score)
	if err != nil {
		return errlocal.NewErrInternal("failed to update trend score", err.Error(),
			map[string]any{"trend_id": id.String()})
	}
	if tag.RowsAffected() == 0 {
		return errlocal.NewErrNotFound(fmt.Sprintf("trend %s not found", id), storeSystem,
			map[string]any{"trend_id": id.String()})
	}

	return nil
}

func (s *pgStore) DeleteTrend(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	tag, err := s.q.Exec(ctx, deleteTrendQuery, id)
	if err != nil {
		return errlocal.NewErrInternal("failed to delete trend", err.Error(),
			map[string]any{"trend_id": id.String()})
	}
	if tag.RowsAffected() == 0 {
		return errlocal.NewErrNotFound(fmt.Sprintf("trend %s not found", id), storeSystem,
			map[string]any{"trend_id": id.String()})
	}

	return nil
}

// ImportTrends creates every trend in one transaction. A failing record
// rolls back the whole batch and its error is returned unchanged.
func (s *pgStore) ImportTrends(ctx context.Context, trends []*models.Trend) error {
	if len(trends) == 0 {
		return nil
	}

	err := s.ExecTx(ctx, func(tx Store) error {
		for _, trend := range trends {
			if err := tx.CreateTrend(ctx, trend); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var le errlocal.LocalError
		if errors.As(err, &le) {
			return err
		}
		return errlocal.NewErrInternal("failed to import trends", err.Error(),
			map[string]any{"count": len(trends)})
	}

	return nil
}

// DeleteAllTrends removes every trend and reports how many were deleted.
// An empty table is not an error.
func (s *pgStore) DeleteAllTrends(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	tag, err := s.q.Exec(ctx, deleteAllTrendsQuery)
	if err != nil {
		return 0, errlocal.NewErrInternal("failed to delete trends", err.Error(), nil)
	}

	return tag.RowsAffected(), nil
}
