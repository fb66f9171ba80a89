package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindvr/yt-live-monitor/internal/domain"
)

// CheckRepo persists completed checks for the /history endpoint.
type CheckRepo struct {
	pool *pgxpool.Pool
}

func NewCheckRepo(pool *pgxpool.Pool) *CheckRepo {
	return &CheckRepo{pool: pool}
}

func (r *CheckRepo) Record(ctx context.Context, result domain.CheckResult) error {
	checkedAt, err := time.Parse(time.RFC3339, result.CheckedAt)
	if err != nil {
		return fmt.Errorf("parse checked_at %q: %w", result.CheckedAt, err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO live_checks (channel_id, channel_input, is_live, livestream_url, title, error, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.ChannelID,
		result.ChannelIDOrURL,
		result.IsLive,
		result.LivestreamURL,
		result.Title,
		result.Error,
		checkedAt,
	)
	if err != nil {
		return fmt.Errorf("insert check: %w", err)
	}
	return nil
}

func (r *CheckRepo) Recent(ctx context.Context, limit int) ([]domain.CheckResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT channel_id, channel_input, is_live, livestream_url, title, error, checked_at
		FROM live_checks
		ORDER BY checked_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	var results []domain.CheckResult
	for rows.Next() {
		var res domain.CheckResult
		var checkedAt time.Time
		if err := rows.Scan(&res.ChannelID, &res.ChannelIDOrURL, &res.IsLive, &res.LivestreamURL, &res.Title, &res.Error, &checkedAt); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		res.CheckedAt = checkedAt.UTC().Format(time.RFC3339)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return results, nil
}
