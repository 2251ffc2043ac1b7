package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/logger"
)

// PostgresAccessLogRepository implements AccessLogRepository using PostgreSQL.
type PostgresAccessLogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccessLogRepository creates a new PostgresAccessLogRepository.
func NewPostgresAccessLogRepository(pool *pgxpool.Pool) *PostgresAccessLogRepository {
	return &PostgresAccessLogRepository{pool: pool}
}

// Record stores one audit event. The trail is best-effort: a failed
// insert is logged and swallowed so it can never break the request
// that produced it.
func (r *PostgresAccessLogRepository) Record(ctx context.Context, event domain.AccessEvent) {
	var eventData []byte
	if event.EventData != nil {
		var err error
		eventData, err = json.Marshal(event.EventData)
		if err != nil {
			logger.Warn("access log event data not serializable",
				"event_type", event.EventType,
				"error", err.Error())
			eventData = nil
		}
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO access_logs (user_id, event_type, event_data)
		VALUES ($1, $2, $3)
	`, event.UserID, event.EventType, eventData)
	if err != nil {
		logger.Warn("access log insert failed",
			"event_type", event.EventType,
			"error", err.Error())
	}
}

// TopViewedPosts returns the most viewed posts by recorded view events,
// joined against the posts table for titles.
func (r *PostgresAccessLogRepository) TopViewedPosts(ctx context.Context, limit int) ([]domain.PostViewCount, error) {
	if limit < 1 {
		limit = 5
	}

	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.title, COUNT(*) AS views
		FROM access_logs al
		JOIN posts p ON p.id = (al.event_data->>'post_id')::uuid
		WHERE al.event_type = $1
		GROUP BY p.id, p.title
		ORDER BY views DESC, p.id
		LIMIT $2
	`, domain.EventViewPost, limit)
	if err != nil {
		return nil, fmt.Errorf("top viewed posts: %w", err)
	}
	defer rows.Close()

	top := make([]domain.PostViewCount, 0, limit)
	for rows.Next() {
		var pv domain.PostViewCount
		if err := rows.Scan(&pv.PostID, &pv.Title, &pv.Views); err != nil {
			return nil, fmt.Errorf("scan view count: %w", err)
		}
		top = append(top, pv)
	}
	return top, rows.Err()
}

// ActivityPerDay returns the event count per calendar day over the
// trailing window, oldest day first. Days without events are omitted.
func (r *PostgresAccessLogRepository) ActivityPerDay(ctx context.Context, days int) ([]domain.DailyActivity, error) {
	if days < 1 {
		days = 7
	}

	rows, err := r.pool.Query(ctx, `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM access_logs
		WHERE created_at >= NOW() - make_interval(days => $1)
		GROUP BY day
		ORDER BY day
	`, days)
	if err != nil {
		return nil, fmt.Errorf("activity per day: %w", err)
	}
	defer rows.Close()

	activity := make([]domain.DailyActivity, 0, days)
	for rows.Next() {
		var da domain.DailyActivity
		if err := rows.Scan(&da.Day, &da.Events); err != nil {
			return nil, fmt.Errorf("scan daily activity: %w", err)
		}
		activity = append(activity, da)
	}
	return activity, rows.Err()
}
