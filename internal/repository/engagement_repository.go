package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	viewTotalKey    = "portfolio:views:total"
	viewSessionsKey = "portfolio:views:sessions"
)

// ViewStats aggregates page view counters.
type ViewStats struct {
	Total          int64
	UniqueVisitors int64
}

// EngagementRepository tracks page views. Counters live in an injected
// store rather than process memory so the service itself stays
// stateless across restarts and replicas.
type EngagementRepository interface {
	// IncrementViews bumps the total counter and records the session id
	// when present, reporting whether that session was seen for the
	// first time.
	IncrementViews(ctx context.Context, sessionID string) (ViewStats, bool, error)
	GetViews(ctx context.Context) (ViewStats, error)
}

type engagementRepository struct {
	client *redis.Client
}

// NewEngagementRepository returns a Redis-backed implementation.
func NewEngagementRepository(client *redis.Client) EngagementRepository {
	return &engagementRepository{client: client}
}

func (r *engagementRepository) IncrementViews(ctx context.Context, sessionID string) (ViewStats, bool, error) {
	total, err := r.client.Incr(ctx, viewTotalKey).Result()
	if err != nil {
		return ViewStats{}, false, err
	}

	newVisitor := false
	if sessionID != "" {
		added, err := r.client.SAdd(ctx, viewSessionsKey, sessionID).Result()
		if err != nil {
			return ViewStats{}, false, err
		}
		newVisitor = added > 0
	}

	unique, err := r.client.SCard(ctx, viewSessionsKey).Result()
	if err != nil {
		return ViewStats{}, false, err
	}
	return ViewStats{Total: total, UniqueVisitors: unique}, newVisitor, nil
}

func (r *engagementRepository) GetViews(ctx context.Context) (ViewStats, error) {
	total, err := r.client.Get(ctx, viewTotalKey).Int64()
	if err != nil && err != redis.Nil {
		return ViewStats{}, err
	}

	unique, err := r.client.SCard(ctx, viewSessionsKey).Result()
	if err != nil {
		return ViewStats{}, err
	}
	return ViewStats{Total: total, UniqueVisitors: unique}, nil
}
