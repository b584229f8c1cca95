package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const presenceGeoKey = "partners:online"

type (
	// PresenceTracker keeps the set of online delivery partners, with their
	// last known position, in Redis.
	PresenceTracker interface {
		SetOnline(ctx context.Context, partnerUserID string, lat, lng float64) error
		SetOffline(ctx context.Context, partnerUserID string) error
		OnlineCount(ctx context.Context) (int64, error)
	}

	redisPresence struct {
		client *redis.Client
	}
)

func NewRedisPresence(client *redis.Client) PresenceTracker {
	return &redisPresence{client: client}
}

func (p *redisPresence) SetOnline(ctx context.Context, partnerUserID string, lat, lng float64) error {
	if err := p.client.GeoAdd(ctx, presenceGeoKey, &redis.GeoLocation{
		Name:      partnerUserID,
		Latitude:  lat,
		Longitude: lng,
	}).Err(); err != nil {
		return fmt.Errorf("presence geoadd: %w", err)
	}
	return p.client.HSet(ctx, presenceKey(partnerUserID),
		"last_seen", time.Now().Unix(),
	).Err()
}

func (p *redisPresence) SetOffline(ctx context.Context, partnerUserID string) error {
	if err := p.client.ZRem(ctx, presenceGeoKey, partnerUserID).Err(); err != nil {
		return fmt.Errorf("presence zrem: %w", err)
	}
	return p.client.Del(ctx, presenceKey(partnerUserID)).Err()
}

func (p *redisPresence) OnlineCount(ctx context.Context) (int64, error) {
	return p.client.ZCard(ctx, presenceGeoKey).Result()
}

func presenceKey(partnerUserID string) string {
	return fmt.Sprintf("partner:%s:presence", partnerUserID)
}

// NopPresence is used when Redis is not configured.
type NopPresence struct{}

func (NopPresence) SetOnline(ctx context.Context, partnerUserID string, lat, lng float64) error {
	return nil
}
func (NopPresence) SetOffline(ctx context.Context, partnerUserID string) error { return nil }
func (NopPresence) OnlineCount(ctx context.Context) (int64, error)             { return 0, nil }
