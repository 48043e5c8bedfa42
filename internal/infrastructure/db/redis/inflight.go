package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultInFlightTTL = 30 * time.Second

// releaseScript deletes the lock only when it still holds our token, so a
// slow request cannot release a lock that expired and was re-acquired.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// InFlightGuard allows one submission per form key at a time.
// Key format: inflight:<route>:<form_key>
type InFlightGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInFlightGuard creates a guard; ttl caps how long a crashed request can
// hold a key.
func NewInFlightGuard(client *redis.Client, ttl time.Duration) *InFlightGuard {
	if ttl <= 0 {
		ttl = defaultInFlightTTL
	}
	return &InFlightGuard{client: client, ttl: ttl}
}

// Acquire claims the key. ok is false when another submission holds it. The
// returned token must be passed to Release.
func (g *InFlightGuard) Acquire(ctx context.Context, route, formKey string) (token string, ok bool, err error) {
	token = uuid.NewString()
	ok, err = g.client.SetNX(ctx, inFlightKey(route, formKey), token, g.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire in-flight key: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the key if token still owns it.
func (g *InFlightGuard) Release(ctx context.Context, route, formKey, token string) error {
	if err := releaseScript.Run(ctx, g.client, []string{inFlightKey(route, formKey)}, token).Err(); err != nil {
		return fmt.Errorf("release in-flight key: %w", err)
	}
	return nil
}

func inFlightKey(route, formKey string) string {
	return fmt.Sprintf("inflight:%s:%s", route, formKey)
}
