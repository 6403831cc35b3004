package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"ripple/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern for JSON-serializable values.
// On a hit, dest is populated from Redis. On a miss, fetch is invoked and
// expected to populate dest; the result is then written back with the given
// TTL. When Redis is unavailable, Aside degrades to calling fetch directly.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
			return nil
		}
		// Corrupt entry: drop it and fall through to the fetch path.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		middleware.Logger.WarnContext(ctx, "cache read failed, falling back to source",
			slog.String("key", key), slog.String("error", err.Error()))
	}

	if err := fetch(); err != nil {
		return err
	}

	if raw, err := json.Marshal(dest); err == nil {
		if setErr := client.Set(ctx, key, raw, ttl).Err(); setErr != nil {
			middleware.Logger.WarnContext(ctx, "cache write failed",
				slog.String("key", key), slog.String("error", setErr.Error()))
		}
	}

	return nil
}
