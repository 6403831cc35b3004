package cache

import (
	"context"
	"fmt"
	"time"
)

// The basic profile row is the only cached object. Post reads and listings
// carry viewer-specific state (liked flag, live counts) and are always
// served from the database.
const (
	ProfileKeyPrefix = "profile:%d"
)

const (
	ProfileTTL = 5 * time.Minute
)

func ProfileKey(profileID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, profileID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateProfile(ctx context.Context, profileID uint) {
	Invalidate(ctx, ProfileKey(profileID))
}
