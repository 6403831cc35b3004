package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProfile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := client
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(prev) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	fetchCalls := 0
	fetch := func(dest *cachedProfile) func() error {
		return func() error {
			fetchCalls++
			dest.ID = 1
			dest.Username = "ada"
			return nil
		}
	}

	var first cachedProfile
	require.NoError(t, Aside(ctx, ProfileKey(1), &first, ProfileTTL, fetch(&first)))
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, "ada", first.Username)

	var second cachedProfile
	require.NoError(t, Aside(ctx, ProfileKey(1), &second, ProfileTTL, fetch(&second)))
	assert.Equal(t, 1, fetchCalls, "second read should be served from cache")
	assert.Equal(t, "ada", second.Username)
}

func TestAside_InvalidateForcesRefetch(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	fetchCalls := 0
	var p cachedProfile
	fetch := func() error {
		fetchCalls++
		p.ID = 1
		p.Username = "ada"
		return nil
	}

	require.NoError(t, Aside(ctx, ProfileKey(1), &p, ProfileTTL, fetch))
	InvalidateProfile(ctx, 1)
	require.NoError(t, Aside(ctx, ProfileKey(1), &p, ProfileTTL, fetch))
	assert.Equal(t, 2, fetchCalls)
}

func TestAside_TTLExpiry(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	fetchCalls := 0
	var p cachedProfile
	fetch := func() error {
		fetchCalls++
		p.ID = 2
		p.Username = "grace"
		return nil
	}

	require.NoError(t, Aside(ctx, ProfileKey(2), &p, time.Second, fetch))
	mr.FastForward(2 * time.Second)
	require.NoError(t, Aside(ctx, ProfileKey(2), &p, time.Second, fetch))
	assert.Equal(t, 2, fetchCalls)
}

func TestAside_NilClientFallsThrough(t *testing.T) {
	prev := client
	SetClient(nil)
	t.Cleanup(func() { SetClient(prev) })

	fetchCalls := 0
	var p cachedProfile
	err := Aside(context.Background(), ProfileKey(3), &p, ProfileTTL, func() error {
		fetchCalls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCalls)
}

func TestAside_CorruptEntryDropped(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()
	require.NoError(t, mr.Set(ProfileKey(4), "{not json"))

	fetchCalls := 0
	var p cachedProfile
	err := Aside(ctx, ProfileKey(4), &p, ProfileTTL, func() error {
		fetchCalls++
		p.Username = "fresh"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, "fresh", p.Username)
}
