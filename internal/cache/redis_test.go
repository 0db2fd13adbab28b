package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	t.Cleanup(func() { _ = Close() })
	require.NotNil(t, GetClient())
	return mr
}

func TestAside_CachesLoadedValue(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	loads := 0
	load := func(dest *cachedThing) func() error {
		return func() error {
			loads++
			dest.ID = 7
			dest.Name = "cached"
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "thing:7", &first, time.Minute, load(&first)))
	assert.Equal(t, 1, loads)

	var second cachedThing
	require.NoError(t, Aside(ctx, "thing:7", &second, time.Minute, load(&second)))
	assert.Equal(t, 1, loads, "second read must be served from cache")
	assert.Equal(t, first, second)
}

func TestAside_LoaderErrorNotCached(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var dest cachedThing
	err := Aside(ctx, "thing:broken", &dest, time.Minute, func() error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	exists := GetClient().Exists(ctx, "thing:broken").Val()
	assert.Zero(t, exists)
}

func TestAside_WithoutRedis(t *testing.T) {
	require.NoError(t, Close())

	loads := 0
	var dest cachedThing
	load := func() error {
		loads++
		dest.ID = 1
		return nil
	}

	require.NoError(t, Aside(context.Background(), "thing:1", &dest, time.Minute, load))
	require.NoError(t, Aside(context.Background(), "thing:1", &dest, time.Minute, load))
	assert.Equal(t, 2, loads, "every read loads when caching is disabled")
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(ProfileKey("alice"), `{"id":1}`))
	InvalidateProfile(ctx, "alice")
	assert.False(t, mr.Exists(ProfileKey("alice")))

	require.NoError(t, mr.Set(PostKey(3), `{"id":3}`))
	InvalidatePost(ctx, 3)
	assert.False(t, mr.Exists(PostKey(3)))
}
