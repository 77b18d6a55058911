package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/polish/pkg/adapters/redis"
	"github.com/aretw0/polish/pkg/domain"
	"github.com/aretw0/polish/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisStore_Contract(t *testing.T) {
	client := newTestClient(t)
	store := redis.NewFromClient(client)
	tests.RunAnalysisStoreContract(t, store)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	client := newTestClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:"))
	ctx := context.Background()

	res := &domain.Analysis{Expression: "a+b", Notation: domain.NotationInfix}
	require.NoError(t, store.Save(ctx, "id-1", res))

	val, err := client.Get(ctx, "custom:id-1").Result()
	require.NoError(t, err)
	assert.Contains(t, val, `"a+b"`)
}

func TestRedisStore_TTL(t *testing.T) {
	client := newTestClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Minute))
	ctx := context.Background()

	res := &domain.Analysis{Expression: "ab+", Notation: domain.NotationPostfix}
	require.NoError(t, store.Save(ctx, "id-ttl", res))

	ttl, err := client.TTL(ctx, "polish:analysis:id-ttl").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
