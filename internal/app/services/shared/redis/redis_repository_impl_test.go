package redis

import (
	"context"
	"net/http"
	"testing"
	"time"

	"booking-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisRepository_Set(t *testing.T) {
	t.Run("values that cannot be encoded never reach redis", func(t *testing.T) {
		repo := NewRedisRepository(unreachableClient(t))

		err := repo.Set(context.Background(), "key", make(chan int), time.Minute)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "marshal")
	})

	t.Run("connection failures are wrapped", func(t *testing.T) {
		repo := NewRedisRepository(unreachableClient(t))

		err := repo.Set(context.Background(), "key", map[string]string{"a": "b"}, time.Minute)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "redis")
	})
}

func TestRedisRepository_GetAndDelete(t *testing.T) {
	repo := NewRedisRepository(unreachableClient(t))

	_, err := repo.Get(context.Background(), "key")
	assert.Error(t, err)

	err = repo.Delete(context.Background(), "key")
	assert.Error(t, err)
}
