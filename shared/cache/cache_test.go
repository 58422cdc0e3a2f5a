package cache_test

import (
	"context"
	"errors"
	"flightbook/infras/otel/mocks"
	"flightbook/shared/cache"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsEntry struct {
	Total  int `json:"total"`
	Legacy int `json:"legacy"`
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())
	ctx := context.Background()

	mock.ExpectSet("booking:stats", []byte(`{"total":3,"legacy":1}`), 60*time.Second).SetVal("OK")
	require.NoError(t, redisCache.Save(ctx, "booking:stats", statsEntry{Total: 3, Legacy: 1}, 60))

	mock.ExpectGet("booking:stats").SetVal(`{"total":3,"legacy":1}`)

	var got statsEntry
	require.NoError(t, redisCache.Get(ctx, "booking:stats", &got))
	assert.Equal(t, statsEntry{Total: 3, Legacy: 1}, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetString(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectGet("limiter:1.2.3.4").SetVal("7")

	var got string
	require.NoError(t, redisCache.Get(context.Background(), "limiter:1.2.3.4", &got))
	assert.Equal(t, "7", got)
}

func TestRedisCache_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectGet("user:get:42").RedisNil()

	var got statsEntry
	err := redisCache.Get(context.Background(), "user:get:42", &got)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectDel("user:get:42").SetVal(1)
	assert.NoError(t, redisCache.Delete(context.Background(), "user:get:42"))

	mock.ExpectDel("user:get:43").SetErr(errors.New("connection refused"))
	assert.Error(t, redisCache.Delete(context.Background(), "user:get:43"))
}

func TestRedisCache_Clear(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectScan(0, "booking:stats*", 0).SetVal([]string{"booking:stats"}, 0)
	mock.ExpectDel("booking:stats").SetVal(1)

	assert.NoError(t, redisCache.Clear(context.Background(), "booking:stats*"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
