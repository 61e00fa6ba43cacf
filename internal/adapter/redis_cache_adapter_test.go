package adapter

import (
	"context"
	"testing"
	"time"

	"fireforge/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_GetMissTranslatesToErrCacheMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectGet("missing-key").RedisNil()

	_, err := cache.Get(context.Background(), "missing-key")

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectSet("key", "value", time.Minute).SetVal("OK")
	mock.ExpectGet("key").SetVal("value")

	require.NoError(t, cache.Set(context.Background(), "key", "value", time.Minute))

	val, err := cache.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, "value", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectDel("key").SetVal(1)

	assert.NoError(t, cache.Delete(context.Background(), "key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
