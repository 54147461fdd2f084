package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRedisClientUnconfigured(t *testing.T) {
	client, err := NewRedisClient(context.Background(), RedisOptions{})
	require.NoError(t, err)
	require.Nil(t, client)
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), RedisOptions{URL: "http://not-redis"})
	require.ErrorContains(t, err, "parse redis URL")
}
