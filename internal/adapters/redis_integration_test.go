//go:build integration

package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisCacheSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
	cache     *RedisSuggestionCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	addr, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	s.client, err = NewRedisClient(ctx, RedisOptions{URL: addr, DialTimeout: 5 * time.Second})
	s.Require().NoError(err)
	s.cache = NewRedisSuggestionCache(s.client)
}

func (s *RedisCacheSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *RedisCacheSuite) TestMissIsNotAnError() {
	p, ok, err := s.cache.Get(context.Background(), "absent")
	s.Require().NoError(err)
	s.False(ok)
	s.Nil(p)
}

func (s *RedisCacheSuite) TestPutThenGet() {
	ctx := context.Background()
	p := samplePlan()

	s.Require().NoError(s.cache.Put(ctx, "pair", p, time.Minute))

	got, ok, err := s.cache.Get(ctx, "pair")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(p, got)

	ttl, err := s.client.TTL(ctx, suggestionKeyPrefix+"pair").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *RedisCacheSuite) TestCorruptEntry() {
	ctx := context.Background()
	s.Require().NoError(s.client.Set(ctx, suggestionKeyPrefix+"bad", "{", 0).Err())

	_, _, err := s.cache.Get(ctx, "bad")
	s.Error(err)
}
