package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/debit_card_app/internal/adapters/cache"
	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RedisSummaryCacheTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	client *redis.Client
	cache  *cache.RedisSummaryCache
	ctx    context.Context
	cardID uuid.UUID
}

func (suite *RedisSummaryCacheTestSuite) SetupTest() {
	suite.server = miniredis.RunT(suite.T())
	suite.client = redis.NewClient(&redis.Options{Addr: suite.server.Addr()})
	suite.cache = cache.NewRedisSummaryCache(suite.client, 5*time.Minute)
	suite.ctx = context.Background()
	suite.cardID = uuid.New()
}

func (suite *RedisSummaryCacheTestSuite) TearDownTest() {
	suite.NoError(suite.client.Close())
}

func (suite *RedisSummaryCacheTestSuite) summary(balance string) domain.DebitCardSummary {
	return domain.DebitCardSummary{
		CardUUID: suite.cardID,
		Balance:  decimal.RequireFromString(balance),
	}
}

func (suite *RedisSummaryCacheTestSuite) key() string {
	return "debit_card:summary:" + suite.cardID.String()
}

func (suite *RedisSummaryCacheTestSuite) TestGet_Miss() {
	_, err := suite.cache.Get(suite.ctx, suite.cardID)
	suite.ErrorIs(err, cache.ErrCacheMiss)
}

func (suite *RedisSummaryCacheTestSuite) TestPut_ThenGet() {
	limit := decimal.RequireFromString("-20.00005")
	want := suite.summary("-0.00001")
	want.Limit = &limit
	want.Blocked = true

	suite.Require().NoError(suite.cache.Put(suite.ctx, 1, want))

	got, err := suite.cache.Get(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.True(got.Equal(want))
	suite.Equal(5*time.Minute, suite.server.TTL(suite.key()))
}

func (suite *RedisSummaryCacheTestSuite) TestPut_OlderVersionDoesNotOverwrite() {
	suite.Require().NoError(suite.cache.Put(suite.ctx, 3, suite.summary("-5")))
	suite.Require().NoError(suite.cache.Put(suite.ctx, 2, suite.summary("0")))

	got, err := suite.cache.Get(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.True(got.Balance.Equal(decimal.NewFromInt(-5)))
}

func (suite *RedisSummaryCacheTestSuite) TestPut_SameVersionDoesNotOverwrite() {
	suite.Require().NoError(suite.cache.Put(suite.ctx, 3, suite.summary("-5")))
	suite.Require().NoError(suite.cache.Put(suite.ctx, 3, suite.summary("7")))

	got, err := suite.cache.Get(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.True(got.Balance.Equal(decimal.NewFromInt(-5)))
}

func (suite *RedisSummaryCacheTestSuite) TestPut_NewerVersionOverwrites() {
	suite.Require().NoError(suite.cache.Put(suite.ctx, 3, suite.summary("-5")))
	suite.Require().NoError(suite.cache.Put(suite.ctx, 4, suite.summary("-2")))

	got, err := suite.cache.Get(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.True(got.Balance.Equal(decimal.NewFromInt(-2)))
}

func (suite *RedisSummaryCacheTestSuite) TestPut_ReplacesUndecodableEntry() {
	suite.Require().NoError(suite.server.Set(suite.key(), "not json"))

	_, err := suite.cache.Get(suite.ctx, suite.cardID)
	suite.Error(err)
	suite.NotErrorIs(err, cache.ErrCacheMiss)

	suite.Require().NoError(suite.cache.Put(suite.ctx, 1, suite.summary("3")))

	got, err := suite.cache.Get(suite.ctx, suite.cardID)
	suite.Require().NoError(err)
	suite.True(got.Balance.Equal(decimal.NewFromInt(3)))
}

func (suite *RedisSummaryCacheTestSuite) TestPut_ServerDown() {
	down := miniredis.NewMiniRedis()
	suite.Require().NoError(down.Start())
	client := redis.NewClient(&redis.Options{Addr: down.Addr(), MaxRetries: -1})
	defer client.Close()
	down.Close()

	err := cache.NewRedisSummaryCache(client, time.Minute).Put(suite.ctx, 1, suite.summary("0"))
	suite.Error(err)
}

func TestRedisSummaryCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSummaryCacheTestSuite))
}
