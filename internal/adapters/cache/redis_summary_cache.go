package cache

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/debit_card_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:embed put_summary.lua
var putSummaryLuaScript string

var putSummaryScript = redis.NewScript(putSummaryLuaScript)

const summaryKeyPrefix = "debit_card:summary:"

type cachedSummary struct {
	Version int64                   `json:"version"`
	Summary domain.DebitCardSummary `json:"summary"`
}

// RedisSummaryCache is a SummaryCache backed by go-redis.
type RedisSummaryCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisSummaryCache creates a cache whose entries expire after ttl.
func NewRedisSummaryCache(client redis.Cmdable, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

// ConnectRedis opens a client and checks the server is reachable.
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	return rdb, nil
}

var _ SummaryCache = (*RedisSummaryCache)(nil)

func summaryKey(cardUUID uuid.UUID) string {
	return summaryKeyPrefix + cardUUID.String()
}

func (c *RedisSummaryCache) Get(ctx context.Context, cardUUID uuid.UUID) (*domain.DebitCardSummary, error) {
	raw, err := c.client.Get(ctx, summaryKey(cardUUID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("error reading cached summary of %s: %w", cardUUID, err)
	}

	var entry cachedSummary
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("error decoding cached summary of %s: %w", cardUUID, err)
	}
	return &entry.Summary, nil
}

func (c *RedisSummaryCache) Put(ctx context.Context, version int64, summary domain.DebitCardSummary) error {
	payload, err := json.Marshal(cachedSummary{Version: version, Summary: summary})
	if err != nil {
		return fmt.Errorf("error encoding summary of %s: %w", summary.CardUUID, err)
	}

	keys := []string{summaryKey(summary.CardUUID)}
	args := []interface{}{version, payload, c.ttl.Milliseconds()}
	if err := putSummaryScript.Run(ctx, c.client, keys, args...).Err(); err != nil {
		return fmt.Errorf("error executing Lua script: %w", err)
	}
	return nil
}
