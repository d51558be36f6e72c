package testutil

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"
)

// InMemoryRedisClient keeps sorted sets in a plain map. It backs the
// leaderboard tests without a running redis.
type InMemoryRedisClient struct {
	sortedSets map[string]map[string]float64
}

func NewInMemoryRedisClient() *InMemoryRedisClient {
	return &InMemoryRedisClient{sortedSets: make(map[string]map[string]float64)}
}

func (c *InMemoryRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	_, ok := c.sortedSets[key]
	return ok, nil
}

func (c *InMemoryRedisClient) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.sortedSets, key)
	}

	return nil
}

func (c *InMemoryRedisClient) ZAdd(ctx context.Context, key string, z redis.Z) error {
	c.set(key)[z.Member.(string)] = z.Score
	return nil
}

func (c *InMemoryRedisClient) ZIncrBy(ctx context.Context, key string, incr float64, member string) error {
	c.set(key)[member] += incr
	return nil
}

func (c *InMemoryRedisClient) ZRevRangeWithScores(
	ctx context.Context, key string, offset, limit int,
) ([]redis.Z, error) {
	records := []redis.Z{}
	for member, score := range c.set(key) {
		records = append(records, redis.Z{Member: member, Score: score})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}

		return records[i].Member.(string) < records[j].Member.(string)
	})

	if offset >= len(records) {
		return []redis.Z{}, nil
	}

	records = records[offset:]
	if limit < len(records) {
		records = records[:limit]
	}

	return records, nil
}

func (c *InMemoryRedisClient) ZRevRank(ctx context.Context, key string, member string) (uint64, error) {
	records, err := c.ZRevRangeWithScores(ctx, key, 0, len(c.set(key)))
	if err != nil {
		return 0, err
	}

	for i, record := range records {
		if record.Member.(string) == member {
			return uint64(i), nil
		}
	}

	return 0, redis.Nil
}

func (c *InMemoryRedisClient) set(key string) map[string]float64 {
	if _, ok := c.sortedSets[key]; !ok {
		c.sortedSets[key] = make(map[string]float64)
	}

	return c.sortedSets[key]
}
