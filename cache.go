package emst

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultCache memoizes MST edges by (pointset hash, Config), so repeated
// requests for the same pointset and configuration in a long-running
// service skip recomputation. A nil *ResultCache (the zero value's
// pointer) is valid and simply never hits, so the core algorithm carries
// zero Redis dependency unless a caller opts in.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache wraps an existing Redis client. ttl <= 0 means entries
// never expire.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

// HashPrimitives computes a stable content hash for a pointset, used as
// half of the cache key.
func HashPrimitives(p Primitives) string {
	h := sha256.New()
	binary.Write(h, binary.LittleEndian, int64(p.Dims))
	binary.Write(h, binary.LittleEndian, p.Data)
	return hex.EncodeToString(h.Sum(nil))
}

func mstCacheKey(pointsetHash string, cfg Config) string {
	data, _ := json.Marshal(struct {
		K         int
		StackMode StackMode
	}{K: cfg.K, StackMode: cfg.StackMode})
	sum := sha256.Sum256(data)
	return "emst:mst:" + pointsetHash + ":" + hex.EncodeToString(sum[:])
}

// Get returns cached MST edges for the given pointset hash and config, or
// (nil, false, nil) on a miss. A nil cache always misses.
func (c *ResultCache) Get(ctx context.Context, pointsetHash string, cfg Config) ([]WeightedEdge, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, mstCacheKey(pointsetHash, cfg)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var edges []WeightedEdge
	if err := json.Unmarshal(raw, &edges); err != nil {
		return nil, false, err
	}
	return edges, true, nil
}

// Set stores MST edges for the given pointset hash and config. A nil
// cache is a no-op.
func (c *ResultCache) Set(ctx context.Context, pointsetHash string, cfg Config, edges []WeightedEdge) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(edges)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, mstCacheKey(pointsetHash, cfg), data, c.ttl).Err()
}
