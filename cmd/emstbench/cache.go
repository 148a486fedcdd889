package main

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/vortessa/emst"
)

// addCacheFlags attaches the --cache-addr/--cache-ttl flag group shared
// by commands that can memoize their result in Redis.
func addCacheFlags(cmd *cobra.Command) (addr *string, ttl *time.Duration) {
	addr = cmd.Flags().String("cache-addr", "", "Redis address for MST result caching (empty disables caching)")
	ttl = cmd.Flags().Duration("cache-ttl", time.Hour, "cache entry lifetime")
	return
}

// connectCache dials Redis and wraps it in an emst.ResultCache. A nil
// *ResultCache (returned when addr is empty) is a valid, always-miss
// cache, so callers don't need to branch on whether caching is enabled.
func connectCache(addr string, ttl time.Duration) (*emst.ResultCache, *redis.Client) {
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return emst.NewResultCache(client, ttl), client
}
