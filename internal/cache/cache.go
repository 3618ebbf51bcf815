package cache

import (
	"context"
	"time"
)

// Cache is the JSON cache-aside contract. GetJSON reports hit=false for
// both absent keys and undecodable payloads, so callers never branch on
// cache corruption.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
