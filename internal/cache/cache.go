package cache

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Cache is a read-through cache keyed by canonical resource keys.
// Invalidation is always explicit: a mutation names the resource path it
// touched and every key under that path is dropped.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, resourcePath string) error
}

// Key builds the canonical cache key for a resource path and its
// parameters. Parameters are sorted by name so that logically equal
// requests always map to the same key regardless of argument order.
func Key(resourcePath string, params map[string]string) string {
	if len(params) == 0 {
		return resourcePath
	}

	names := make([]string, 0, len(params))
	for name, value := range params {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(resourcePath)
	for i, name := range names {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return b.String()
}
