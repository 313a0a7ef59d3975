package main

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryCache adapts go-cache to spacelabel.Cache. Captions are strings, so
// only *string destinations are filled.
type memoryCache struct {
	store *gocache.Cache
}

func newMemoryCache(ttl time.Duration) *memoryCache {
	return &memoryCache{store: gocache.New(ttl, ttl*2)} //nolint:mnd // cleanup at twice the ttl
}

func (m *memoryCache) Key(prefix, value string) string { return prefix + ":" + value }

func (m *memoryCache) Get(_ context.Context, key string, dest any) bool {
	v, ok := m.store.Get(key)
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	if p, ok := dest.(*string); ok {
		*p = s
	}
	return true
}

func (m *memoryCache) Set(_ context.Context, key string, value any) {
	m.store.SetDefault(key, value)
}
