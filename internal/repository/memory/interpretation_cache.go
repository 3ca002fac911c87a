package memory

import (
	"time"

	"guru-ai-be/pkg/rag/interpret"

	"github.com/patrickmn/go-cache"
)

type InterpretationCache struct {
	cache *cache.Cache
}

func NewInterpretationCache() *InterpretationCache {
	// Default expiration of 1 hour, expired items purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &InterpretationCache{
		cache: c,
	}
}

func (r *InterpretationCache) Save(query string, result *interpret.Result) {
	r.cache.Set(query, result, cache.DefaultExpiration)
}

func (r *InterpretationCache) Get(query string) (*interpret.Result, bool) {
	if x, found := r.cache.Get(query); found {
		return x.(*interpret.Result), true
	}
	return nil, false
}
