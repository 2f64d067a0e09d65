package service

import (
	"context"
	"encoding/json"
	"time"

	"sweet-shop/internal/cache"
	"sweet-shop/internal/model"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// CatalogKey holds the cached JSON of the full sweet list.
const CatalogKey = "sweets:all"

// Catalog caches the unfiltered sweet list in Redis.
type Catalog struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewCatalog(c cache.Cache, ttl time.Duration) *Catalog {
	return &Catalog{cache: c, ttl: ttl}
}

// Get returns the cached list. ok is false on a miss; err is set only for
// cache or decode failures, which callers treat as a miss.
func (c *Catalog) Get(ctx context.Context) (sweets []model.Sweet, ok bool, err error) {
	raw, err := c.cache.Get(ctx, CatalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "Catalog.Get")
	}
	if err := json.Unmarshal(raw, &sweets); err != nil {
		return nil, false, errors.Wrap(err, "Catalog.Get")
	}
	return sweets, true, nil
}

func (c *Catalog) Put(ctx context.Context, sweets []model.Sweet) error {
	raw, err := json.Marshal(sweets)
	if err != nil {
		return errors.Wrap(err, "Catalog.Put")
	}
	if err := c.cache.Set(ctx, CatalogKey, raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "Catalog.Put")
	}
	return nil
}

// Invalidate drops the cached list. Call it after every mutation.
func (c *Catalog) Invalidate(ctx context.Context) error {
	if err := c.cache.Del(ctx, CatalogKey).Err(); err != nil {
		return errors.Wrap(err, "Catalog.Invalidate")
	}
	return nil
}
