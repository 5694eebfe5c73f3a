package repo

import (
	"context"
	"time"

	"bread-orders/internal/core/cache"
	"bread-orders/internal/domain"
)

const (
	seasonAnyKey  = "seasons:any"
	seasonListKey = "seasons:list"
	seasonTTL     = 30 * time.Second
)

// CachedSeasonRepo puts a short-lived redis cache in front of a season
// repository. The season-existence check sits on the order-creation hot
// path and season documents change rarely, so a 30s window is enough to
// keep the store out of most requests.
type CachedSeasonRepo struct {
	inner domain.SeasonRepository
	c     *cache.Cache
}

func NewCachedSeasonRepo(inner domain.SeasonRepository, c *cache.Cache) *CachedSeasonRepo {
	return &CachedSeasonRepo{inner: inner, c: c}
}

func (r *CachedSeasonRepo) Any() (bool, error) {
	return cache.GetOrLoadJSON(r.c, context.Background(), seasonAnyKey, seasonTTL,
		func(context.Context) (bool, error) { return r.inner.Any() })
}

func (r *CachedSeasonRepo) List() ([]domain.Season, error) {
	return cache.GetOrLoadJSON(r.c, context.Background(), seasonListKey, seasonTTL,
		func(context.Context) ([]domain.Season, error) { return r.inner.List() })
}
