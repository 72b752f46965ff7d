package usecase

import (
	"context"
	"time"

	"skill-trade/internal/domain/skill"
)

// ListingCache is the slice of the cache the listing read path needs.
// A nil cache means every read goes to the store.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const listingsCacheKey = "skills:all"

// loadListings returns the full owner-joined listing set, served from the
// cache when warm. Cache failures fall through to the store.
func loadListings(ctx context.Context, repo skill.Repository, cache ListingCache) ([]skill.ListingWithOwner, error) {
	if cache != nil {
		var cached []skill.ListingWithOwner
		if hit, err := cache.GetJSON(ctx, listingsCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		_ = cache.SetJSON(ctx, listingsCacheKey, items, 0)
	}
	return items, nil
}

func invalidateListings(ctx context.Context, cache ListingCache) {
	if cache == nil {
		return
	}
	_ = cache.Delete(ctx, listingsCacheKey)
}
