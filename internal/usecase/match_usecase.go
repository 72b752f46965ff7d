package usecase

import (
	"context"
	"errors"

	"skill-trade/internal/domain/matching"
	"skill-trade/internal/domain/skill"
	"skill-trade/internal/domain/user"
)

type MatchUsecase interface {
	FindMatches(ctx context.Context, userID int64) (matching.Result, error)
}

type Match struct {
	skills skill.Repository
	users  user.Repository
	cache  ListingCache
}

func NewMatchUsecase(skills skill.Repository, users user.Repository, cache ListingCache) *Match {
	return &Match{skills: skills, users: users, cache: cache}
}

// FindMatches runs the keyword-overlap engine over the full listing set for
// the given caller. The snapshot comes from the same cached read the listing
// endpoint uses.
func (u *Match) FindMatches(ctx context.Context, userID int64) (matching.Result, error) {
	if userID <= 0 {
		return matching.Result{}, ErrInvalidInput
	}

	caller, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return matching.Result{}, ErrNotFound
		}
		return matching.Result{}, ErrInternal
	}

	items, err := loadListings(ctx, u.skills, u.cache)
	if err != nil {
		return matching.Result{}, ErrInternal
	}

	all := make([]matching.Listing, 0, len(items))
	for _, it := range items {
		all = append(all, matching.Listing{
			ID:       it.ID,
			Username: it.Username,
			Offer:    it.Offer,
			Want:     it.Want,
		})
	}

	return matching.FindMatches(caller.Username, all), nil
}
