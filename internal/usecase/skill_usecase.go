package usecase

import (
	"context"
	"errors"
	"unicode/utf8"

	"skill-trade/internal/domain/skill"
)

type SkillUsecase interface {
	CreateListing(ctx context.Context, ownerID int64, offer, want string) (skill.Listing, error)
	ListListings(ctx context.Context, query string) ([]skill.ListingWithOwner, error)
	UpdateListing(ctx context.Context, callerID, id int64, offer, want string) (skill.Listing, error)
	DeleteListing(ctx context.Context, callerID, id int64) error
}

type Skill struct {
	repo        skill.Repository
	cache       ListingCache
	maxFieldLen int
}

func NewSkillUsecase(repo skill.Repository, cache ListingCache, maxFieldLen int) *Skill {
	if maxFieldLen <= 0 {
		maxFieldLen = 100
	}
	return &Skill{repo: repo, cache: cache, maxFieldLen: maxFieldLen}
}

func (u *Skill) CreateListing(ctx context.Context, ownerID int64, offer, want string) (skill.Listing, error) {
	if ownerID <= 0 {
		return skill.Listing{}, ErrInvalidInput
	}
	if err := u.validateFields(offer, want); err != nil {
		return skill.Listing{}, err
	}

	created, err := u.repo.Create(ctx, ownerID, offer, want)
	if err != nil {
		return skill.Listing{}, ErrInternal
	}

	invalidateListings(ctx, u.cache)
	return created, nil
}

// ListListings returns the full owner-joined set newest-id-first, narrowed by
// a case-insensitive substring filter when query is non-empty.
func (u *Skill) ListListings(ctx context.Context, query string) ([]skill.ListingWithOwner, error) {
	items, err := loadListings(ctx, u.repo, u.cache)
	if err != nil {
		return nil, ErrInternal
	}

	if query == "" {
		return items, nil
	}

	out := make([]skill.ListingWithOwner, 0, len(items))
	for _, it := range items {
		if it.MatchesQuery(query) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (u *Skill) UpdateListing(ctx context.Context, callerID, id int64, offer, want string) (skill.Listing, error) {
	if err := u.validateFields(offer, want); err != nil {
		return skill.Listing{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return skill.Listing{}, ErrNotFound
		}
		return skill.Listing{}, ErrInternal
	}
	if existing.UserID != callerID {
		return skill.Listing{}, ErrForbidden
	}

	if err := u.repo.Update(ctx, id, offer, want); err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return skill.Listing{}, ErrNotFound
		}
		return skill.Listing{}, ErrInternal
	}

	invalidateListings(ctx, u.cache)

	existing.Offer = offer
	existing.Want = want
	return existing, nil
}

func (u *Skill) DeleteListing(ctx context.Context, callerID, id int64) error {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if existing.UserID != callerID {
		return ErrForbidden
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	invalidateListings(ctx, u.cache)
	return nil
}

func (u *Skill) validateFields(offer, want string) error {
	if offer == "" || want == "" {
		return ErrInvalidInput
	}
	if utf8.RuneCountInString(offer) > u.maxFieldLen || utf8.RuneCountInString(want) > u.maxFieldLen {
		return ErrInvalidInput
	}
	return nil
}
