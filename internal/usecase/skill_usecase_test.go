package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"skill-trade/internal/domain/skill"
)

type mockSkillRepo struct {
	listings map[int64]skill.Listing
	owners   map[int64]string
	nextID   int64
	listErr  error
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{
		listings: map[int64]skill.Listing{},
		owners:   map[int64]string{},
		nextID:   1,
	}
}

func (m *mockSkillRepo) Create(_ context.Context, userID int64, offer, want string) (skill.Listing, error) {
	l := skill.Listing{ID: m.nextID, UserID: userID, Offer: offer, Want: want}
	m.nextID++
	m.listings[l.ID] = l
	return l, nil
}

func (m *mockSkillRepo) ListAll(_ context.Context) ([]skill.ListingWithOwner, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]skill.ListingWithOwner, 0, len(m.listings))
	for id := m.nextID - 1; id >= 1; id-- {
		l, ok := m.listings[id]
		if !ok {
			continue
		}
		username := m.owners[l.UserID]
		if username == "" {
			username = "user"
		}
		out = append(out, skill.ListingWithOwner{ID: l.ID, Username: username, Offer: l.Offer, Want: l.Want})
	}
	return out, nil
}

func (m *mockSkillRepo) GetByID(_ context.Context, id int64) (skill.Listing, error) {
	l, ok := m.listings[id]
	if !ok {
		return skill.Listing{}, skill.ErrNotFound
	}
	return l, nil
}

func (m *mockSkillRepo) Update(_ context.Context, id int64, offer, want string) error {
	l, ok := m.listings[id]
	if !ok {
		return skill.ErrNotFound
	}
	l.Offer = offer
	l.Want = want
	m.listings[id] = l
	return nil
}

func (m *mockSkillRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.listings[id]; !ok {
		return skill.ErrNotFound
	}
	delete(m.listings, id)
	return nil
}

type mockCache struct {
	store   map[string][]byte
	deletes int
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

// GetJSON always misses; the mock only tracks writes and invalidations.
func (m *mockCache) GetJSON(_ context.Context, _ string, _ any) (bool, error) {
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.store[key] = []byte("set")
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	m.deletes++
	return nil
}

func TestSkillCreate_FieldLimits(t *testing.T) {
	uc := NewSkillUsecase(newMockSkillRepo(), nil, 100)

	atLimit := strings.Repeat("a", 100)
	overLimit := strings.Repeat("a", 101)

	if _, err := uc.CreateListing(context.Background(), 1, atLimit, "cooking"); err != nil {
		t.Fatalf("offer of exactly 100 chars must succeed, got %v", err)
	}
	if _, err := uc.CreateListing(context.Background(), 1, overLimit, "cooking"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("offer of 101 chars must fail with ErrInvalidInput, got %v", err)
	}
	if _, err := uc.CreateListing(context.Background(), 1, "", "cooking"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty offer must fail, got %v", err)
	}
	if _, err := uc.CreateListing(context.Background(), 1, "guitar", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty want must fail, got %v", err)
	}
}

func TestSkillCreate_ConfigurableLimit(t *testing.T) {
	uc := NewSkillUsecase(newMockSkillRepo(), nil, 10)

	if _, err := uc.CreateListing(context.Background(), 1, strings.Repeat("a", 11), "b"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected configured limit of 10 to apply, got %v", err)
	}
}

func TestSkillList_NewestFirstAndSearch(t *testing.T) {
	repo := newMockSkillRepo()
	repo.owners[1] = "alice"
	repo.owners[2] = "bob"
	uc := NewSkillUsecase(repo, nil, 100)

	if _, err := uc.CreateListing(context.Background(), 1, "Guitar lessons", "Cooking"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.CreateListing(context.Background(), 2, "Python tutoring", "Guitar"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	all, err := uc.ListListings(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(all))
	}
	if all[0].ID != 2 || all[1].ID != 1 {
		t.Fatalf("expected newest-id-first ordering, got %+v", all)
	}

	// Substring filter is case-insensitive and spans username/offer/want.
	byOffer, err := uc.ListListings(context.Background(), "python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(byOffer) != 1 || byOffer[0].ID != 2 {
		t.Fatalf("expected python listing only, got %+v", byOffer)
	}

	byUsername, err := uc.ListListings(context.Background(), "ALICE")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(byUsername) != 1 || byUsername[0].ID != 1 {
		t.Fatalf("expected alice's listing only, got %+v", byUsername)
	}

	byWant, err := uc.ListListings(context.Background(), "guitar")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(byWant) != 2 {
		t.Fatalf("guitar appears in one offer and one want, got %+v", byWant)
	}
}

func TestSkillUpdate_NotFoundAndOwnership(t *testing.T) {
	repo := newMockSkillRepo()
	uc := NewSkillUsecase(repo, nil, 100)

	created, err := uc.CreateListing(context.Background(), 1, "guitar", "cooking")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.UpdateListing(context.Background(), 1, 999, "a", "b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := uc.UpdateListing(context.Background(), 2, created.ID, "a", "b"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner update must be forbidden, got %v", err)
	}

	updated, err := uc.UpdateListing(context.Background(), 1, created.ID, "piano", "baking")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Offer != "piano" || updated.Want != "baking" {
		t.Fatalf("unexpected listing after update: %+v", updated)
	}
}

func TestSkillDelete_RemovesFromListing(t *testing.T) {
	repo := newMockSkillRepo()
	uc := NewSkillUsecase(repo, nil, 100)

	created, err := uc.CreateListing(context.Background(), 1, "guitar", "cooking")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.DeleteListing(context.Background(), 1, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := uc.DeleteListing(context.Background(), 2, created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner delete must be forbidden, got %v", err)
	}

	if err := uc.DeleteListing(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	all, err := uc.ListListings(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, it := range all {
		if it.ID == created.ID {
			t.Fatalf("deleted listing still present in full fetch")
		}
	}
}

func TestSkillMutations_InvalidateCache(t *testing.T) {
	repo := newMockSkillRepo()
	c := newMockCache()
	uc := NewSkillUsecase(repo, c, 100)

	created, err := uc.CreateListing(context.Background(), 1, "guitar", "cooking")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.UpdateListing(context.Background(), 1, created.ID, "piano", "baking"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.DeleteListing(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if c.deletes != 3 {
		t.Fatalf("expected 3 cache invalidations, got %d", c.deletes)
	}
}
