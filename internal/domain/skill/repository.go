package skill

import "context"

type Repository interface {
	Create(ctx context.Context, userID int64, offer, want string) (Listing, error)
	ListAll(ctx context.Context) ([]ListingWithOwner, error)
	GetByID(ctx context.Context, id int64) (Listing, error)
	Update(ctx context.Context, id int64, offer, want string) error
	Delete(ctx context.Context, id int64) error
}
