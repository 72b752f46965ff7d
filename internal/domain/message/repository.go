package message

import "context"

type Repository interface {
	Create(ctx context.Context, fromUserID, toUserID int64, body string) (Message, error)
	ListForUser(ctx context.Context, userID int64) ([]Enriched, error)
}
