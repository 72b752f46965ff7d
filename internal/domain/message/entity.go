package message

import (
	"errors"
	"time"
)

var ErrRecipientNotFound = errors.New("recipient not found")

// Message is an immutable direct message between two users. There is no
// conversation grouping; a user's inbox is the flat set of rows where they
// are sender or recipient.
type Message struct {
	ID         int64
	FromUserID int64
	ToUserID   int64
	Body       string
	CreatedAt  time.Time
}

// Enriched is a message joined with both usernames for listing.
type Enriched struct {
	ID           int64     `json:"id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
}
