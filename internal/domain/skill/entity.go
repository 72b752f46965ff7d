package skill

import (
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("skill not found")

// Listing is a user's posted pair of a skill offered and a skill wanted.
type Listing struct {
	ID        int64
	UserID    int64
	Offer     string
	Want      string
	CreatedAt time.Time
}

// ListingWithOwner is a listing joined with its owner's username, the shape
// the full-list endpoint returns.
type ListingWithOwner struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Offer    string `json:"offer"`
	Want     string `json:"want"`
}

// MatchesQuery reports whether q is a case-insensitive substring of the
// listing's username, offer, or want. An empty query matches everything.
func (l ListingWithOwner) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Username), q) ||
		strings.Contains(strings.ToLower(l.Offer), q) ||
		strings.Contains(strings.ToLower(l.Want), q)
}
