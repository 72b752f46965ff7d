package matching

import "strings"

// Listing is the slice of a skill listing the engine needs: who posted it
// and the two free-text fields.
type Listing struct {
	ID       int64
	Username string
	Offer    string
	Want     string
}

// Match is another user's listing whose want/offer overlaps the caller's
// offer/want.
type Match struct {
	Username string `json:"username"`
	Offer    string `json:"offer"`
	Want     string `json:"want"`
}

// Result holds both match directions for one caller.
type Result struct {
	WantMyOffer []Match `json:"want_my_offer"`
	OfferMyWant []Match `json:"offer_my_want"`
}

// Articles, prepositions, and skill-level filler words that carry no signal
// for overlap.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "for": {}, "and": {}, "with": {},
	"of": {}, "to": {}, "in": {}, "on": {}, "at": {},
	"basic": {}, "beginner": {}, "help": {},
	"lesson": {}, "class": {}, "course": {}, "level": {},
}

// Tokenize lower-cases s, splits on runs of non-alphanumeric characters,
// strips a single trailing "s" from each token, and drops stopwords. The
// result is a set: duplicates collapse.
func Tokenize(s string) map[string]struct{} {
	s = strings.ToLower(s)

	out := map[string]struct{}{}
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		tok = strings.TrimSuffix(tok, "s")
		if tok == "" {
			return
		}
		if _, stop := stopwords[tok]; stop {
			return
		}
		out[tok] = struct{}{}
	}

	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return out
}

// Overlaps reports whether the two strings share at least one normalized
// keyword. Symmetric by construction.
func Overlaps(a, b string) bool {
	return intersects(Tokenize(a), Tokenize(b))
}

func intersects(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for tok := range a {
		if _, ok := b[tok]; ok {
			return true
		}
	}
	return false
}

// FindMatches scans the full listing set for the named caller. Direction A
// collects other users' listings whose want overlaps one of the caller's
// offers; direction B is the symmetric scan of their offers against the
// caller's wants. Results are de-duplicated by (username, want, offer) and
// preserve the input order.
func FindMatches(callerUsername string, all []Listing) Result {
	mine := make([]Listing, 0)
	others := make([]Listing, 0, len(all))
	for _, l := range all {
		if l.Username == callerUsername {
			mine = append(mine, l)
		} else {
			others = append(others, l)
		}
	}

	res := Result{
		WantMyOffer: []Match{},
		OfferMyWant: []Match{},
	}
	if len(mine) == 0 || len(others) == 0 {
		return res
	}

	// Tokenize each side once; the scan itself stays O(mine × others).
	otherOffers := make([]map[string]struct{}, len(others))
	otherWants := make([]map[string]struct{}, len(others))
	for i, o := range others {
		otherOffers[i] = Tokenize(o.Offer)
		otherWants[i] = Tokenize(o.Want)
	}

	seenA := map[string]struct{}{}
	seenB := map[string]struct{}{}

	for _, my := range mine {
		myOffer := Tokenize(my.Offer)
		myWant := Tokenize(my.Want)

		for i, o := range others {
			if strings.TrimSpace(my.Offer) != "" && strings.TrimSpace(o.Want) != "" &&
				intersects(otherWants[i], myOffer) {
				key := o.Username + "|" + o.Want + "|" + o.Offer
				if _, dup := seenA[key]; !dup {
					seenA[key] = struct{}{}
					res.WantMyOffer = append(res.WantMyOffer, Match{Username: o.Username, Offer: o.Offer, Want: o.Want})
				}
			}

			if strings.TrimSpace(my.Want) != "" && strings.TrimSpace(o.Offer) != "" &&
				intersects(otherOffers[i], myWant) {
				key := o.Username + "|" + o.Want + "|" + o.Offer
				if _, dup := seenB[key]; !dup {
					seenB[key] = struct{}{}
					res.OfferMyWant = append(res.OfferMyWant, Match{Username: o.Username, Offer: o.Offer, Want: o.Want})
				}
			}
		}
	}

	return res
}
