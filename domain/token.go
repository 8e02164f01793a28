package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"skyblock-market/errors"
)

// ActionKind is the leading segment of a correlation token.
type ActionKind string

const (
	ActionBuy       ActionKind = "buy"
	ActionOffer     ActionKind = "offer"
	ActionPayment   ActionKind = "payment"
	ActionOfferForm ActionKind = "offer_modal"
)

// Token is the correlation key embedded in every interactive element.
// It lets a later event be traced back to the Listing it concerns.
// Wire form is "<kind>_<listing uuid>", e.g. "offer_modal_9f3c...".
type Token struct {
	Kind      ActionKind
	ListingID uuid.UUID
}

func (t Token) String() string {
	return string(t.Kind) + "_" + t.ListingID.String()
}

// ParseToken recovers a Token from its wire form. The listing id never
// contains an underscore, so the last separator splits kind from id
// even for multi-segment kinds like "offer_modal".
// A structurally invalid token is rejected as ErrMalformedToken; an
// unknown but well-formed kind is left to the router to ignore.
func ParseToken(raw string) (Token, error) {
	sep := strings.LastIndex(raw, "_")
	if sep <= 0 || sep == len(raw)-1 {
		return Token{}, fmt.Errorf("%w: %q", errors.ErrMalformedToken, raw)
	}
	id, err := uuid.Parse(raw[sep+1:])
	if err != nil {
		return Token{}, fmt.Errorf("%w: %q", errors.ErrMalformedToken, raw)
	}
	return Token{Kind: ActionKind(raw[:sep]), ListingID: id}, nil
}
