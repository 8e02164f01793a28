// Package domain contains core concepts of the marketplace.
// This file defines Listings and their append-only offer history.
// A listing is created once and never closed; everything except the
// offer list is immutable after creation.
package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	NoDescription  = "No additional description"
	NoOfferMessage = "No additional message"
)

// Listing represents a sellable item posting, open indefinitely to
// offers and purchase requests from actors other than its owner.
type Listing struct {
	ID          uuid.UUID // unique identifier, correlation key for every derived interaction
	OwnerID     string
	OwnerTag    string
	IGN         string
	Item        string
	Price       string
	Description string
	Profile     ProfileSnapshot // captured at creation, never refreshed
	CreatedAt   time.Time

	offers []Offer
}

// Offer is an append-only bid record attached to a Listing.
// The amount is free-form text and is never parsed as a number.
type Offer struct {
	BidderID    string
	BidderTag   string
	Amount      string
	Message     string
	SubmittedAt time.Time
}

func NewListing(cmd CreateListingCommand, profile ProfileSnapshot, createdAt time.Time) *Listing {
	description := cmd.Description
	if description == "" {
		description = NoDescription
	}
	return &Listing{
		ID:          uuid.New(),
		OwnerID:     cmd.ActorID,
		OwnerTag:    cmd.ActorTag,
		IGN:         cmd.IGN,
		Item:        cmd.Item,
		Price:       cmd.Price,
		Description: description,
		Profile:     profile,
		CreatedAt:   createdAt,
	}
}

// AppendOffer records an offer. Offers keep insertion order and are
// never removed or mutated afterwards.
func (l *Listing) AppendOffer(offer Offer) {
	if offer.Message == "" {
		offer.Message = NoOfferMessage
	}
	l.offers = append(l.offers, offer)
}

// Offers returns a copy of the offer history, oldest first.
func (l *Listing) Offers() []Offer {
	out := make([]Offer, len(l.offers))
	copy(out, l.offers)
	return out
}

// CurrentOffer returns the most recent offer amount. The display slot
// tracks the latest offer, not the highest one.
func (l *Listing) CurrentOffer() (string, bool) {
	if len(l.offers) == 0 {
		return "", false
	}
	return l.offers[len(l.offers)-1].Amount, true
}
