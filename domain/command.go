package domain

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// CreateListingCommand carries the /list command input.
type CreateListingCommand struct {
	ActorID     string `validate:"required"`
	ActorTag    string `validate:"required"`
	IGN         string `validate:"required,max=16"`
	Item        string `validate:"required"`
	Price       string `validate:"required"`
	Description string
}

func (c CreateListingCommand) Validate() error {
	return validate.Struct(c)
}

// PurchaseCommand is a purchase handshake: it never mutates the listing,
// it only triggers the owner notification.
type PurchaseCommand struct {
	ActorID       string `validate:"required"`
	ActorTag      string `validate:"required"`
	ListingID     uuid.UUID
	PaymentMethod string `validate:"required"`
}

func (c PurchaseCommand) Validate() error {
	return validate.Struct(c)
}

// OfferCommand carries a submitted offer form.
type OfferCommand struct {
	ActorID   string `validate:"required"`
	ActorTag  string `validate:"required"`
	ListingID uuid.UUID
	Amount    string `validate:"required"`
	Message   string
}

func (c OfferCommand) Validate() error {
	return validate.Struct(c)
}
