// Package services holds the listing lifecycle engine and the owner
// notification dispatcher. The engine owns every listing mutation and
// produces the next presentation state after each operation.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"skyblock-market/contract"
	"skyblock-market/domain"
	"skyblock-market/errors"
	"skyblock-market/observability"
)

const currentOfferField = "💵 Current Offer (C/O)"

type IMarketService interface {
	CreateListing(ctx context.Context, cmd domain.CreateListingCommand) (domain.Listing, contract.RenderRequest, error)
	PreparePurchase(actorID string, listingID uuid.UUID) (contract.MenuPrompt, error)
	PrepareOffer(actorID string, listingID uuid.UUID) (contract.FormPrompt, error)
	RequestPurchase(ctx context.Context, cmd domain.PurchaseCommand) (PurchaseReceipt, error)
	SubmitOffer(ctx context.Context, cmd domain.OfferCommand) (OfferReceipt, error)
}

// PurchaseReceipt confirms a purchase handshake to the requester.
// OwnerNotified false means the DM failed and the buyer should contact
// the seller directly; the handshake itself still succeeded.
type PurchaseReceipt struct {
	Item          string
	Price         string
	PaymentMethod string
	OwnerNotified bool
}

// OfferReceipt confirms a submitted offer. CurrentOffer carries the new
// display value for the listing, which is the amount just submitted.
type OfferReceipt struct {
	Item          string
	CurrentOffer  string
	OwnerNotified bool
}

type MarketService struct {
	log      *slog.Logger
	listings contract.IListingRepository
	profiles contract.IProfileLookup
	notifier contract.INotifier
	stats    *observability.MarketStats
}

func NewMarketService(
	log *slog.Logger,
	listings contract.IListingRepository,
	profiles contract.IProfileLookup,
	notifier contract.INotifier,
	stats *observability.MarketStats,
) *MarketService {
	return &MarketService{
		log:      log,
		listings: listings,
		profiles: profiles,
		notifier: notifier,
		stats:    stats,
	}
}

// CreateListing captures the profile snapshot and stores a new listing.
// A failed lookup creates nothing.
func (s *MarketService) CreateListing(ctx context.Context, cmd domain.CreateListingCommand) (domain.Listing, contract.RenderRequest, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Listing{}, contract.RenderRequest{}, err
	}

	profile, err := s.profiles.Lookup(ctx, cmd.IGN)
	if err != nil {
		s.stats.IncrLookupFailures()
		return domain.Listing{}, contract.RenderRequest{}, err
	}

	listing := domain.NewListing(cmd, profile, time.Now().UTC())
	if err := s.listings.Create(listing); err != nil {
		return domain.Listing{}, contract.RenderRequest{}, err
	}
	s.stats.IncrListingsCreated()
	s.log.Info("Listing created", "listing", listing.ID, "owner", listing.OwnerTag, "item", listing.Item)

	return *listing, renderListing(*listing), nil
}

// PreparePurchase produces the payment menu for the buy button.
func (s *MarketService) PreparePurchase(actorID string, listingID uuid.UUID) (contract.MenuPrompt, error) {
	listing, err := s.eligibleListing(actorID, listingID)
	if err != nil {
		return contract.MenuPrompt{}, err
	}

	return contract.MenuPrompt{
		Token: domain.Token{Kind: domain.ActionPayment, ListingID: listing.ID}.String(),
		Content: fmt.Sprintf(
			"💳 **Purchase Request for:** %s\n💰 **Price:** %s\n\nPlease select your preferred payment method:",
			listing.Item, listing.Price,
		),
		Placeholder: "Select your payment method",
		Options: lo.Map(domain.PaymentMethods, func(method string, _ int) contract.MenuOption {
			return contract.MenuOption{
				Label:       method,
				Value:       domain.PaymentValue(method),
				Description: "Pay with " + method,
			}
		}),
	}, nil
}

// PrepareOffer produces the offer form for the make-offer button.
func (s *MarketService) PrepareOffer(actorID string, listingID uuid.UUID) (contract.FormPrompt, error) {
	listing, err := s.eligibleListing(actorID, listingID)
	if err != nil {
		return contract.FormPrompt{}, err
	}

	return contract.FormPrompt{
		Token: domain.Token{Kind: domain.ActionOfferForm, ListingID: listing.ID}.String(),
		Title: "Make an Offer",
		Fields: []contract.FormField{
			{
				ID:          "offer_amount",
				Label:       "Your Offer Amount",
				Placeholder: "Enter your offer (e.g., 50m, $25)",
				Required:    true,
			},
			{
				ID:          "offer_message",
				Label:       "Additional Message (Optional)",
				Placeholder: "Any additional details about your offer...",
				Paragraph:   true,
			},
		},
	}, nil
}

// RequestPurchase is a handshake: the listing is not mutated, the owner
// is notified of the intent together with the chosen payment method.
func (s *MarketService) RequestPurchase(ctx context.Context, cmd domain.PurchaseCommand) (PurchaseReceipt, error) {
	if err := cmd.Validate(); err != nil {
		return PurchaseReceipt{}, err
	}
	listing, err := s.eligibleListing(cmd.ActorID, cmd.ListingID)
	if err != nil {
		return PurchaseReceipt{}, err
	}
	s.stats.IncrPurchaseRequests()

	method := domain.HumanizePayment(cmd.PaymentMethod)
	notifyErr := s.notifier.NotifyOwner(ctx, listing.OwnerID, contract.Notification{
		Title: "🛒 New Purchase Request",
		Fields: []contract.Field{
			{Name: "👤 Buyer", Value: cmd.ActorTag, Inline: true},
			{Name: "📦 Item", Value: listing.Item, Inline: true},
			{Name: "💰 Price", Value: listing.Price, Inline: true},
			{Name: "💳 Payment Method", Value: method, Inline: true},
		},
	})

	return PurchaseReceipt{
		Item:          listing.Item,
		Price:         listing.Price,
		PaymentMethod: method,
		OwnerNotified: notifyErr == nil,
	}, nil
}

// SubmitOffer appends the offer, then notifies the owner. The two steps
// are sequential and independently failable: a dead DM channel never
// rolls back an offer that is already recorded.
func (s *MarketService) SubmitOffer(ctx context.Context, cmd domain.OfferCommand) (OfferReceipt, error) {
	if err := cmd.Validate(); err != nil {
		return OfferReceipt{}, err
	}
	listing, err := s.eligibleListing(cmd.ActorID, cmd.ListingID)
	if err != nil {
		return OfferReceipt{}, err
	}

	message := cmd.Message
	if message == "" {
		message = domain.NoOfferMessage
	}
	offer := domain.Offer{
		BidderID:    cmd.ActorID,
		BidderTag:   cmd.ActorTag,
		Amount:      cmd.Amount,
		Message:     message,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.listings.AppendOffer(listing.ID, offer); err != nil {
		return OfferReceipt{}, err
	}
	s.stats.IncrOffersSubmitted()
	s.log.Info("Offer recorded", "listing", listing.ID, "bidder", cmd.ActorTag, "amount", cmd.Amount)

	notifyErr := s.notifier.NotifyOwner(ctx, listing.OwnerID, contract.Notification{
		Title: "💰 New Offer Received",
		Fields: []contract.Field{
			{Name: "👤 Buyer", Value: cmd.ActorTag, Inline: true},
			{Name: "📦 Item", Value: listing.Item, Inline: true},
			{Name: "💵 Offer Amount", Value: cmd.Amount, Inline: true},
			{Name: "📝 Message", Value: message},
			{Name: "🕐 Time", Value: offer.SubmittedAt.Format(time.RFC822), Inline: true},
		},
	})

	return OfferReceipt{
		Item:          listing.Item,
		CurrentOffer:  cmd.Amount,
		OwnerNotified: notifyErr == nil,
	}, nil
}

// CurrentOfferPatch is the render-update for the listing display after
// a successful offer.
func CurrentOfferPatch(amount string) contract.FieldPatch {
	return contract.FieldPatch{Name: currentOfferField, Value: amount, Inline: true}
}

// eligibleListing resolves the listing and enforces the one access rule
// of the marketplace: the owner may not transact on their own listing.
func (s *MarketService) eligibleListing(actorID string, listingID uuid.UUID) (domain.Listing, error) {
	listing, err := s.listings.Get(listingID)
	if err != nil {
		return domain.Listing{}, err
	}
	if listing.OwnerID == actorID {
		return domain.Listing{}, fmt.Errorf("%w: %s", errors.ErrSelfTransaction, listingID)
	}
	return listing, nil
}

func renderListing(listing domain.Listing) contract.RenderRequest {
	return contract.RenderRequest{
		Title: "🏪 Skyblock Item Listing",
		Fields: []contract.Field{
			{Name: "📦 Item", Value: listing.Item, Inline: true},
			{Name: "💰 Price", Value: listing.Price, Inline: true},
			{Name: "📝 Description", Value: listing.Description},
			{Name: "🏆 Skyblock Level", Value: fmt.Sprintf("%d", listing.Profile.Level), Inline: true},
			{Name: "📊 Skill Average", Value: listing.Profile.SkillAverage.String(), Inline: true},
			{Name: "💎 Networth", Value: listing.Profile.Networth, Inline: true},
			{Name: "🆔 Listing ID", Value: listing.ID.String()},
		},
		Footer: "Listed by " + listing.OwnerTag,
		Actions: []contract.Action{
			{
				Token: domain.Token{Kind: domain.ActionBuy, ListingID: listing.ID}.String(),
				Label: "💳 Buy Now",
				Style: contract.ActionSuccess,
			},
			{
				Token: domain.Token{Kind: domain.ActionOffer, ListingID: listing.ID}.String(),
				Label: "💰 Make Offer",
				Style: contract.ActionPrimary,
			},
		},
	}
}
