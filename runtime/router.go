// Package runtime moves interactions from the presentation gateway to
// the lifecycle engine and back. It orchestrates the system without
// containing business logic or domain rules.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"skyblock-market/contract"
	"skyblock-market/domain"
	apperrors "skyblock-market/errors"
	"skyblock-market/observability"
	"skyblock-market/services"
)

var _ contract.IRouter = (*Router)(nil)

// Router dispatches a normalized event to the engine operation matching
// its kind and correlation token. Every failure is converted into a
// notice scoped to the acting user; nothing here is process-fatal.
type Router struct {
	log    *slog.Logger
	market services.IMarketService
	stats  *observability.MarketStats
}

func NewRouter(log *slog.Logger, market services.IMarketService, stats *observability.MarketStats) *Router {
	return &Router{log: log, market: market, stats: stats}
}

func (r *Router) Handle(ctx context.Context, event contract.Event) contract.Reply {
	switch event.Kind {
	case contract.EventCommand:
		return r.handleCommand(ctx, event)
	case contract.EventButton:
		return r.handleButton(event)
	case contract.EventMenu:
		return r.handleMenu(ctx, event)
	case contract.EventForm:
		return r.handleForm(ctx, event)
	default:
		r.ignore("unknown event kind", "kind", string(event.Kind))
		return contract.Reply{}
	}
}

func (r *Router) handleCommand(ctx context.Context, event contract.Event) contract.Reply {
	if event.Name != "list" {
		r.ignore("unknown command", "command", event.Name)
		return contract.Reply{}
	}

	_, render, err := r.market.CreateListing(ctx, domain.CreateListingCommand{
		ActorID:     event.ActorID,
		ActorTag:    event.ActorTag,
		IGN:         event.Payload["ign"],
		Item:        event.Payload["item"],
		Price:       event.Payload["price"],
		Description: event.Payload["description"],
	})
	if err != nil {
		return r.failureNotice(err, "")
	}
	return contract.Reply{Render: &render}
}

func (r *Router) handleButton(event contract.Event) contract.Reply {
	token, err := domain.ParseToken(event.Token)
	if err != nil {
		return r.failureNotice(err, "")
	}

	switch token.Kind {
	case domain.ActionBuy:
		menu, err := r.market.PreparePurchase(event.ActorID, token.ListingID)
		if err != nil {
			return r.failureNotice(err, "❌ You cannot buy your own listing.")
		}
		return contract.Reply{Menu: &menu, Ephemeral: true}
	case domain.ActionOffer:
		form, err := r.market.PrepareOffer(event.ActorID, token.ListingID)
		if err != nil {
			return r.failureNotice(err, "❌ You cannot make an offer on your own listing.")
		}
		return contract.Reply{Form: &form}
	default:
		// Tolerated no-op: a button we never issued is not worth a reply
		r.ignore("unknown button action", "action", string(token.Kind))
		return contract.Reply{}
	}
}

func (r *Router) handleMenu(ctx context.Context, event contract.Event) contract.Reply {
	token, err := domain.ParseToken(event.Token)
	if err != nil {
		return r.failureNotice(err, "")
	}
	if token.Kind != domain.ActionPayment {
		r.ignore("unknown menu action", "action", string(token.Kind))
		return contract.Reply{}
	}

	receipt, err := r.market.RequestPurchase(ctx, domain.PurchaseCommand{
		ActorID:       event.ActorID,
		ActorTag:      event.ActorTag,
		ListingID:     token.ListingID,
		PaymentMethod: event.Payload["value"],
	})
	if err != nil {
		return r.failureNotice(err, "❌ You cannot buy your own listing.")
	}

	if !receipt.OwnerNotified {
		return contract.Reply{
			Notice: "❌ Error processing purchase request. Please try contacting the seller directly.",
			Update: true,
		}
	}
	return contract.Reply{
		Notice: fmt.Sprintf(
			"✅ **Purchase request sent!**\n\nThe seller has been notified of your interest in purchasing:\n📦 **Item:** %s\n💰 **Price:** %s\n💳 **Payment Method:** %s\n\nThey will contact you shortly to arrange the transaction.",
			receipt.Item, receipt.Price, receipt.PaymentMethod,
		),
		Update: true,
	}
}

func (r *Router) handleForm(ctx context.Context, event contract.Event) contract.Reply {
	token, err := domain.ParseToken(event.Token)
	if err != nil {
		return r.failureNotice(err, "")
	}
	if token.Kind != domain.ActionOfferForm {
		r.ignore("unknown form action", "action", string(token.Kind))
		return contract.Reply{}
	}

	receipt, err := r.market.SubmitOffer(ctx, domain.OfferCommand{
		ActorID:   event.ActorID,
		ActorTag:  event.ActorTag,
		ListingID: token.ListingID,
		Amount:    event.Payload["offer_amount"],
		Message:   event.Payload["offer_message"],
	})
	if err != nil {
		return r.failureNotice(err, "❌ You cannot make an offer on your own listing.")
	}

	notice := fmt.Sprintf(
		"✅ **Offer submitted successfully!**\n\n💰 **Your offer:** %s\n📦 **For item:** %s\n\nThe seller has been notified and will respond if interested.",
		receipt.CurrentOffer, receipt.Item,
	)
	if !receipt.OwnerNotified {
		// The offer is already recorded; only the DM is lost
		notice += "\n\n⚠️ The seller could not be notified. Please contact them directly."
	}
	patch := services.CurrentOfferPatch(receipt.CurrentOffer)
	return contract.Reply{Notice: notice, Ephemeral: true, Patch: &patch}
}

// failureNotice translates an engine failure into the message shown to
// the acting user. selfMessage carries the operation-specific wording
// for the self-transaction rule.
func (r *Router) failureNotice(err error, selfMessage string) contract.Reply {
	r.log.Debug("Interaction rejected", "error", err)
	switch {
	case errors.Is(err, apperrors.ErrSelfTransaction):
		if selfMessage == "" {
			selfMessage = "❌ You cannot transact on your own listing."
		}
		return ephemeral(selfMessage)
	case errors.Is(err, apperrors.ErrListingNotFound):
		return ephemeral("❌ This listing no longer exists.")
	case errors.Is(err, apperrors.ErrProfileLookupFailed):
		return ephemeral("❌ Could not fetch Hypixel data. Please check the IGN and try again.")
	case errors.Is(err, apperrors.ErrMalformedToken):
		return ephemeral("❌ This interaction is no longer valid.")
	default:
		return ephemeral("❌ Something went wrong. Please try again.")
	}
}

func (r *Router) ignore(reason string, args ...string) {
	r.stats.IncrIgnoredEvents()
	fields := make([]any, 0, len(args))
	for _, a := range args {
		fields = append(fields, a)
	}
	r.log.Debug("Ignoring event: "+reason, fields...)
}

func ephemeral(notice string) contract.Reply {
	return contract.Reply{Notice: notice, Ephemeral: true}
}
