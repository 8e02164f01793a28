package runtime

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"skyblock-market/contract"
	"skyblock-market/domain"
	apperrors "skyblock-market/errors"
	"skyblock-market/mocks"
	"skyblock-market/observability"
	"skyblock-market/services"
)

type routerFixture struct {
	repo     *mocks.MockIListingRepository
	profiles *mocks.MockIProfileLookup
	notifier *mocks.MockINotifier
	stats    *observability.MarketStats
	router   *Router
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := routerFixture{
		repo:     mocks.NewMockIListingRepository(ctrl),
		profiles: mocks.NewMockIProfileLookup(ctrl),
		notifier: mocks.NewMockINotifier(ctrl),
		stats:    observability.NewMarketStats(log),
	}
	market := services.NewMarketService(log, f.repo, f.profiles, f.notifier, f.stats)
	f.router = NewRouter(log, market, f.stats)
	return f
}

func storedListing(owner string) domain.Listing {
	return domain.Listing{
		ID:       uuid.New(),
		OwnerID:  owner,
		OwnerTag: owner + "#0001",
		Item:     "Hyperion",
		Price:    "500m",
	}
}

func TestRouter_ListCommandRendersListing(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	f.profiles.EXPECT().
		Lookup(gomock.Any(), "Tester").
		Return(domain.ProfileSnapshot{Level: 3, Networth: "1.2b"}, nil)
	f.repo.EXPECT().Create(gomock.Any()).Return(nil)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:     contract.EventCommand,
		Name:     "list",
		ActorID:  "seller-1",
		ActorTag: "Seller#0001",
		Payload: map[string]string{
			"ign":   "Tester",
			"item":  "Hyperion",
			"price": "500m",
		},
	})

	req.NotNil(reply.Render)
	req.Empty(reply.Notice)
	req.Len(reply.Render.Actions, 2)
}

func TestRouter_ListCommandLookupFailure(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	f.profiles.EXPECT().
		Lookup(gomock.Any(), "Nobody").
		Return(domain.ProfileSnapshot{}, apperrors.ErrProfileLookupFailed)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:     contract.EventCommand,
		Name:     "list",
		ActorID:  "seller-1",
		ActorTag: "Seller#0001",
		Payload:  map[string]string{"ign": "Nobody", "item": "Hyperion", "price": "500m"},
	})

	req.Nil(reply.Render)
	req.True(reply.Ephemeral)
	req.Contains(reply.Notice, "Could not fetch Hypixel data")
}

func TestRouter_UnknownCommandIsANoOp(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind: contract.EventCommand,
		Name: "ping",
	})

	req.Equal(contract.Reply{}, reply)
	req.Equal(uint64(1), atomic.LoadUint64(&f.stats.IgnoredEvents))
}

func TestRouter_BuyButtonPromptsPaymentMenu(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	listing := storedListing("seller-1")
	f.repo.EXPECT().Get(listing.ID).Return(listing, nil)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:    contract.EventButton,
		Token:   domain.Token{Kind: domain.ActionBuy, ListingID: listing.ID}.String(),
		ActorID: "buyer-1",
	})

	req.NotNil(reply.Menu)
	req.True(reply.Ephemeral)
	req.Len(reply.Menu.Options, len(domain.PaymentMethods))
}

func TestRouter_OfferButtonOpensForm(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	listing := storedListing("seller-1")
	f.repo.EXPECT().Get(listing.ID).Return(listing, nil)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:    contract.EventButton,
		Token:   domain.Token{Kind: domain.ActionOffer, ListingID: listing.ID}.String(),
		ActorID: "buyer-1",
	})

	req.NotNil(reply.Form)
	req.Equal("Make an Offer", reply.Form.Title)
}

func TestRouter_MalformedTokenIsRejected(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:    contract.EventButton,
		Token:   "buy_not-a-uuid",
		ActorID: "buyer-1",
	})

	req.True(reply.Ephemeral)
	req.Contains(reply.Notice, "no longer valid")
}

func TestRouter_UnknownButtonActionIsANoOp(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	// Well-formed token with an action this bot never issued
	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:    contract.EventButton,
		Token:   "report_" + uuid.NewString(),
		ActorID: "buyer-1",
	})

	req.Equal(contract.Reply{}, reply)
	req.Equal(uint64(1), atomic.LoadUint64(&f.stats.IgnoredEvents))
}

func TestRouter_PaymentMenuConfirmsPurchase(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	listing := storedListing("seller-1")
	f.repo.EXPECT().Get(listing.ID).Return(listing, nil)
	f.notifier.EXPECT().NotifyOwner(gomock.Any(), "seller-1", gomock.Any()).Return(nil)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:     contract.EventMenu,
		Token:    domain.Token{Kind: domain.ActionPayment, ListingID: listing.ID}.String(),
		ActorID:  "buyer-1",
		ActorTag: "Buyer#0002",
		Payload:  map[string]string{"value": "paypal"},
	})

	req.True(reply.Update)
	req.Contains(reply.Notice, "Purchase request sent")
	req.Contains(reply.Notice, "paypal")
}

func TestRouter_OfferFormPatchesCurrentOffer(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	listing := storedListing("seller-1")
	f.repo.EXPECT().Get(listing.ID).Return(listing, nil)
	f.repo.EXPECT().AppendOffer(listing.ID, gomock.Any()).Return(nil)
	f.notifier.EXPECT().NotifyOwner(gomock.Any(), "seller-1", gomock.Any()).Return(nil)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:     contract.EventForm,
		Token:    domain.Token{Kind: domain.ActionOfferForm, ListingID: listing.ID}.String(),
		ActorID:  "buyer-1",
		ActorTag: "Buyer#0002",
		Payload:  map[string]string{"offer_amount": "600m"},
	})

	req.Contains(reply.Notice, "Offer submitted successfully")
	req.NotNil(reply.Patch)
	req.Equal("600m", reply.Patch.Value)
	req.Equal("💵 Current Offer (C/O)", reply.Patch.Name)
}

func TestRouter_OfferFormSoftWarnsWhenOwnerUnreachable(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	listing := storedListing("seller-1")
	f.repo.EXPECT().Get(listing.ID).Return(listing, nil)
	f.repo.EXPECT().AppendOffer(listing.ID, gomock.Any()).Return(nil)
	f.notifier.EXPECT().
		NotifyOwner(gomock.Any(), "seller-1", gomock.Any()).
		Return(apperrors.ErrNotificationFailed)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:     contract.EventForm,
		Token:    domain.Token{Kind: domain.ActionOfferForm, ListingID: listing.ID}.String(),
		ActorID:  "buyer-1",
		ActorTag: "Buyer#0002",
		Payload:  map[string]string{"offer_amount": "600m"},
	})

	// The offer went through; only the DM is lost
	req.Contains(reply.Notice, "Offer submitted successfully")
	req.Contains(reply.Notice, "could not be notified")
	req.NotNil(reply.Patch)
}

func TestRouter_StaleListingIsReported(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	stale := uuid.New()
	f.repo.EXPECT().Get(stale).Return(domain.Listing{}, apperrors.ErrListingNotFound)

	reply := f.router.Handle(context.Background(), contract.Event{
		Kind:    contract.EventButton,
		Token:   domain.Token{Kind: domain.ActionBuy, ListingID: stale}.String(),
		ActorID: "buyer-1",
	})

	req.True(reply.Ephemeral)
	req.Contains(reply.Notice, "no longer exists")
}

func TestRouter_SelfTransactionMessages(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	listing := storedListing("seller-1")

	f.repo.EXPECT().Get(listing.ID).Return(listing, nil).Times(2)

	buy := f.router.Handle(context.Background(), contract.Event{
		Kind:    contract.EventButton,
		Token:   domain.Token{Kind: domain.ActionBuy, ListingID: listing.ID}.String(),
		ActorID: "seller-1",
	})
	req.Equal("❌ You cannot buy your own listing.", buy.Notice)

	offer := f.router.Handle(context.Background(), contract.Event{
		Kind:    contract.EventButton,
		Token:   domain.Token{Kind: domain.ActionOffer, ListingID: listing.ID}.String(),
		ActorID: "seller-1",
	})
	req.Equal("❌ You cannot make an offer on your own listing.", offer.Notice)
}
