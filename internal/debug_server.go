package internal

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"

	"skyblock-market/contract"
	"skyblock-market/domain"
)

type StatsProvider func() map[string]any

type ListingRow struct {
	ID           string `json:"id"`
	Owner        string `json:"owner"`
	IGN          string `json:"ign"`
	Item         string `json:"item"`
	Price        string `json:"price"`
	Level        int    `json:"skyblock_level"`
	SkillAverage string `json:"skill_average"`
	Offers       int    `json:"offers"`
	CurrentOffer string `json:"current_offer,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type MarketSnapshot struct {
	Listings []ListingRow   `json:"listings"`
	Stats    map[string]any `json:"stats"`
}

// DebugHandler exposes the in-memory market as JSON for local inspection.
func DebugHandler(log *slog.Logger, listings contract.IListingRepository, statsProvider StatsProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := MarketSnapshot{
			Listings: lo.Map(listings.All(), func(listing domain.Listing, _ int) ListingRow {
				return toRow(listing)
			}),
			Stats: make(map[string]any),
		}
		if statsProvider != nil {
			snapshot.Stats = statsProvider()
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			log.Warn("Failed writing market snapshot", "error", err)
		}
	})
}

func toRow(listing domain.Listing) ListingRow {
	row := ListingRow{
		ID:           listing.ID.String(),
		Owner:        listing.OwnerTag,
		IGN:          listing.IGN,
		Item:         listing.Item,
		Price:        listing.Price,
		Level:        listing.Profile.Level,
		SkillAverage: listing.Profile.SkillAverage.String(),
		Offers:       len(listing.Offers()),
		CreatedAt:    listing.CreatedAt.Format(time.RFC3339),
	}
	if amount, ok := listing.CurrentOffer(); ok {
		row.CurrentOffer = amount
	}
	return row
}
