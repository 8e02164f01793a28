package internal

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"skyblock-market/domain"
	"skyblock-market/repositories"
)

func TestDebugHandler(t *testing.T) {
	t.Run("should expose listings and stats as JSON", func(t *testing.T) {
		// Given
		req := require.New(t)
		repo := repositories.NewListingRepository(slog.Default())
		listing := domain.NewListing(domain.CreateListingCommand{
			ActorID:  "42",
			ActorTag: "seller#0",
			IGN:      "Technoblade",
			Item:     "Hyperion",
			Price:    "500m",
		}, domain.ProfileSnapshot{Level: 3}, time.Now())
		listing.AppendOffer(domain.Offer{BidderID: "77", Amount: "600m"})
		req.NoError(repo.Create(listing))

		handler := DebugHandler(slog.Default(), repo, func() map[string]any {
			return map[string]any{"listings_created": uint64(1)}
		})

		// When
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/debug/market", nil))

		// Then
		req.Equal(http.StatusOK, recorder.Code)
		var snapshot MarketSnapshot
		req.NoError(json.Unmarshal(recorder.Body.Bytes(), &snapshot))
		req.Len(snapshot.Listings, 1)
		req.Equal("Hyperion", snapshot.Listings[0].Item)
		req.Equal("600m", snapshot.Listings[0].CurrentOffer)
		req.Equal(1, snapshot.Listings[0].Offers)
		req.Equal("Unknown", snapshot.Listings[0].SkillAverage)
		req.Contains(snapshot.Stats, "listings_created")
	})

	t.Run("should return an empty market without a stats provider", func(t *testing.T) {
		// Given
		req := require.New(t)
		repo := repositories.NewListingRepository(slog.Default())
		handler := DebugHandler(slog.Default(), repo, nil)

		// When
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/debug/market", nil))

		// Then
		req.Equal(http.StatusOK, recorder.Code)
		var snapshot MarketSnapshot
		req.NoError(json.Unmarshal(recorder.Body.Bytes(), &snapshot))
		req.Empty(snapshot.Listings)
	})
}
