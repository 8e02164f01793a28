package repositories

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"skyblock-market/domain"
	"skyblock-market/errors"
)

// ListingRepository is an in-memory keyed store of listings. It is the
// exclusive owner of Listing instances: callers get value copies and
// every mutation goes through AppendOffer under the lock.
//
// Listings live for the remainder of process uptime; nothing here
// evicts or expires them. Anyone adding persistence must pick an
// eviction policy first.
type ListingRepository struct {
	mu       sync.RWMutex
	log      *slog.Logger
	listings map[uuid.UUID]*domain.Listing
}

func NewListingRepository(log *slog.Logger) *ListingRepository {
	return &ListingRepository{
		log:      log,
		listings: make(map[uuid.UUID]*domain.Listing),
	}
}

func (r *ListingRepository) Create(listing *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[listing.ID]; ok {
		return fmt.Errorf("%w: %s", errors.ErrListingExists, listing.ID)
	}
	r.listings[listing.ID] = listing
	r.log.Debug("Listing stored", "listing", listing.ID, "item", listing.Item)
	return nil
}

// Get returns a copy of the listing. A missing id is a normal outcome:
// a stale UI element can reference a listing from before a restart.
func (r *ListingRepository) Get(id uuid.UUID) (domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	listing, ok := r.listings[id]
	if !ok {
		return domain.Listing{}, fmt.Errorf("%w: %s", errors.ErrListingNotFound, id)
	}
	return *listing, nil
}

func (r *ListingRepository) AppendOffer(id uuid.UUID, offer domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrListingNotFound, id)
	}
	listing.AppendOffer(offer)
	return nil
}

// All returns copies of every stored listing, for the debug endpoint.
func (r *ListingRepository) All() []domain.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Listing, 0, len(r.listings))
	for _, listing := range r.listings {
		out = append(out, *listing)
	}
	return out
}
