package repository

import (
	"auction-bidding/internal/biddingerrors"
	model "auction-bidding/internal/models"
	"fmt"
	"sort"
	"sync"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the auction storage interface for the bidding system
type AuctionDB interface {
	GetAuction(id model.AuctionID) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)
	// UpdateAuction runs update against a copy of the stored auction and persists the copy
	// only if update returns nil. No other update or read of the store interleaves with it.
	UpdateAuction(id model.AuctionID, update func(*model.Auction) error) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[model.AuctionID]model.Auction
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[model.AuctionID]model.Auction),
	}
}

// GetAuction returns a copy of the auction with the given ID
func (r *MemoryRepo) GetAuction(id model.AuctionID) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", id, biddingerrors.ErrAuctionNotFound)
	}
	return auction.Clone(), nil
}

// ListAuctions returns copies of all auctions ordered by ID
func (r *MemoryRepo) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a.Clone())
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].ID < auctions[j].ID })
	return auctions, nil
}

// UpdateAuction applies update to the auction under the write lock
func (r *MemoryRepo) UpdateAuction(id model.AuctionID, update func(*model.Auction) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.auctions[id]
	if !ok {
		return fmt.Errorf("update auction %d: %w", id, biddingerrors.ErrAuctionNotFound)
	}

	working := stored.Clone()
	if err := update(&working); err != nil {
		return err
	}
	working.ID = id
	r.auctions[id] = working

	return nil
}

// AddAuction stores an auction, replacing any auction with the same ID. Used for seeding and tests.
func (r *MemoryRepo) AddAuction(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.ID] = auction.Clone()
}
