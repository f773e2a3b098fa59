package bidding

import (
	"auction-bidding/internal/models"
	"auction-bidding/internal/money"
	"context"
	"fmt"
	"time"
)

// AuctionDTO is the read model of an auction
type AuctionDTO struct {
	ID            models.AuctionID `json:"id"`
	Title         string           `json:"title"`
	CurrentPrice  money.Money      `json:"current_price"`
	StartingPrice money.Money      `json:"starting_price"`
	EndsAt        time.Time        `json:"ends_at"`
}

// BidDTO is the read model of an accepted bid
type BidDTO struct {
	BidID    string          `json:"bid_id"`
	BidderID models.BidderID `json:"bidder_id"`
	Amount   money.Money     `json:"amount"`
	PlacedAt time.Time       `json:"placed_at"`
}

func toAuctionDTO(a models.Auction) AuctionDTO {
	return AuctionDTO{
		ID:            a.ID,
		Title:         a.Title,
		CurrentPrice:  a.CurrentPrice(),
		StartingPrice: a.StartingPrice,
		EndsAt:        a.EndsAt.UTC(),
	}
}

// GetActiveAuctions returns auctions still open for bidding, ordered by ID
func (s *BiddingService) GetActiveAuctions(ctx context.Context) ([]AuctionDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	now := s.now()
	active := make([]AuctionDTO, 0, len(auctions))
	for _, a := range auctions {
		if a.IsActive(now) {
			active = append(active, toAuctionDTO(a))
		}
	}
	return active, nil
}

// GetSingleAuction returns one auction regardless of whether it has ended
func (s *BiddingService) GetSingleAuction(ctx context.Context, id models.AuctionID) (AuctionDTO, error) {
	if err := ctx.Err(); err != nil {
		return AuctionDTO{}, err
	}

	a, err := s.repo.GetAuction(id)
	if err != nil {
		return AuctionDTO{}, fmt.Errorf("service: failed to get auction %d: %w", id, err)
	}
	return toAuctionDTO(a), nil
}

// GetBidsForAuction returns accepted bids in the order they were placed
func (s *BiddingService) GetBidsForAuction(ctx context.Context, id models.AuctionID) ([]BidDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetAuction(id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %d: %w", id, err)
	}

	bids := make([]BidDTO, 0, len(a.Bids))
	for _, b := range a.Bids {
		bids = append(bids, BidDTO{
			BidID:    b.BidID,
			BidderID: b.BidderID,
			Amount:   b.Amount,
			PlacedAt: b.PlacedAt.UTC(),
		})
	}
	return bids, nil
}
