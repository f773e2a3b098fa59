package bidding

import (
	"auction-bidding/internal/biddingerrors"
	"auction-bidding/internal/models"
	"auction-bidding/internal/money"
	"auction-bidding/internal/repository"
	"auction-bidding/utils"
	"context"
	"fmt"
	"time"
)

// PlacingBidInput is the validated request to place a bid
type PlacingBidInput struct {
	AuctionID models.AuctionID
	BidderID  models.BidderID
	Amount    money.Money
}

// PlacingBidOutput is the result of evaluating a bid
type PlacingBidOutput struct {
	IsWinner     bool
	CurrentPrice money.Money
}

// BiddingService implements the bid placement use case and the auction queries
type BiddingService struct {
	repo repository.AuctionDB
	now  func() time.Time
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithClock overrides the time source used to close auctions and stamp bids
func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) {
		s.now = now
	}
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid evaluates a bid against the auction's current price. A bid that does not
// beat the current price is not an error; the output reports the caller is not winning.
func (s *BiddingService) PlaceBid(ctx context.Context, in PlacingBidInput) (PlacingBidOutput, error) {
	if in.AuctionID <= 0 || in.BidderID == "" {
		return PlacingBidOutput{}, fmt.Errorf("service: %w - missing auctionID or bidderID", biddingerrors.ErrInvalidBid)
	}
	if err := ctx.Err(); err != nil {
		return PlacingBidOutput{}, err
	}

	var out PlacingBidOutput
	err := s.repo.UpdateAuction(in.AuctionID, func(a *models.Auction) error {
		now := s.now()
		if !a.IsActive(now) {
			return fmt.Errorf("service: auction %d: %w", a.ID, biddingerrors.ErrAuctionEnded)
		}

		if in.Amount.GreaterThan(a.CurrentPrice()) {
			a.Bids = append(a.Bids, models.Bid{
				BidID:    utils.GenerateID(),
				BidderID: in.BidderID,
				Amount:   in.Amount,
				PlacedAt: now,
			})
		}

		winner, _ := a.Winner()
		out = PlacingBidOutput{
			IsWinner:     winner == in.BidderID,
			CurrentPrice: a.CurrentPrice(),
		}
		return nil
	})
	if err != nil {
		return PlacingBidOutput{}, fmt.Errorf("service: failed to place bid on auction %d by %s: %w", in.AuctionID, in.BidderID, err)
	}

	return out, nil
}
