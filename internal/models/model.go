package models

import (
	"time"

	"auction-bidding/internal/money"
)

// AuctionID identifies an auction
type AuctionID int64

// BidderID identifies an authenticated participant
type BidderID string

// Auction represents a running or finished auction
type Auction struct {
	ID            AuctionID
	Title         string
	StartingPrice money.Money
	Bids          []Bid
	EndsAt        time.Time
}

// Bid represents an accepted bid on an auction
type Bid struct {
	BidID    string
	BidderID BidderID
	Amount   money.Money
	PlacedAt time.Time
}

// CurrentPrice is the highest bid amount, or the starting price when nobody has bid yet.
func (a Auction) CurrentPrice() money.Money {
	if winning, ok := a.winningBid(); ok {
		return winning.Amount
	}
	return a.StartingPrice
}

// Winner returns the bidder holding the highest bid.
func (a Auction) Winner() (BidderID, bool) {
	winning, ok := a.winningBid()
	if !ok {
		return "", false
	}
	return winning.BidderID, true
}

// IsActive reports whether the auction still accepts bids at now.
func (a Auction) IsActive(now time.Time) bool {
	return now.Before(a.EndsAt)
}

// Clone returns a copy that shares no bid storage with a.
func (a Auction) Clone() Auction {
	a.Bids = append([]Bid(nil), a.Bids...)
	return a
}

func (a Auction) winningBid() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}

	winning := a.Bids[0]
	for _, b := range a.Bids[1:] {
		if b.Amount.GreaterThan(winning.Amount) {
			winning = b
		}
	}
	return winning, true
}
