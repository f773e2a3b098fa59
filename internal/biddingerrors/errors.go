package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
)

// business logic errors
var (
	ErrInvalidBid   = errors.New("invalid bid")
	ErrAuctionEnded = errors.New("auction has ended")
)
