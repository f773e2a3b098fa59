package helpers

// Request/Response DTOs

// PlaceBidRequest documents the body accepted by POST /auctions/:auction_id/bids.
// The handler validates the raw payload with ValidatePlacingBid rather than binding into this type.
type PlaceBidRequest struct {
	Amount string `json:"amount"`
}

// MessageResponse is the body of a successful bid placement
type MessageResponse struct {
	Message string `json:"message"`
}
