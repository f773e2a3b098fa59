package helpers

import (
	bidding "auction-bidding/internal/biddingService"
)

const winnerMessage = "Hooray! You are a winner"

// PresentPlacingBid renders the use case output as the response body
func PresentPlacingBid(out bidding.PlacingBidOutput) MessageResponse {
	if out.IsWinner {
		return MessageResponse{Message: winnerMessage}
	}
	return MessageResponse{Message: "Your bid is too low. Current price is " + out.CurrentPrice.String()}
}
