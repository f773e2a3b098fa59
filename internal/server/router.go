package server

import (
	"auction-bidding/internal/auth"
	handler "auction-bidding/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(placingBid handler.PlacingBidUseCase, queries handler.AuctionQueries, tokens *auth.TokenManager) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlate logs with responses
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(auth.Authenticate(tokens))

	auctionsHandler := handler.NewAuctionsHandler(placingBid, queries)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionsHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionsHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionsHandler.GetBidsHandler)
		auctions.POST("/:auction_id/bids", auctionsHandler.PlaceBidHandler)
	}

	return router
}
