package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"auction-bidding/internal/auth"
	bidding "auction-bidding/internal/biddingService"
	model "auction-bidding/internal/models"
	"auction-bidding/services/bidding/helpers"
	"auction-bidding/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auctions_handler.go -destination=mock_handler.go -package=handler

// PlacingBidUseCase evaluates a validated bid and reports the outcome
type PlacingBidUseCase interface {
	PlaceBid(ctx context.Context, in bidding.PlacingBidInput) (bidding.PlacingBidOutput, error)
}

// AuctionQueries are the read-only views served by the handler
type AuctionQueries interface {
	GetActiveAuctions(ctx context.Context) ([]bidding.AuctionDTO, error)
	GetSingleAuction(ctx context.Context, id model.AuctionID) (bidding.AuctionDTO, error)
	GetBidsForAuction(ctx context.Context, id model.AuctionID) ([]bidding.BidDTO, error)
}

type AuctionsHandler struct {
	placingBid PlacingBidUseCase
	queries    AuctionQueries
}

func NewAuctionsHandler(placingBid PlacingBidUseCase, queries AuctionQueries) *AuctionsHandler {
	return &AuctionsHandler{placingBid: placingBid, queries: queries}
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionsHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.queries.GetActiveAuctions(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []bidding.AuctionDTO{}
	}

	c.JSON(http.StatusOK, auctions)
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionsHandler) GetAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseAuctionID(c.Param("auction_id"))
	if !ok {
		notFound(c, c.Param("auction_id"))
		return
	}

	auction, err := h.queries.GetSingleAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, auction)
}

// GetBidsHandler handles GET /auctions/:auction_id/bids
func (h *AuctionsHandler) GetBidsHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseAuctionID(c.Param("auction_id"))
	if !ok {
		notFound(c, c.Param("auction_id"))
		return
	}

	bids, err := h.queries.GetBidsForAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []bidding.BidDTO{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionsHandler) PlaceBidHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseAuctionID(c.Param("auction_id"))
	if !ok {
		notFound(c, c.Param("auction_id"))
		return
	}

	h.placeBid(c, auth.CallerFromContext(c), auctionID)
}

func (h *AuctionsHandler) placeBid(c *gin.Context, caller auth.Caller, auctionID model.AuctionID) {
	if !caller.Authenticated {
		utils.AbortWithJSONError(c, http.StatusForbidden, auth.ErrMissingToken, "authentication required")
		utils.Warn("PlaceBidHandler: unauthenticated bid rejected", map[string]any{"auction_id": auctionID})
		return
	}

	payload, err := helpers.DecodePayload(c.Request.Body)
	if err != nil {
		rejectInput(c, auctionID, err)
		return
	}

	input, err := helpers.ValidatePlacingBid(payload, helpers.PlacingBidContext{
		AuctionID: auctionID,
		BidderID:  caller.ID,
	})
	if err != nil {
		rejectInput(c, auctionID, err)
		return
	}

	out, err := h.placingBid.PlaceBid(c.Request.Context(), input)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"bidder_id":  caller.ID,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.PresentPlacingBid(out))
	helpers.LogSuccess("PlaceBidHandler", "bid evaluated", map[string]any{
		"auction_id":    auctionID,
		"bidder_id":     caller.ID,
		"amount":        input.Amount.String(),
		"is_winner":     out.IsWinner,
		"current_price": out.CurrentPrice.String(),
	})
}

// rejectInput answers 400 with the field-to-messages map
func rejectInput(c *gin.Context, auctionID model.AuctionID, err error) {
	var fieldErrs helpers.FieldErrors
	if !errors.As(err, &fieldErrs) {
		fieldErrs = helpers.FieldErrors{helpers.SchemaKey: {helpers.MsgInvalidInputType}}
	}

	c.JSON(http.StatusBadRequest, fieldErrs)
	utils.Warn("PlaceBidHandler: invalid bid payload", map[string]any{
		"auction_id": auctionID,
		"error":      fieldErrs.Error(),
	})
}

func notFound(c *gin.Context, rawID string) {
	utils.JSONError(c, http.StatusNotFound, fmt.Errorf("invalid auction id %q", rawID), "auction not found")
}
