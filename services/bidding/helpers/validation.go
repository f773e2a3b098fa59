package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"

	bidding "auction-bidding/internal/biddingService"
	"auction-bidding/internal/models"
	"auction-bidding/internal/money"
)

const maxPayloadBytes = 1 << 20

// Field error messages
const (
	MsgRequired         = "Missing data for required field."
	MsgUnknownField     = "Unknown field."
	MsgInvalidInputType = "Invalid input type."
	MsgInvalidJSON      = "Invalid JSON payload."
)

// SchemaKey holds errors that concern the payload as a whole
const SchemaKey = "_schema"

// FieldErrors maps a field name to every message describing why it was rejected.
// It is also the 400 response body.
type FieldErrors map[string][]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(fe[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

// PlacingBidContext carries trusted, request-derived values merged into the input
type PlacingBidContext struct {
	AuctionID models.AuctionID
	BidderID  models.BidderID
}

// DecodePayload reads a JSON object from r, keeping numbers as json.Number
func DecodePayload(r io.Reader) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxPayloadBytes))
	if err != nil {
		return nil, FieldErrors{SchemaKey: {MsgInvalidJSON}}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, FieldErrors{SchemaKey: {MsgInvalidInputType}}
		}
		return nil, FieldErrors{SchemaKey: {MsgInvalidJSON}}
	}
	if dec.More() {
		return nil, FieldErrors{SchemaKey: {MsgInvalidJSON}}
	}

	payload, ok := raw.(map[string]any)
	if !ok {
		return nil, FieldErrors{SchemaKey: {MsgInvalidInputType}}
	}
	return payload, nil
}

// ValidatePlacingBid validates payload and merges it with ctx. All field errors are
// collected and returned together as FieldErrors; the input is only built when there are none.
func ValidatePlacingBid(payload map[string]any, ctx PlacingBidContext) (bidding.PlacingBidInput, error) {
	errs := FieldErrors{}

	for field := range payload {
		if field != "amount" {
			errs.add(field, MsgUnknownField)
		}
	}

	var amount money.Money
	rawAmount, present := payload["amount"]
	if !present || rawAmount == nil {
		errs.add("amount", MsgRequired)
	} else {
		parsed, err := money.Parse(rawAmount)
		if err != nil {
			var verr *money.ValidationError
			if errors.As(err, &verr) {
				errs.add("amount", verr.Message)
			} else {
				errs.add("amount", money.MsgNotAnAmount)
			}
		}
		amount = parsed
	}

	if len(errs) > 0 {
		return bidding.PlacingBidInput{}, errs
	}

	return bidding.PlacingBidInput{
		AuctionID: ctx.AuctionID,
		BidderID:  ctx.BidderID,
		Amount:    amount,
	}, nil
}
