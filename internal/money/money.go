// Package money holds the validated currency amount used for auction prices and bids.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Scale is the number of decimal places an amount may carry.
	Scale int32 = 2

	// exponent bounds keep decimal rescaling cheap for hostile input like "1e999999999"
	maxExponent int32 = 15
	minExponent int32 = -20
)

// Messages reported to clients when an amount is rejected.
const (
	MsgNotAnAmount = "Not a valid amount."
	MsgNegative    = "Amount must not be negative."
	MsgPrecision   = "Amount must have at most 2 decimal places."
	MsgTooLarge    = "Amount is too large."
)

// ValidationError describes why a raw value is not a valid amount.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Money is an immutable non-negative amount with at most two decimal places.
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// Parse converts a raw value (string, json.Number, float64, int, int64 or decimal.Decimal)
// into Money.
func Parse(raw any) (Money, error) {
	d, err := toDecimal(raw)
	if err != nil {
		return Money{}, err
	}

	if d.Exponent() > maxExponent && !d.IsZero() {
		return Money{}, &ValidationError{Message: MsgTooLarge}
	}
	if d.Exponent() < minExponent {
		return Money{}, &ValidationError{Message: MsgPrecision}
	}
	if d.Sign() < 0 {
		return Money{}, &ValidationError{Message: MsgNegative}
	}
	if !d.Equal(d.Round(Scale)) {
		return Money{}, &ValidationError{Message: MsgPrecision}
	}

	return Money{amount: d.Round(Scale)}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for literals.
func MustParse(raw any) Money {
	m, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("money: MustParse(%v): %v", raw, err))
	}
	return m
}

func toDecimal(raw any) (decimal.Decimal, error) {
	invalid := &ValidationError{Message: MsgNotAnAmount}

	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Decimal{}, invalid
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, invalid
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, invalid
		}
		return d, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, invalid
		}
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case decimal.Decimal:
		return v, nil
	default:
		return decimal.Decimal{}, invalid
	}
}

// String returns the canonical form: "150" for whole amounts, "150.50" otherwise.
func (m Money) String() string {
	if m.amount.IsInteger() {
		return m.amount.StringFixed(0)
	}
	return m.amount.StringFixed(Scale)
}

// Decimal exposes the underlying value for arithmetic.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// MarshalJSON renders the canonical string form.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
