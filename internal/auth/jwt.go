package auth

import (
	"errors"
	"fmt"
	"time"

	"auction-bidding/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// TokenManager issues and validates bidder tokens.
type TokenManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// Claims are the JWT claims identifying a bidder.
type Claims struct {
	BidderID models.BidderID `json:"bidder_id"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a token manager signing with secretKey (HS256).
func NewTokenManager(secretKey string, tokenDuration time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// Generate creates a signed token for the bidder.
func (m *TokenManager) Generate(bidderID models.BidderID) (string, error) {
	if bidderID == "" {
		return "", fmt.Errorf("generate token: empty bidder id")
	}

	now := time.Now()
	claims := &Claims{
		BidderID: bidderID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(bidderID),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a token, returning its claims.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.BidderID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
