// Package auth resolves who is calling the API. It identifies bidders from bearer
// tokens; it does not manage accounts or sessions.
package auth

import (
	"strings"

	"auction-bidding/internal/models"
	"auction-bidding/utils"

	"github.com/gin-gonic/gin"
)

const callerKey = "auth.caller"

// Caller is the identity attached to a request. The zero value is an anonymous caller.
type Caller struct {
	ID            models.BidderID
	Authenticated bool
}

// Anonymous is the caller of a request without valid credentials.
var Anonymous = Caller{}

// Authenticate resolves the caller from an "Authorization: Bearer <token>" header.
// Requests without a valid token continue as Anonymous; handlers decide whether that is allowed.
func Authenticate(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := Anonymous

		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				claims, err := tokens.Validate(strings.TrimSpace(parts[1]))
				if err == nil {
					caller = Caller{ID: claims.BidderID, Authenticated: true}
				} else {
					utils.Warn("Authenticate: rejected token", map[string]any{"error": err.Error()})
				}
			}
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerFromContext returns the caller resolved by Authenticate, or Anonymous.
func CallerFromContext(c *gin.Context) Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(Caller); ok {
			return caller
		}
	}
	return Anonymous
}
