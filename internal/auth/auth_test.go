package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testSecret, time.Hour)

	token, err := tm.Generate("bidder-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "bidder-1", string(claims.BidderID))
	require.Equal(t, "bidder-1", claims.Subject)
}

func TestTokenManager_Validate_Rejects(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testSecret, time.Hour)

	expired, err := NewTokenManager(testSecret, -time.Minute).Generate("bidder-1")
	require.NoError(t, err)

	foreign, err := NewTokenManager("another-secret-0123456789", time.Hour).Generate("bidder-1")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{BidderID: "bidder-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noBidder, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expired},
		{name: "wrong_secret", token: foreign},
		{name: "none_algorithm", token: noneAlg},
		{name: "missing_bidder", token: noBidder},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := tm.Validate(tc.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenManager_Generate_EmptyBidder(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager(testSecret, time.Hour).Generate("")
	require.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	tm := NewTokenManager(testSecret, time.Hour)

	valid, err := tm.Generate("bidder-7")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantCaller Caller
	}{
		{name: "no_header", header: "", wantCaller: Anonymous},
		{name: "valid_bearer", header: "Bearer " + valid, wantCaller: Caller{ID: "bidder-7", Authenticated: true}},
		{name: "lowercase_scheme", header: "bearer " + valid, wantCaller: Caller{ID: "bidder-7", Authenticated: true}},
		{name: "wrong_scheme", header: "Basic " + valid, wantCaller: Anonymous},
		{name: "invalid_token", header: "Bearer nope", wantCaller: Anonymous},
		{name: "missing_token", header: "Bearer", wantCaller: Anonymous},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got Caller
			router := gin.New()
			router.Use(Authenticate(tm))
			router.GET("/whoami", func(c *gin.Context) {
				got = CallerFromContext(c)
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusNoContent, w.Code)
			require.Equal(t, tc.wantCaller, got)
		})
	}
}

func TestCallerFromContext_WithoutMiddleware(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	require.Equal(t, Anonymous, CallerFromContext(c))
}
