package integrationtests

import (
	"auction-bidding/internal/auth"
	bidding "auction-bidding/internal/biddingService"
	model "auction-bidding/internal/models"
	"auction-bidding/internal/repository"
	"auction-bidding/internal/server"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testSecret = "integration-test-secret"

// testApp bundles the wired router with the collaborators tests need to reach
type testApp struct {
	router *gin.Engine
	repo   *repository.MemoryRepo
	tokens *auth.TokenManager
}

// SetupTestApp initializes the router with an in-memory repository seeded with auctions.
func SetupTestApp(auctions ...model.Auction) *testApp {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	for _, auction := range auctions {
		repo.AddAuction(auction)
	}

	service := bidding.NewBiddingService(repo)
	tokens := auth.NewTokenManager(testSecret, time.Hour)
	router := server.SetupRouter(service, service, tokens)
	return &testApp{router: router, repo: repo, tokens: tokens}
}

// BearerFor returns an Authorization header value for the bidder.
func (a *testApp) BearerFor(t *testing.T, bidder model.BidderID) string {
	t.Helper()
	token, err := a.tokens.Generate(bidder)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func (a *testApp) ExecuteRequest(t *testing.T, method, url string, body any, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and decodes a JSON response body into out
func (a *testApp) ExecuteRequestAndParse(t *testing.T, method, url string, body any, authHeader string, out any) *httptest.ResponseRecorder {
	t.Helper()

	w := a.ExecuteRequest(t, method, url, body, authHeader)
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return w
}
