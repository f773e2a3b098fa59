package main

import (
	"auction-bidding/internal/auth"
	bidding "auction-bidding/internal/biddingService"
	"auction-bidding/internal/config"
	model "auction-bidding/internal/models"
	"auction-bidding/internal/money"
	"auction-bidding/internal/repository"
	"auction-bidding/internal/server"
	"auction-bidding/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Fatal("Invalid log level", map[string]any{"error": err.Error()})
	}
	gin.SetMode(cfg.GinMode)

	repo := repository.NewMemoryRepo()

	if cfg.SeedAuctions {
		prepopulateAuctions(repo, time.Now().UTC())
	}

	biddingSvc := bidding.NewBiddingService(repo)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	router := server.SetupRouter(biddingSvc, biddingSvc, tokens)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		utils.Info("Starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("Graceful shutdown failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	utils.Info("Server stopped", nil)
}

// prepopulateAuctions adds sample auctions to the in-memory repo
func prepopulateAuctions(repo *repository.MemoryRepo, now time.Time) {
	auctions := []model.Auction{
		{ID: 1, Title: "Vintage desk lamp", StartingPrice: money.MustParse("10"), EndsAt: now.Add(24 * time.Hour)},
		{ID: 2, Title: "Oak chair", StartingPrice: money.MustParse("25.50"), EndsAt: now.Add(48 * time.Hour)},
		{ID: 3, Title: "Signed first edition", StartingPrice: money.MustParse("150"), EndsAt: now.Add(72 * time.Hour)},
	}

	for _, auction := range auctions {
		repo.AddAuction(auction)
	}
}
