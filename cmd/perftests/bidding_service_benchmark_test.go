package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	bidding "auction-bidding/internal/biddingService"
	model "auction-bidding/internal/models"
	"auction-bidding/internal/money"
	repository "auction-bidding/internal/repository"
)

func newAuction(id model.AuctionID, startingPrice string) model.Auction {
	return model.Auction{
		ID:            id,
		Title:         fmt.Sprintf("Benchmark auction %d", id),
		StartingPrice: money.MustParse(startingPrice),
		EndsAt:        time.Now().Add(24 * time.Hour),
	}
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo)
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		repo.AddAuction(newAuction(model.AuctionID(i+1), "50"))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		in := bidding.PlacingBidInput{
			AuctionID: model.AuctionID(i + 1),
			BidderID:  model.BidderID(fmt.Sprintf("bidder_%d", i)),
			Amount:    money.MustParse(50 + rand.Intn(100)),
		}
		if _, err := svc.PlaceBid(ctx, in); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo)
	repo.AddAuction(newAuction(1, "50"))

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		ctx := context.Background()
		for pb.Next() {
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(ctx, bidding.PlacingBidInput{
				AuctionID: 1,
				BidderID:  model.BidderID(fmt.Sprintf("bidder_parallel_%d", rnd.Int())),
				Amount:    money.MustParse(nextBid),
			})
		}
	})
}

// Benchmark 3: GetSingleAuction with a long bid history
func Benchmark_GetSingleAuction_LongHistory(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo)
	ctx := context.Background()

	repo.AddAuction(newAuction(1, "1"))
	for j := 0; j < 1000; j++ {
		_, _ = svc.PlaceBid(ctx, bidding.PlacingBidInput{
			AuctionID: 1,
			BidderID:  model.BidderID(fmt.Sprintf("bidder_%d", j)),
			Amount:    money.MustParse(2 + j),
		})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetSingleAuction(ctx, 1); err != nil {
			b.Fatalf("failed to get auction: %v", err)
		}
	}
}
