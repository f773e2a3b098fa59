// Command tokengen mints a bearer token for a bidder, signed with the server's JWT_SECRET.
//
//	go run ./cmd/tokengen -bidder alice
package main

import (
	"flag"
	"fmt"
	"os"

	"auction-bidding/internal/auth"
	"auction-bidding/internal/config"
	model "auction-bidding/internal/models"
)

func main() {
	bidder := flag.String("bidder", "", "bidder id to embed in the token")
	flag.Parse()

	if *bidder == "" {
		fmt.Fprintln(os.Stderr, "tokengen: -bidder is required")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}

	token, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL).Generate(model.BidderID(*bidder))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
