package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hearthside/homefinder/pkg/storage"
	"github.com/hearthside/homefinder/pkg/upstream"
)

var baseUrl = flag.String("url", os.Getenv("UPSTREAM_URL"), "upstream API base url")
var apiKey = flag.String("key", os.Getenv("UPSTREAM_API_KEY"), "upstream API key")
var output = flag.String("out", "data", "snapshot output directory")

func main() {
	flag.Parse()
	if *baseUrl == "" {
		log.Fatalf("no upstream url provided")
	}

	client := upstream.NewClient(*baseUrl, *apiKey)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snapshot, err := client.FetchAll(ctx)
	if err != nil {
		log.Fatalf("failed to fetch listings: %v", err)
	}
	log.Printf("fetched %d listings", snapshot.Len())

	db := storage.NewDiskStorage(*output)
	if err := db.SaveListings(snapshot); err != nil {
		log.Fatalf("failed to save snapshot: %v", err)
	}
	log.Printf("snapshot written to %s", *output)
}
