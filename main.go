package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hearthside/homefinder/pkg/common"
	"github.com/hearthside/homefinder/pkg/index"
	"github.com/hearthside/homefinder/pkg/messaging"
	"github.com/hearthside/homefinder/pkg/server"
	"github.com/hearthside/homefinder/pkg/storage"
	ffSync "github.com/hearthside/homefinder/pkg/sync"
	"github.com/hearthside/homefinder/pkg/tracking"
	"github.com/hearthside/homefinder/pkg/upstream"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")
var upstreamUrl = os.Getenv("UPSTREAM_URL")
var upstreamKey = os.Getenv("UPSTREAM_API_KEY")
var rabbitUrl = os.Getenv("RABBIT_URL")
var rabbitVHost = os.Getenv("RABBIT_HOST")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")
var dataPath = os.Getenv("DATA_PATH")
var listenAddress = ":8080"
var debugAddress = ":8081"

var rabbitConfig = ffSync.RabbitConfig{
	ListingsUpsertedTopic: messaging.ListingsUpsertedTopic,
	ListingDeletedTopic:   messaging.ListingDeletedTopic,
	VHost:                 rabbitVHost,
	Url:                   rabbitUrl,
}

var idx = index.New()
var srv = server.WebServer{
	Index: idx,
}

var done = false

func loadListings() {
	if dataPath == "" {
		dataPath = "data"
	}
	db := storage.NewDiskStorage(dataPath)

	if db.HasListings() {
		snapshot, err := db.LoadListings()
		if err != nil {
			log.Fatalf("failed to load listing snapshot: %v", err)
		}
		for _, records := range snapshot {
			for _, record := range records {
				idx.Upsert(record)
			}
		}
	} else if upstreamUrl != "" {
		log.Printf("no snapshot found, fetching listings from %s", upstreamUrl)
		client := upstream.NewClient(upstreamUrl, upstreamKey)
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		snapshot, err := client.FetchAll(ctx)
		if err != nil {
			log.Fatalf("failed to fetch listings: %v", err)
		}
		for _, records := range snapshot {
			for _, record := range records {
				idx.Upsert(record)
			}
		}
		if err := db.SaveListings(snapshot); err != nil {
			log.Printf("failed to save listing snapshot: %v", err)
		}
	} else {
		log.Println("no snapshot and no UPSTREAM_URL, starting empty")
	}

	if rabbitUrl != "" {
		listener := ffSync.RabbitListener{RabbitConfig: rabbitConfig}
		if err := listener.Connect(idx); err != nil {
			log.Printf("failed to connect listing change feed: %v", err)
		} else {
			log.Println("listing change feed connected")
		}

		trk, err := tracking.NewRabbitTracking(rabbitUrl)
		if err != nil {
			log.Printf("failed to create rabbit tracking: %v", err)
		} else {
			srv.Tracking = trk
		}
	}

	if redisUrl != "" {
		srv.Cache = server.NewCache(redisUrl, redisPassword, 0)
		log.Printf("browse cache enabled, url: %s", redisUrl)
	}

	done = true
}

func main() {
	flag.Parse()
	loadListings()

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if !done {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if enableProfiling != nil && *enableProfiling {
		log.Println("Profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}

	go func() {
		log.Printf("starting debug server %v", debugAddress)
		log.Fatal(http.ListenAndServe(debugAddress, debugMux))
	}()

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv.ClientHandler()))

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       120 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	httpServer := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: mux}, timeouts)
	common.RunServerWithShutdown(httpServer, "homefinder api", timeouts.Shutdown, timeouts.Hook,
		func(ctx context.Context) error {
			db := storage.NewDiskStorage(dataPath)
			return db.SaveListings(idx.Snapshot())
		})
}
