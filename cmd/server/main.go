package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockchat/internal/chat"
	"stockchat/internal/config"
	"stockchat/internal/gemini"
	"stockchat/internal/httpx"
	"stockchat/internal/quote"
	"stockchat/internal/session"
	"stockchat/internal/setindex"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Gemini.APIKey == "" {
		log.Println("warning: GEMINI_API_KEY not set; completion calls will be rejected upstream")
	}
	if cfg.SET.APIKey == "" {
		log.Println("warning: SET_API_KEY not set; /realtime_index will be rejected upstream")
	}

	timeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second
	httpClient := httpx.New(timeout)

	completer, err := gemini.NewClient(cfg.Gemini.APIKey,
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithHTTPClient(httpClient.HTTP),
	)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}

	fetcher := quote.NewFetcher(quote.NewYahooProvider())
	router := chat.NewRouter(completer, fetcher, session.NewMemoryStore(), cfg.Chat.SystemInstruction)
	index := setindex.New(setindex.Config{
		Endpoint:     cfg.SET.Endpoint,
		APIKey:       cfg.SET.APIKey,
		Market:       cfg.SET.Market,
		IndexSector:  cfg.SET.IndexSector,
		SecurityType: cfg.SET.SecurityType,
		StockSymbol:  cfg.SET.StockSymbol,
		OddLotFlag:   cfg.SET.OddLotFlag,
	}, timeout)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           routes(newServer(router, index)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
