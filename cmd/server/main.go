package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"serviceatlas/internal/config"
	"serviceatlas/internal/server"
	"serviceatlas/internal/storage"
	"serviceatlas/internal/storage/providers"
	httptransport "serviceatlas/internal/transport/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.MustLoad()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Missing or broken storage configuration degrades instead of aborting:
	// reads answer 503 until the backend is reachable.
	var db *pgxpool.Pool
	if cfg.DatabaseUrl == "" {
		slog.Warn("DATABASE_URL is not set, starting without storage")
	} else {
		var err error
		db, err = storage.InitDB(cfg.DatabaseUrl)
		if err != nil {
			slog.Error("failed to open database, starting without storage", "err", err)
			db = nil
		}
	}
	if db != nil {
		defer db.Close()
	}

	allProviders := providers.New(db)
	router := httptransport.Router(allProviders, cfg)

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := server.Start(ctx, addr, cfg.CORS.Origin, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
