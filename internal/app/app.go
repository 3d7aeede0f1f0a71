package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"tailormade/backend/internal/app/config"
	apphttp "tailormade/backend/internal/app/http"
	"tailormade/backend/internal/infra/db/postgres"
)

func Run() {
	cfg := config.MustLoad()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	router := apphttp.NewRouter(cfg, db)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
