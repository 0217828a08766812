// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/voter-roll/cliparse"
	"github.com/danielhkuo/voter-roll/handlers"
	"github.com/danielhkuo/voter-roll/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	rollHandler := handlers.NewRollHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Query interface (reads via query params, mutations via JSON body)
	mux.HandleFunc("GET /exec", middleware.WithRequestID(middleware.WithLogging(rollHandler.Exec)))
	mux.HandleFunc("POST /exec", middleware.WithRequestID(middleware.WithLogging(rollHandler.ExecPost)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("voter-roll API v1"))
	})

	// Browser entry clients call from another origin
	return middleware.CORS(mux)
}
