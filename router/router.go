// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/cliparse"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/handlers"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Landing page
	mux.HandleFunc("GET /{$}", middleware.WithLogging(userHandler.Home))

	// Registration and authentication
	mux.HandleFunc("GET /register", middleware.WithLogging(userHandler.RegisterForm))
	mux.HandleFunc("POST /register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("GET /login", middleware.WithLogging(userHandler.LoginForm))
	mux.HandleFunc("POST /login", middleware.WithLogging(userHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(userHandler.Logout))

	// Profile (owner only)
	mux.HandleFunc("GET /users/{username}", middleware.WithLogging(userHandler.Show))
	mux.HandleFunc("POST /users/{username}/delete", middleware.WithLogging(userHandler.Delete))

	// Feedback (owner only)
	mux.HandleFunc("GET /users/{username}/feedback/add", middleware.WithLogging(feedbackHandler.AddForm))
	mux.HandleFunc("POST /users/{username}/feedback/add", middleware.WithLogging(feedbackHandler.Add))
	mux.HandleFunc("GET /feedback/{id}/update", middleware.WithLogging(feedbackHandler.EditForm))
	mux.HandleFunc("POST /feedback/{id}/update", middleware.WithLogging(feedbackHandler.Edit))
	mux.HandleFunc("POST /feedback/{id}/delete", middleware.WithLogging(feedbackHandler.Delete))

	return mux
}
