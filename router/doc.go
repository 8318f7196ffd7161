// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the feedback application.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Public:

	GET  /health    - Health check
	GET  /          - Landing page
	GET  /register  - Registration form
	POST /register  - Create account (logs the user in)
	GET  /login     - Login form
	POST /login     - Authenticate
	GET  /logout    - Clear session

Owner only (401 for anyone else):

	GET  /users/{username}               - Profile with feedback list
	POST /users/{username}/delete        - Delete account and its feedback
	GET  /users/{username}/feedback/add  - Add-feedback form
	POST /users/{username}/feedback/add  - Create feedback
	GET  /feedback/{id}/update           - Edit form (pre-filled)
	POST /feedback/{id}/update           - Update feedback
	POST /feedback/{id}/delete           - Delete feedback

# Handler Initialization

The router creates handler instances with dependency injection:

	userHandler := handlers.NewUserHandler(db, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
