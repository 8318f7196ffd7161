// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the feedback site.

# Handler Types

Each handler is a struct with store and session dependencies, created via
constructor functions that accept *sql.DB and Config:

	userHandler := handlers.NewUserHandler(db, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(db, cfg)

# Request Flow

Every handler is a straight line: read the form, validate, authorize,
hit the store, then redirect on success or re-render the form with field
errors on invalid input. Validation failures are HTTP 200 re-renders;
authorization failures are a bare 401; anything else is the generic 500
page with the cause logged server-side.

# Authorization

Protected handlers resolve the session identity once per request and pass
it through session.Authorize against the resource owner before any
mutation or disclosure. For feedback routes the owner comes from the
loaded feedback row, so a missing id fails (as a server error) before the
guard runs.
*/
package handlers
