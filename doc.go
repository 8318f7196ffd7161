// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the feedback web application.

The application is a small server-rendered site: users register, log in,
and manage feedback posts on their own profile page. All pages are HTML
forms; there is no JSON API.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=app.db SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5000 -d app.db -t sqlite -session-secret ...

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - DATABASE_URL (-d): database location (file path for sqlite, connection
    string for postgres)
  - SESSION_SECRET (-session-secret): secret for session cookie signing

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, feedback)
  - router: route definitions using Go 1.22+ routing
  - middleware: request logging
  - templates: embedded HTML pages
  - forms: form parsing and validation
  - session: signed session cookies and the ownership guard
  - store: users and feedback persistence
  - auth: password hashing and session token crypto
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
