// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: server listen port (default: 5000)
  - DatabaseURL: database location (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionSecret: secret for session cookie signing (required)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → -session-secret

CLI flags take precedence over environment variables.
*/
package cliparse
