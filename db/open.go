// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"strings"
)

// Open opens a database handle for the dialect. SQLite ships with foreign
// key enforcement off, so sqlite DSNs get the foreign_keys pragma appended
// here; without it the feedback→users constraint would be a no-op and
// ghost-owner inserts would succeed silently.
func Open(dbType, dsn string) (*sql.DB, error) {
	if dbType == "sqlite" {
		if strings.Contains(dsn, "?") {
			dsn += "&_pragma=foreign_keys(1)"
		} else {
			dsn += "?_pragma=foreign_keys(1)"
		}
	}
	return sql.Open(dbType, dsn)
}
