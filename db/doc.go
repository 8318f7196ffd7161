// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles opening connections and creating the schema.

Open returns a handle for the dialect; for sqlite it appends the
foreign_keys pragma to the DSN, since SQLite does not enforce foreign
keys by default. CreateSchema initializes the two tables:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - users: account records, primary key username
  - feedback: posts, auto-increment id, foreign key username → users

The foreign key is not ON DELETE CASCADE; account deletion removes owned
feedback explicitly inside a transaction (see store.UserStore.Delete).
*/
package db
