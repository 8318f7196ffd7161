// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// User is an account record. The username is the primary key and never
// changes after registration. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// Feedback is a post belonging to exactly one user. Username is a foreign
// key into the users table.
type Feedback struct {
	ID       int64
	Title    string
	Content  string
	Username string
}
