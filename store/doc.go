// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists users and feedback over database/sql.

# Stores

UserStore owns the users table:

	users := store.NewUserStore(db)
	user, err := users.Register(username, password, email, first, last)
	user, ok, err := users.Authenticate(username, password)
	user, err := users.GetByUsername(username)
	err := users.Delete(username) // cascades owned feedback, one transaction

FeedbackStore owns the feedback table:

	fb, err := feedback.Create(title, content, username)
	fb, err := feedback.GetByID(id)
	posts, err := feedback.ListByOwner(username)
	err := feedback.Update(id, title, content)
	err := feedback.Delete(id)

# Errors

Expected failures are sentinel values callers can branch on:

  - ErrDuplicateUsername: Register on a taken username
  - ErrOwnerNotFound: Create for a nonexistent user
  - ErrNotFound: any lookup or mutation on a missing record

Everything else is a wrapped store failure and should be treated as fatal
to the request.

# Concurrency

Username uniqueness is resolved by the database (INSERT ... ON CONFLICT),
so concurrent registrations of the same name cannot both succeed. The
placeholders are written $1..$n in order of appearance, which binds
identically under lib/pq and modernc sqlite.
*/
package store
