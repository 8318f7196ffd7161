// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

var (
	// ErrDuplicateUsername is returned by UserStore.Register when the
	// username is already taken. Surfaced to the user as a field error.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrOwnerNotFound is returned by FeedbackStore.Create when the owning
	// username does not reference an existing user.
	ErrOwnerNotFound = errors.New("feedback owner does not exist")

	// ErrNotFound is returned by lookups and mutations on records that do
	// not exist.
	ErrNotFound = errors.New("record not found")
)
