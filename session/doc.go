// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session manages the signed session cookie and the ownership guard.

Manager reads and writes the cookie:

	sessions := session.NewManager(cfg.SessionSecret)
	identity, ok := sessions.Current(r)
	sessions.Set(w, username)
	sessions.Clear(w)

The guard is a pure function; every protected handler calls it before
touching the store:

	if !session.Authorize(identity, ok, owner) {
		// respond 401
	}
*/
package session
