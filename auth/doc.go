// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token crypto.

# Passwords

Passwords are hashed with bcrypt before they ever reach the database:

	hash, err := auth.HashPassword(plaintext)
	ok := auth.CheckPassword(hash, plaintext)

The stored hash embeds its own salt; the plaintext is never persisted.

# Session Tokens

Session tokens bind a username to a random session ID and are signed with
HMAC-SHA256 under the server's session secret:

	token, sessionID := auth.GenerateSessionToken(username, secret)
	username, sessionID, err := auth.ParseSessionToken(token, secret)

The token format is base64url(username:uuid) + "." + base64url(signature).
A token signed under a different secret, or altered in any way, fails
verification with ErrInvalidToken. The server stores nothing: possession of
a validly signed token is what constitutes a session.
*/
package auth
