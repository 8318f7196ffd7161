// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidToken = errors.New("invalid session token")

// HashPassword hashes a plaintext password with bcrypt. The result embeds
// the salt and cost, so no separate salt storage is needed.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored bcrypt hash.
func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// GenerateSessionToken mints a signed session token binding a username to a
// fresh session ID. The token is payload.signature, where payload is
// "username:uuid" and the signature is HMAC-SHA256 under the secret. Both
// parts are URL-safe base64 without padding.
func GenerateSessionToken(username, secret string) (token, sessionID string) {
	sessionID = uuid.NewString()
	payload := username + ":" + sessionID
	sig := signPayload(payload, secret)
	token = base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + sig
	return token, sessionID
}

// ParseSessionToken verifies a session token and returns the username and
// session ID it carries. Tampered, malformed, or foreign-secret tokens all
// yield ErrInvalidToken.
func ParseSessionToken(token, secret string) (username, sessionID string, err error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", "", ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	payload := string(raw)

	expected := signPayload(payload, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", "", ErrInvalidToken
	}

	// The session ID is a UUID and never contains a colon; split from the
	// right so usernames with colons still round-trip.
	i := strings.LastIndex(payload, ":")
	if i < 0 {
		return "", "", ErrInvalidToken
	}
	return payload[:i], payload[i+1:], nil
}

func signPayload(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
