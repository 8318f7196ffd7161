// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"net/http"

	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/auth"
)

// CookieName is the session cookie set on login/registration.
const CookieName = "feedback_session"

// Manager reads and writes the signed session cookie. The server keeps no
// session state of its own: the cookie is the session, and the HMAC
// signature is what makes it trustworthy.
type Manager struct {
	secret string
}

func NewManager(secret string) *Manager {
	return &Manager{secret: secret}
}

// Current returns the authenticated username for the request, if any.
// A missing, malformed, or tampered cookie counts as unauthenticated.
func (m *Manager) Current(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}

	username, _, err := auth.ParseSessionToken(c.Value, m.secret)
	if err != nil {
		return "", false
	}
	return username, true
}

// Set issues a new session for the username and writes the cookie.
func (m *Manager) Set(w http.ResponseWriter, username string) {
	token, sessionID := auth.GenerateSessionToken(username, m.secret)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	slog.Info("session issued", "username", username, "session_id", sessionID)
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authorize is the guard applied before every protected operation: the
// caller must be authenticated and must be the owner of the resource.
func Authorize(identity string, authenticated bool, owner string) bool {
	return authenticated && identity == owner
}
