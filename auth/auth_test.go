// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "secret123" {
		t.Error("HashPassword() returned the plaintext")
	}

	if !CheckPassword(hash, "secret123") {
		t.Error("CheckPassword() rejected the correct password")
	}

	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	// bcrypt salts per hash, so identical inputs must not collide
	if h1 == h2 {
		t.Error("HashPassword() produced identical hashes for the same input")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{"simple", "alice"},
		{"with digits", "bob42"},
		{"with colon", "odd:name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, sessionID := GenerateSessionToken(tt.username, "secret")

			username, gotID, err := ParseSessionToken(token, "secret")
			if err != nil {
				t.Fatalf("ParseSessionToken() error = %v", err)
			}
			if username != tt.username {
				t.Errorf("ParseSessionToken() username = %q, want %q", username, tt.username)
			}
			if gotID != sessionID {
				t.Errorf("ParseSessionToken() session ID = %q, want %q", gotID, sessionID)
			}
		})
	}
}

func TestSessionTokenUniquePerSession(t *testing.T) {
	t1, id1 := GenerateSessionToken("alice", "secret")
	t2, id2 := GenerateSessionToken("alice", "secret")

	if t1 == t2 {
		t.Error("GenerateSessionToken() produced identical tokens for two sessions")
	}
	if id1 == id2 {
		t.Error("GenerateSessionToken() produced identical session IDs")
	}
}

func TestParseSessionTokenRejectsBadInput(t *testing.T) {
	token, _ := GenerateSessionToken("alice", "secret")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", strings.ReplaceAll(token, ".", "")},
		{"garbage", "not-a-token"},
		{"tampered payload", "x" + token},
		{"tampered signature", token + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseSessionToken(tt.token, "secret"); err != ErrInvalidToken {
				t.Errorf("ParseSessionToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	token, _ := GenerateSessionToken("alice", "secret-a")

	if _, _, err := ParseSessionToken(token, "secret-b"); err != ErrInvalidToken {
		t.Errorf("ParseSessionToken() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}
