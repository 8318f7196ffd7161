// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/auth"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/cliparse"
	appdb "github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/db"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/models"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/session"
)

// TestSessionSecret signs session cookies in tests.
const TestSessionSecret = "test-session-secret"

// TestPassword is the plaintext password behind every test user's hash.
const TestPassword = "password123"

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
// Foreign keys are enabled and the pool is pinned to one connection so the
// in-memory database is shared across all statements in the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := appdb.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := appdb.CreateSchema(db, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseURL:   "file::memory:",
		DatabaseType:  "sqlite",
		SessionSecret: TestSessionSecret,
	}
}

// CreateTestUser inserts a user whose password is TestPassword.
func CreateTestUser(t *testing.T, db *sql.DB, username string) models.User {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user := models.User{
		Username:  username,
		Password:  hash,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	}

	_, err = db.Exec(`
		INSERT INTO users (username, password, email, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
	`, user.Username, user.Password, user.Email, user.FirstName, user.LastName)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestFeedback inserts a feedback row for the user and returns its id.
func CreateTestFeedback(t *testing.T, db *sql.DB, username, title, content string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO feedback (title, content, username)
		VALUES ($1, $2, $3)
		RETURNING id
	`, title, content, username).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test feedback: %v", err)
	}

	return id
}

// CountRows returns the number of rows in the named table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}

// MakeFormRequest creates an HTTP test request carrying an urlencoded form
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// WithSession attaches a valid session cookie for the username.
func WithSession(req *http.Request, username string) *http.Request {
	token, _ := auth.GenerateSessionToken(username, TestSessionSecret)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d. Body: %s", w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}
