// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/session"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/testutil"
)

func registerForm(username string) url.Values {
	return url.Values{
		"username":   {username},
		"password":   {testutil.TestPassword},
		"email":      {username + "@example.com"},
		"first_name": {"Test"},
		"last_name":  {"User"},
	}
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestRegisterSuccess(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.MakeFormRequest("POST", "/register", registerForm("alice"))
	w := httptest.NewRecorder()
	h.Register(w, req)

	testutil.AssertRedirect(t, w, "/users/alice")

	if c := sessionCookie(w); c == nil || c.Value == "" {
		t.Error("Register did not set a session cookie")
	}

	if n := testutil.CountRows(t, db, "users"); n != 1 {
		t.Errorf("Expected 1 user row, got %d", n)
	}

	// The stored password must be a hash, never the plaintext
	var stored string
	if err := db.QueryRow(`SELECT password FROM users WHERE username = 'alice'`).Scan(&stored); err != nil {
		t.Fatalf("Failed to read stored password: %v", err)
	}
	if stored == testutil.TestPassword {
		t.Error("Register stored the plaintext password")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "alice")
	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.MakeFormRequest("POST", "/register", registerForm("alice"))
	w := httptest.NewRecorder()
	h.Register(w, req)

	// Field error, not an error page: the form re-renders with 200
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Username taken") {
		t.Errorf("Expected username-taken message in body, got: %s", w.Body.String())
	}

	if n := testutil.CountRows(t, db, "users"); n != 1 {
		t.Errorf("Expected 1 user row after duplicate registration, got %d", n)
	}
}

func TestRegisterInvalidForm(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.MakeFormRequest("POST", "/register", url.Values{"username": {"alice"}})
	w := httptest.NewRecorder()
	h.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "required") {
		t.Errorf("Expected validation errors in body, got: %s", w.Body.String())
	}

	if n := testutil.CountRows(t, db, "users"); n != 0 {
		t.Errorf("Expected no user rows for invalid form, got %d", n)
	}
}

func TestLoginSuccess(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "alice")
	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.MakeFormRequest("POST", "/login", url.Values{
		"username": {"alice"},
		"password": {testutil.TestPassword},
	})
	w := httptest.NewRecorder()
	h.Login(w, req)

	testutil.AssertRedirect(t, w, "/users/alice")
	if c := sessionCookie(w); c == nil || c.Value == "" {
		t.Error("Login did not set a session cookie")
	}
}

// Wrong password and unknown username must produce identical responses.
func TestLoginFailuresLookAlike(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "alice")
	h := NewUserHandler(db, testutil.GetTestConfig())

	responses := make([]*httptest.ResponseRecorder, 0, 2)
	for _, creds := range []url.Values{
		{"username": {"alice"}, "password": {"wrong"}},
		{"username": {"nobody"}, "password": {"whatever"}},
	} {
		req := testutil.MakeFormRequest("POST", "/login", creds)
		w := httptest.NewRecorder()
		h.Login(w, req)
		responses = append(responses, w)
	}

	for _, w := range responses {
		testutil.AssertStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Body.String(), "Bad name/password") {
			t.Errorf("Expected generic login error in body, got: %s", w.Body.String())
		}
		if c := sessionCookie(w); c != nil {
			t.Error("Failed login set a session cookie")
		}
	}

	if responses[0].Code != responses[1].Code {
		t.Error("Wrong-password and unknown-user responses differ in status")
	}
}

func TestLoginAlreadyAuthenticated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "alice")
	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.WithSession(testutil.MakeFormRequest("GET", "/login", nil), "alice")
	w := httptest.NewRecorder()
	h.LoginForm(w, req)

	testutil.AssertRedirect(t, w, "/users/alice")
}

func TestShowProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	user := testutil.CreateTestUser(t, db, "alice")
	testutil.CreateTestFeedback(t, db, "alice", "My first post", "Hello")
	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.WithSession(testutil.MakeFormRequest("GET", "/users/alice", nil), "alice")
	req.SetPathValue("username", "alice")
	w := httptest.NewRecorder()
	h.Show(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, user.Email) {
		t.Error("Profile page missing user email")
	}
	if !strings.Contains(body, "My first post") {
		t.Error("Profile page missing feedback title")
	}
}

func TestShowProfileUnauthenticated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "alice")
	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.MakeFormRequest("GET", "/users/alice", nil)
	req.SetPathValue("username", "alice")
	w := httptest.NewRecorder()
	h.Show(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestShowProfileWrongUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "alice")
	testutil.CreateTestUser(t, db, "bob")
	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.WithSession(testutil.MakeFormRequest("GET", "/users/alice", nil), "bob")
	req.SetPathValue("username", "alice")
	w := httptest.NewRecorder()
	h.Show(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestLogout(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.WithSession(testutil.MakeFormRequest("GET", "/logout", nil), "alice")
	w := httptest.NewRecorder()
	h.Logout(w, req)

	testutil.AssertRedirect(t, w, "/")

	c := sessionCookie(w)
	if c == nil {
		t.Fatal("Logout did not touch the session cookie")
	}
	if c.MaxAge >= 0 || c.Value != "" {
		t.Error("Logout did not expire the session cookie")
	}
}

func TestDeleteUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "alice")
	testutil.CreateTestFeedback(t, db, "alice", "T", "C")
	h := NewUserHandler(db, testutil.GetTestConfig())

	req := testutil.WithSession(testutil.MakeFormRequest("POST", "/users/alice/delete", nil), "alice")
	req.SetPathValue("username", "alice")
	w := httptest.NewRecorder()
	h.Delete(w, req)

	testutil.AssertRedirect(t, w, "/login")

	if n := testutil.CountRows(t, db, "users"); n != 0 {
		t.Errorf("Expected 0 user rows after delete, got %d", n)
	}
	if n := testutil.CountRows(t, db, "feedback"); n != 0 {
		t.Errorf("Expected 0 feedback rows after delete, got %d", n)
	}

	c := sessionCookie(w)
	if c == nil || c.MaxAge >= 0 {
		t.Error("Delete did not clear the session")
	}
}

func TestDeleteUserUnauthorized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "alice")
	testutil.CreateTestFeedback(t, db, "alice", "T", "C")
	h := NewUserHandler(db, testutil.GetTestConfig())

	for _, identity := range []string{"", "bob"} {
		req := testutil.MakeFormRequest("POST", "/users/alice/delete", nil)
		if identity != "" {
			req = testutil.WithSession(req, identity)
		}
		req.SetPathValue("username", "alice")
		w := httptest.NewRecorder()
		h.Delete(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	}

	// No mutations happened
	if n := testutil.CountRows(t, db, "users"); n != 1 {
		t.Errorf("Expected user row to survive unauthorized delete, got %d rows", n)
	}
	if n := testutil.CountRows(t, db, "feedback"); n != 1 {
		t.Errorf("Expected feedback row to survive unauthorized delete, got %d rows", n)
	}
}
