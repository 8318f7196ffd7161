// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"

	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/testutil"
)

func TestRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	users := NewUserStore(db)

	user, err := users.Register("alice", "pw1", "a@x.com", "Alice", "Liddell")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.Username != "alice" {
		t.Errorf("Register() username = %q, want %q", user.Username, "alice")
	}
	if user.Password == "pw1" {
		t.Error("Register() stored the plaintext password")
	}

	stored, err := users.GetByUsername("alice")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if stored.Email != "a@x.com" || stored.FirstName != "Alice" || stored.LastName != "Liddell" {
		t.Errorf("GetByUsername() = %+v, attributes do not match registration", stored)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	users := NewUserStore(db)

	if _, err := users.Register("alice", "pw1", "a@x.com", "Alice", "Liddell"); err != nil {
		t.Fatalf("First Register() error = %v", err)
	}

	_, err := users.Register("alice", "pw2", "other@x.com", "Other", "Person")
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("Second Register() error = %v, want ErrDuplicateUsername", err)
	}

	if n := testutil.CountRows(t, db, "users"); n != 1 {
		t.Errorf("Expected 1 user row after duplicate registration, got %d", n)
	}
}

func TestAuthenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	users := NewUserStore(db)
	if _, err := users.Register("alice", "pw1", "a@x.com", "Alice", "Liddell"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, ok, err := users.Authenticate("alice", "pw1")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if !ok {
		t.Fatal("Authenticate() rejected the correct password")
	}
	if user.Username != "alice" {
		t.Errorf("Authenticate() username = %q, want %q", user.Username, "alice")
	}
}

// A wrong password and a nonexistent user must be indistinguishable.
func TestAuthenticateFailuresLookAlike(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	users := NewUserStore(db)
	if _, err := users.Register("alice", "pw1", "a@x.com", "Alice", "Liddell"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	wrongUser, wrongOK, wrongErr := users.Authenticate("alice", "nope")
	missingUser, missingOK, missingErr := users.Authenticate("nobody", "whatever")

	if wrongOK || missingOK {
		t.Fatal("Authenticate() accepted bad credentials")
	}
	if wrongUser != nil || missingUser != nil {
		t.Error("Authenticate() returned a user for bad credentials")
	}
	if wrongErr != nil || missingErr != nil {
		t.Errorf("Authenticate() errors = %v / %v, want nil for both failure modes", wrongErr, missingErr)
	}
}

func TestGetByUsernameMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	users := NewUserStore(db)
	if _, err := users.GetByUsername("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByUsername() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascadesFeedback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	users := NewUserStore(db)
	testutil.CreateTestUser(t, db, "alice")
	testutil.CreateTestUser(t, db, "bob")
	testutil.CreateTestFeedback(t, db, "alice", "T1", "C1")
	testutil.CreateTestFeedback(t, db, "alice", "T2", "C2")
	bobsPost := testutil.CreateTestFeedback(t, db, "bob", "T3", "C3")

	if err := users.Delete("alice"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := users.GetByUsername("alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("User still present after Delete(): error = %v", err)
	}

	feedback := NewFeedbackStore(db)
	posts, err := feedback.ListByOwner("alice")
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("Expected 0 orphaned feedback rows, got %d", len(posts))
	}

	// Other users' feedback is untouched
	if _, err := feedback.GetByID(bobsPost); err != nil {
		t.Errorf("Unrelated feedback lost in cascade: %v", err)
	}
}

func TestDeleteMissingUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	users := NewUserStore(db)
	if err := users.Delete("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}
