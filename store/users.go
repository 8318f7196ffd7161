// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/auth"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/models"
)

// UserStore owns the users table: registration, credential checks, lookup,
// and account deletion.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Register hashes the plaintext password and inserts the user. Returns
// ErrDuplicateUsername if the username is taken. Uniqueness is resolved by
// the database, so two concurrent registrations can never both succeed.
func (s *UserStore) Register(username, plaintext, email, firstName, lastName string) (*models.User, error) {
	hash, err := auth.HashPassword(plaintext)
	if err != nil {
		return nil, err
	}

	res, err := s.db.Exec(`
		INSERT INTO users (username, password, email, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
	`, username, hash, email, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 0 {
		return nil, ErrDuplicateUsername
	}

	return &models.User{
		Username:  username,
		Password:  hash,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// Authenticate looks up the user and verifies the plaintext password
// against the stored hash. A missing user and a wrong password are
// indistinguishable to the caller: both return ok == false. The error is
// non-nil only for store failures.
func (s *UserStore) Authenticate(username, plaintext string) (*models.User, bool, error) {
	user, err := s.GetByUsername(username)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if !auth.CheckPassword(user.Password, plaintext) {
		return nil, false, nil
	}
	return user, true, nil
}

// GetByUsername returns the user record, or ErrNotFound.
func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT username, password, email, first_name, last_name
		FROM users
		WHERE username = $1
	`, username).Scan(&user.Username, &user.Password, &user.Email, &user.FirstName, &user.LastName)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// Delete removes the user and all feedback they own in one transaction, so
// a failure leaves no orphaned rows and no half-deleted account. Returns
// ErrNotFound if the user does not exist.
func (s *UserStore) Delete(username string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM feedback WHERE username = $1`, username); err != nil {
		return fmt.Errorf("failed to delete user feedback: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}
