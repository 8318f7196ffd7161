// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/models"
)

// FeedbackStore owns the feedback table. Ownership checks happen in the
// handlers; the store only enforces referential integrity.
type FeedbackStore struct {
	db *sql.DB
}

func NewFeedbackStore(db *sql.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

// Create inserts a feedback post owned by username and returns it with the
// database-assigned id. Returns ErrOwnerNotFound when the owner does not
// reference an existing user.
func (s *FeedbackStore) Create(title, content, username string) (*models.Feedback, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO feedback (title, content, username)
		VALUES ($1, $2, $3)
		RETURNING id
	`, title, content, username).Scan(&id)

	if err != nil {
		// The foreign key violation message differs per driver; confirm the
		// cause with a direct lookup before blaming the owner.
		var exists bool
		checkErr := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
		if checkErr == nil && !exists {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to insert feedback: %w", err)
	}

	return &models.Feedback{
		ID:       id,
		Title:    title,
		Content:  content,
		Username: username,
	}, nil
}

// GetByID returns the feedback post, or ErrNotFound.
func (s *FeedbackStore) GetByID(id int64) (*models.Feedback, error) {
	var fb models.Feedback
	err := s.db.QueryRow(`
		SELECT id, title, content, username
		FROM feedback
		WHERE id = $1
	`, id).Scan(&fb.ID, &fb.Title, &fb.Content, &fb.Username)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	return &fb, nil
}

// ListByOwner returns all feedback posts owned by username, oldest first.
func (s *FeedbackStore) ListByOwner(username string) ([]models.Feedback, error) {
	rows, err := s.db.Query(`
		SELECT id, title, content, username
		FROM feedback
		WHERE username = $1
		ORDER BY id
	`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback list: %w", err)
	}
	defer rows.Close()

	posts := []models.Feedback{}
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.ID, &fb.Title, &fb.Content, &fb.Username); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		posts = append(posts, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback list: %w", err)
	}
	return posts, nil
}

// Update replaces the title and content of an existing post. Returns
// ErrNotFound when the id does not exist.
func (s *FeedbackStore) Update(id int64, title, content string) error {
	res, err := s.db.Exec(`
		UPDATE feedback SET title = $1, content = $2 WHERE id = $3
	`, title, content, id)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post. Returns ErrNotFound when the id does not exist.
func (s *FeedbackStore) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
