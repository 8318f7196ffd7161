// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/cliparse"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/forms"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/session"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/store"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/templates"
)

type FeedbackHandler struct {
	feedback *store.FeedbackStore
	sessions *session.Manager
}

func NewFeedbackHandler(db *sql.DB, cfg cliparse.Config) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: store.NewFeedbackStore(db),
		sessions: session.NewManager(cfg.SessionSecret),
	}
}

type feedbackAddPage struct {
	Username string
	Values   forms.FeedbackFields
	Errors   []forms.FieldError
}

type feedbackEditPage struct {
	ID       int64
	Username string
	Values   forms.FeedbackFields
	Errors   []forms.FieldError
}

// AddForm handles GET /users/{username}/feedback/add
func (h *FeedbackHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	identity, authed := h.sessions.Current(r)
	if !session.Authorize(identity, authed, username) {
		templates.Error(w, http.StatusUnauthorized)
		return
	}

	templates.Render(w, http.StatusOK, "feedback_add.html", feedbackAddPage{Username: username})
}

// Add handles POST /users/{username}/feedback/add
func (h *FeedbackHandler) Add(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	identity, authed := h.sessions.Current(r)
	if !session.Authorize(identity, authed, username) {
		templates.Error(w, http.StatusUnauthorized)
		return
	}

	fields, errs := forms.ParseFeedbackForm(r)
	if len(errs) > 0 {
		templates.Render(w, http.StatusOK, "feedback_add.html", feedbackAddPage{
			Username: username,
			Values:   fields,
			Errors:   errs,
		})
		return
	}

	fb, err := h.feedback.Create(fields.Title, fields.Content, username)
	if err != nil {
		slog.Error("failed to create feedback", "username", username, "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	slog.Info("feedback created", "id", fb.ID, "username", username)
	http.Redirect(w, r, "/users/"+username, http.StatusFound)
}

// EditForm handles GET /feedback/{id}/update
// The form comes back pre-filled with the current title and content.
func (h *FeedbackHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(w, r)
	if !ok {
		return
	}

	fb, err := h.feedback.GetByID(id)
	if err != nil {
		slog.Error("failed to load feedback", "id", id, "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	identity, authed := h.sessions.Current(r)
	if !session.Authorize(identity, authed, fb.Username) {
		templates.Error(w, http.StatusUnauthorized)
		return
	}

	templates.Render(w, http.StatusOK, "feedback_edit.html", feedbackEditPage{
		ID:       fb.ID,
		Username: fb.Username,
		Values:   forms.FeedbackFields{Title: fb.Title, Content: fb.Content},
	})
}

// Edit handles POST /feedback/{id}/update
func (h *FeedbackHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(w, r)
	if !ok {
		return
	}

	fb, err := h.feedback.GetByID(id)
	if err != nil {
		slog.Error("failed to load feedback", "id", id, "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	identity, authed := h.sessions.Current(r)
	if !session.Authorize(identity, authed, fb.Username) {
		templates.Error(w, http.StatusUnauthorized)
		return
	}

	fields, errs := forms.ParseFeedbackForm(r)
	if len(errs) > 0 {
		templates.Render(w, http.StatusOK, "feedback_edit.html", feedbackEditPage{
			ID:       fb.ID,
			Username: fb.Username,
			Values:   fields,
			Errors:   errs,
		})
		return
	}

	if err := h.feedback.Update(id, fields.Title, fields.Content); err != nil {
		slog.Error("failed to update feedback", "id", id, "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/users/"+fb.Username, http.StatusFound)
}

// Delete handles POST /feedback/{id}/delete
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := feedbackID(w, r)
	if !ok {
		return
	}

	fb, err := h.feedback.GetByID(id)
	if err != nil {
		slog.Error("failed to load feedback", "id", id, "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	identity, authed := h.sessions.Current(r)
	if !session.Authorize(identity, authed, fb.Username) {
		templates.Error(w, http.StatusUnauthorized)
		return
	}

	if err := h.feedback.Delete(id); err != nil {
		slog.Error("failed to delete feedback", "id", id, "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	slog.Info("feedback deleted", "id", id, "username", fb.Username)
	http.Redirect(w, r, "/users/"+fb.Username, http.StatusFound)
}

// feedbackID parses the {id} path segment. Writes a 400 and returns false
// when the segment is not an integer.
func feedbackID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		templates.Error(w, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
