// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/cliparse"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/forms"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/models"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/session"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/store"
	"github.com/SharonBeth/USF-28.4.20-Authentication-Exercise/templates"
)

type UserHandler struct {
	users    *store.UserStore
	feedback *store.FeedbackStore
	sessions *session.Manager
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{
		users:    store.NewUserStore(db),
		feedback: store.NewFeedbackStore(db),
		sessions: session.NewManager(cfg.SessionSecret),
	}
}

type registerPage struct {
	Values forms.RegisterFields
	Errors []forms.FieldError
}

type loginPage struct {
	Values forms.LoginFields
	Errors []forms.FieldError
}

type profilePage struct {
	User     models.User
	Feedback []models.Feedback
}

// Home handles GET /
func (h *UserHandler) Home(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, http.StatusOK, "home.html", nil)
}

// RegisterForm handles GET /register
func (h *UserHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, http.StatusOK, "register.html", registerPage{})
}

// Register handles POST /register
// On success the new user is logged in and sent to their profile. A taken
// username comes back as a field error on the form, not an error page.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	fields, errs := forms.ParseRegisterForm(r)
	if len(errs) > 0 {
		templates.Render(w, http.StatusOK, "register.html", registerPage{Values: fields, Errors: errs})
		return
	}

	user, err := h.users.Register(fields.Username, fields.Password, fields.Email, fields.FirstName, fields.LastName)
	if errors.Is(err, store.ErrDuplicateUsername) {
		errs = append(errs, forms.FieldError{
			Field:   "username",
			Message: "Username taken. Please pick a different username",
		})
		templates.Render(w, http.StatusOK, "register.html", registerPage{Values: fields, Errors: errs})
		return
	}
	if err != nil {
		slog.Error("failed to register user", "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	slog.Info("user registered", "username", user.Username)
	h.sessions.Set(w, user.Username)
	http.Redirect(w, r, "/users/"+user.Username, http.StatusFound)
}

// LoginForm handles GET /login
// An already-authenticated caller is sent to their own profile.
func (h *UserHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if identity, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/users/"+identity, http.StatusFound)
		return
	}
	templates.Render(w, http.StatusOK, "login.html", loginPage{})
}

// Login handles POST /login
// A bad username and a bad password produce the same response, so the form
// cannot be used to enumerate accounts.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if identity, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/users/"+identity, http.StatusFound)
		return
	}

	fields, errs := forms.ParseLoginForm(r)
	if len(errs) > 0 {
		templates.Render(w, http.StatusOK, "login.html", loginPage{Values: fields, Errors: errs})
		return
	}

	user, ok, err := h.users.Authenticate(fields.Username, fields.Password)
	if err != nil {
		slog.Error("failed to authenticate user", "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}
	if !ok {
		errs = append(errs, forms.FieldError{Field: "username", Message: "Bad name/password"})
		templates.Render(w, http.StatusOK, "login.html", loginPage{Values: fields, Errors: errs})
		return
	}

	h.sessions.Set(w, user.Username)
	http.Redirect(w, r, "/users/"+user.Username, http.StatusFound)
}

// Logout handles GET /logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Show handles GET /users/{username}
// Profiles are private: only their owner may view them.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	identity, authed := h.sessions.Current(r)
	if !session.Authorize(identity, authed, username) {
		templates.Error(w, http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetByUsername(username)
	if err != nil {
		slog.Error("failed to load profile", "username", username, "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	posts, err := h.feedback.ListByOwner(username)
	if err != nil {
		slog.Error("failed to load feedback list", "username", username, "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	templates.Render(w, http.StatusOK, "profile.html", profilePage{User: *user, Feedback: posts})
}

// Delete handles POST /users/{username}/delete
// Removes the account and all its feedback, then clears the session.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	identity, authed := h.sessions.Current(r)
	if !session.Authorize(identity, authed, username) {
		templates.Error(w, http.StatusUnauthorized)
		return
	}

	if err := h.users.Delete(username); err != nil {
		slog.Error("failed to delete user", "username", username, "error", err)
		templates.Error(w, http.StatusInternalServerError)
		return
	}

	slog.Info("user deleted", "username", username)
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
