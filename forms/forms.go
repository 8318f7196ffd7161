// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package forms

import (
	"net/http"
	"strings"
)

// FieldError is a user-correctable validation failure on one form field.
type FieldError struct {
	Field   string
	Message string
}

type RegisterFields struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

type LoginFields struct {
	Username string
	Password string
}

type FeedbackFields struct {
	Title   string
	Content string
}

// ParseRegisterForm reads and validates the registration form. The returned
// fields are always populated (for re-rendering), even when invalid.
func ParseRegisterForm(r *http.Request) (RegisterFields, []FieldError) {
	if err := r.ParseForm(); err != nil {
		return RegisterFields{}, []FieldError{{Field: "form", Message: "Invalid form submission"}}
	}

	fields := RegisterFields{
		Username:  strings.TrimSpace(r.PostFormValue("username")),
		Password:  r.PostFormValue("password"),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
	}

	var errs []FieldError
	errs = appendRequired(errs, "username", fields.Username)
	errs = appendMaxLen(errs, "username", fields.Username, 20)
	errs = appendRequired(errs, "password", fields.Password)
	errs = appendRequired(errs, "email", fields.Email)
	errs = appendMaxLen(errs, "email", fields.Email, 50)
	errs = appendRequired(errs, "first_name", fields.FirstName)
	errs = appendMaxLen(errs, "first_name", fields.FirstName, 30)
	errs = appendRequired(errs, "last_name", fields.LastName)
	errs = appendMaxLen(errs, "last_name", fields.LastName, 30)

	return fields, errs
}

// ParseLoginForm reads and validates the login form.
func ParseLoginForm(r *http.Request) (LoginFields, []FieldError) {
	if err := r.ParseForm(); err != nil {
		return LoginFields{}, []FieldError{{Field: "form", Message: "Invalid form submission"}}
	}

	fields := LoginFields{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	var errs []FieldError
	errs = appendRequired(errs, "username", fields.Username)
	errs = appendRequired(errs, "password", fields.Password)

	return fields, errs
}

// ParseFeedbackForm reads and validates the add/edit feedback form.
func ParseFeedbackForm(r *http.Request) (FeedbackFields, []FieldError) {
	if err := r.ParseForm(); err != nil {
		return FeedbackFields{}, []FieldError{{Field: "form", Message: "Invalid form submission"}}
	}

	fields := FeedbackFields{
		Title:   strings.TrimSpace(r.PostFormValue("title")),
		Content: strings.TrimSpace(r.PostFormValue("content")),
	}

	var errs []FieldError
	errs = appendRequired(errs, "title", fields.Title)
	errs = appendMaxLen(errs, "title", fields.Title, 100)
	errs = appendRequired(errs, "content", fields.Content)

	return fields, errs
}

func appendRequired(errs []FieldError, field, value string) []FieldError {
	if value == "" {
		return append(errs, FieldError{Field: field, Message: "This field is required"})
	}
	return errs
}

func appendMaxLen(errs []FieldError, field, value string, max int) []FieldError {
	if len(value) > max {
		return append(errs, FieldError{Field: field, Message: "Too long"})
	}
	return errs
}
