// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "*.html"))

// Render writes the named page with the given status code. Template
// execution failures are logged; by then the status line is already out,
// so the client sees a truncated page rather than a second header.
func Render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// Error renders the generic error page. The body carries nothing beyond the
// status text, so 401 and 500 responses leak no detail.
func Error(w http.ResponseWriter, status int) {
	Render(w, status, "error.html", struct {
		Status     int
		StatusText string
	}{Status: status, StatusText: http.StatusText(status)})
}
