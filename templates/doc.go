// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package templates renders the embedded HTML pages. Render writes a named
// page with a status code; Error writes the generic error page whose body
// carries nothing beyond the status text.
package templates
