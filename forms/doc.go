// Copyright (c) 2026 Sharon Beth.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package forms parses and validates the site's HTML forms.

Each parser is pure: it reads the request body and returns the submitted
values plus a list of field errors, never mutating shared state:

	fields, errs := forms.ParseRegisterForm(r)
	if len(errs) > 0 {
		// re-render the form with fields and errs
	}

The values are returned even when invalid so the form can be re-rendered
with the user's input intact.
*/
package forms
