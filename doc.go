// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsonvet checks whether input text is syntactically valid JSON per
// RFC 8259, without constructing any document value.
//
// # Validation
//
// Call Validate with a reader, or ValidateFile with a path:
//
//	if err := jsonvet.ValidateFile("config.json"); err != nil {
//	   log.Fatalf("Invalid: %v", err)
//	}
//
// On success the result is nil. On failure the result is a *ValidationError
// carrying the kind of the first defect found in document order, a short
// human-readable message, and the 1-indexed line and column of the offending
// character. Validation is fail-fast: nothing after the first defect is
// examined.
//
// # Error kinds
//
// Each Kind has a stable integer value, suitable for use as a process exit
// status. The taxonomy is closed: values are appended, never renumbered, so
// external tooling can depend on them:
//
//	err := jsonvet.ValidateFile(path)
//	var verr *jsonvet.ValidationError
//	if errors.As(err, &verr) {
//	   os.Exit(int(verr.Kind))
//	}
//
// # Limits
//
// The grammar is validated by recursive descent, one call frame per level of
// object/array nesting. The nesting depth permitted is bounded; use a
// Validator to choose a bound other than DefaultMaxDepth:
//
//	v := jsonvet.Validator{MaxDepth: 64}
//	err := v.Validate(input)
package jsonvet
