// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonvet

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// DefaultMaxDepth is the object/array nesting bound applied when a Validator
// does not set one.
const DefaultMaxDepth = 10000

// A Validator checks inputs for syntactic validity per RFC 8259. The zero
// value is ready for use. A Validator holds no state between runs; distinct
// runs share nothing and may proceed concurrently.
type Validator struct {
	// MaxDepth bounds the permitted object/array nesting. Inputs nested
	// more deeply fail with the TooDeep kind. If zero, DefaultMaxDepth is
	// used; a negative value panics.
	MaxDepth int
}

// Validate reads r to completion and reports whether its contents are a
// syntactically valid JSON document: exactly one object or array, surrounded
// only by whitespace. It returns nil on success; otherwise the first defect
// in document order as a *ValidationError. No document value is built.
func (v Validator) Validate(r io.Reader) error {
	max := v.MaxDepth
	if max < 0 {
		panic("jsonvet: negative MaxDepth")
	} else if max == 0 {
		max = DefaultMaxDepth
	}

	sc := newScanner(r)
	if err := sc.next(); err != nil {
		return err
	}
	p := &parser{sc: sc, maxDepth: max}
	if err := p.parseDocument(); err != nil {
		return err
	}
	return nil
}

// ValidateFile opens the file at path and validates its contents. The file
// is closed on every exit path. An open failure is reported as a
// *ValidationError with a file-level kind and no position.
func (v Validator) ValidateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		kind := FileRead
		if errors.Is(err, fs.ErrNotExist) {
			kind = FileNotFound
		}
		return &ValidationError{Kind: kind, Msg: err.Error()}
	}
	defer f.Close()
	return v.Validate(f)
}

// Validate reads r with a default Validator. See Validator.Validate.
func Validate(r io.Reader) error { return Validator{}.Validate(r) }

// ValidateFile validates the file at path with a default Validator.
// See Validator.ValidateFile.
func ValidateFile(path string) error { return Validator{}.ValidateFile(path) }
