// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonvet

import "fmt"

// A Kind classifies a validation failure. The numeric value of each kind is
// stable and is used by callers as a process exit status; new kinds are
// appended at the end and existing values are never renumbered.
type Kind int

// Constants defining the valid Kind values.
const (
	OK          Kind = iota // no error
	InvalidJSON             // reserved: generic invalid input

	// File-level failures, reported before or while reading the input.
	FileNotFound // the named file does not exist
	FileRead     // the input could not be read or decoded as UTF-8
	FileType     // the named file is not a JSON file
	FileMissing  // no input file was named

	// String failures.
	StringHex    // \u not followed by 4 hex digits
	StringEscape // invalid or truncated escape sequence
	StringEOF    // input ended inside a string
	StringChar   // unescaped control character in a string

	// Number failures.
	NumberEOF         // input ended inside a number
	NumberDigit       // a required digit is missing
	NumberExponent    // malformed exponent
	NumberLeadingZero // redundant leading zero

	// Value failures.
	ValueEOF  // input ended inside a constant
	ValueChar // no value can begin with this character

	// Array failures.
	ArrayEOF  // input ended inside an array
	ArrayChar // invalid character inside an array

	// Object failures.
	ObjectEOF       // input ended inside an object
	ObjectKey       // object key does not begin with a quote
	ObjectSeparator // missing ":" between key and value
	ObjectValue     // reserved: kept so later values are stable
	ObjectClose     // missing "}" at the end of an object

	// Structural failures outside any value.
	InvalidStart    // document does not begin with "{" or "["
	TrailingContent // non-whitespace input after the document

	Unrecognized // catch-all for unanticipated internal failures
	TooDeep      // nesting exceeds the configured maximum depth

	// Do not reorder or remove constants; external tooling depends on the
	// numeric values as exit statuses.
)

var kindStr = [...]string{
	OK:                "ok",
	InvalidJSON:       "invalid-json",
	FileNotFound:      "file-not-found",
	FileRead:          "file-read-error",
	FileType:          "file-type-error",
	FileMissing:       "file-missing-error",
	StringHex:         "string-hex-error",
	StringEscape:      "string-escape-error",
	StringEOF:         "string-eof-error",
	StringChar:        "string-character-error",
	NumberEOF:         "number-eof-error",
	NumberDigit:       "number-digit-error",
	NumberExponent:    "number-exponent-error",
	NumberLeadingZero: "number-leading-zero-error",
	ValueEOF:          "value-eof-error",
	ValueChar:         "value-character-error",
	ArrayEOF:          "array-eof-error",
	ArrayChar:         "array-character-error",
	ObjectEOF:         "object-eof-error",
	ObjectKey:         "object-key-error",
	ObjectSeparator:   "object-separator-error",
	ObjectValue:       "object-value-error",
	ObjectClose:       "object-close-error",
	InvalidStart:      "invalid-start-error",
	TrailingContent:   "trailing-content-error",
	Unrecognized:      "unrecognized-error",
	TooDeep:           "nesting-depth-error",
}

func (k Kind) String() string {
	v := int(k)
	if v < 0 || v >= len(kindStr) {
		return kindStr[Unrecognized]
	}
	return kindStr[v]
}

// A ValidationError reports the first defect found while validating an
// input, with the kind of the defect and the position of the offending
// character. A ValidationError is immutable once constructed.
type ValidationError struct {
	Kind Kind   // the classification of the defect
	Msg  string // a human-readable description

	LineCol // the position of the offending character
}

func (e *ValidationError) Error() string {
	if e.Line == 0 && e.Column == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%v: %s at line %d, column %d", e.Kind, e.Msg, e.Line, e.Column)
}
