// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonvet_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/creachadair/jsonvet"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

// A report is the observable outcome of a validation run: the error kind and
// the 1-indexed position of the offending character, or the zero report for
// success.
type report struct {
	Kind         jsonvet.Kind
	Line, Column int
}

func reportOf(t *testing.T, err error) report {
	t.Helper()
	if err == nil {
		return report{}
	}
	var verr *jsonvet.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Error has unexpected type %T: %v", err, err)
	}
	return report{Kind: verr.Kind, Line: verr.Line, Column: verr.Column}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		input string
		want  report
	}{
		// Valid documents.
		{`{}`, report{}},
		{`[]`, report{}},
		{`[ ]`, report{}},
		{`{ }`, report{}},
		{`[0]`, report{}},
		{`[-0]`, report{}},
		{`[0.1]`, report{}},
		{`[-0.5e-2]`, report{}},
		{`[1E+10]`, report{}},
		{`[12, 34.5, -6]`, report{}},
		{`[true, false, null]`, report{}},
		{`[""]`, report{}},
		{`["\""]`, report{}},
		{`["\\" , "\/"]`, report{}},
		{`["Aÿ"]`, report{}},
		{`["a\tb\nc"]`, report{}},
		{`[[], [[]], {}]`, report{}},
		{`{ "k" : "v" }`, report{}},
		{`{"a":[1,2.5,-3e+10,true,false,null,"s"],"b":{"c":{}}}`, report{}},
		{"\n\t {\"a\": 1}\r\n ", report{}},
		{"[1,\n2,\n3]", report{}},

		// An empty input has no document at all.
		{"", report{jsonvet.InvalidStart, 1, 1}},
		{"   \n ", report{jsonvet.InvalidStart, 2, 2}},

		// The document must begin with an object or array.
		{`"x"`, report{jsonvet.InvalidStart, 1, 1}},
		{`5`, report{jsonvet.InvalidStart, 1, 1}},
		{`true`, report{jsonvet.InvalidStart, 1, 1}},
		{`  null`, report{jsonvet.InvalidStart, 1, 3}},

		// Only whitespace may follow the document.
		{`{}x`, report{jsonvet.TrailingContent, 1, 3}},
		{`{}{}`, report{jsonvet.TrailingContent, 1, 3}},
		{"[] \n ]", report{jsonvet.TrailingContent, 2, 2}},

		// Unterminated containers.
		{`{`, report{jsonvet.ObjectEOF, 1, 2}},
		{`[`, report{jsonvet.ArrayEOF, 1, 2}},
		{`[1,`, report{jsonvet.ArrayEOF, 1, 4}},
		{`{"a":1,`, report{jsonvet.ObjectEOF, 1, 8}},

		// Arrays.
		{`[,]`, report{jsonvet.ValueChar, 1, 2}},
		{`[1,]`, report{jsonvet.ValueChar, 1, 4}},
		{`[1,2,]`, report{jsonvet.ValueChar, 1, 6}},
		{`[1 2]`, report{jsonvet.ArrayChar, 1, 4}},
		{`[1:2]`, report{jsonvet.ArrayChar, 1, 3}},

		// Objects.
		{`{,}`, report{jsonvet.ObjectKey, 1, 2}},
		{`{"a":1,}`, report{jsonvet.ObjectKey, 1, 8}},
		{`{a:1}`, report{jsonvet.ObjectKey, 1, 2}},
		{`{"a" 1}`, report{jsonvet.ObjectSeparator, 1, 6}},
		{`{"a"}`, report{jsonvet.ObjectSeparator, 1, 5}},
		{`{"a":1 "b":2}`, report{jsonvet.ObjectClose, 1, 8}},
		{`{"a":}`, report{jsonvet.ValueChar, 1, 6}},
		{`{"a":`, report{jsonvet.ObjectEOF, 1, 6}},

		// Strings.
		{`["abc`, report{jsonvet.StringEOF, 1, 6}},
		{`["ab\xcd"]`, report{jsonvet.StringEscape, 1, 6}},
		{`["\q"]`, report{jsonvet.StringEscape, 1, 4}},
		{`["\`, report{jsonvet.StringEscape, 1, 4}},
		{`["\u12G4"]`, report{jsonvet.StringHex, 1, 7}},
		{`["\u12`, report{jsonvet.StringHex, 1, 7}},
		{`["\u`, report{jsonvet.StringHex, 1, 5}},
		{"[\"a\tb\"]", report{jsonvet.StringChar, 1, 4}},
		{"[\"a\nb\"]", report{jsonvet.StringChar, 1, 4}},
		{"[\"a\x01b\"]", report{jsonvet.StringChar, 1, 4}},

		// Numbers.
		{`[01]`, report{jsonvet.NumberLeadingZero, 1, 3}},
		{`{"k":01}`, report{jsonvet.NumberLeadingZero, 1, 7}},
		{`[-]`, report{jsonvet.NumberDigit, 1, 3}},
		{`[-`, report{jsonvet.NumberEOF, 1, 3}},
		{`[1.]`, report{jsonvet.NumberDigit, 1, 4}},
		{`[1.`, report{jsonvet.NumberEOF, 1, 4}},
		{`[1e]`, report{jsonvet.NumberExponent, 1, 4}},
		{`[1e+]`, report{jsonvet.NumberExponent, 1, 5}},
		{`[1e`, report{jsonvet.NumberExponent, 1, 4}},

		// Constants.
		{`[tru]`, report{jsonvet.ValueChar, 1, 5}},
		{`[nul]`, report{jsonvet.ValueChar, 1, 5}},
		{`[falsy]`, report{jsonvet.ValueChar, 1, 6}},
		{`[tru`, report{jsonvet.ValueEOF, 1, 5}},
		{`[true`, report{jsonvet.ValueEOF, 1, 6}},

		// Whitespace position accounting: a tab occupies four columns, a
		// carriage return resets the column, a line feed begins a new line.
		{"[\tx]", report{jsonvet.ValueChar, 1, 6}},
		{"[\rx]", report{jsonvet.ValueChar, 1, 1}},
		{"[\nx]", report{jsonvet.ValueChar, 2, 1}},
		{"{\n  \"a\":1,\n}", report{jsonvet.ObjectKey, 3, 1}},
		{"[1,\n  ,2]", report{jsonvet.ValueChar, 2, 3}},
	}

	for _, test := range tests {
		got := reportOf(t, jsonvet.Validate(strings.NewReader(test.input)))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nReport: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestValidate_invalidUTF8(t *testing.T) {
	err := jsonvet.Validate(bytes.NewReader([]byte{'[', 0xff, ']'}))
	want := report{jsonvet.FileRead, 1, 2}
	if diff := cmp.Diff(want, reportOf(t, err)); diff != "" {
		t.Errorf("Report: (-want, +got)\n%s", diff)
	}
}

func TestValidate_idempotent(t *testing.T) {
	const input = `{"a": [1, 2, }`

	var v jsonvet.Validator
	first := reportOf(t, v.Validate(strings.NewReader(input)))
	second := reportOf(t, v.Validate(strings.NewReader(input)))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Second run differs: (-first, +second)\n%s", diff)
	}
}

// Distinct runs of one Validator share nothing: concurrent validations of
// the same input must all reach the same verdict without coordination.
func TestValidate_concurrentRuns(t *testing.T) {
	const input = `{"a": [1, 2, }`

	var v jsonvet.Validator
	errs := make([]error, 8)

	var wg sync.WaitGroup
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = v.Validate(strings.NewReader(input))
		}()
	}
	wg.Wait()

	want := reportOf(t, v.Validate(strings.NewReader(input)))
	for i, err := range errs {
		if diff := cmp.Diff(want, reportOf(t, err)); diff != "" {
			t.Errorf("Run %d differs: (-want, +got)\n%s", i, diff)
		}
	}
}

func TestValidate_maxDepth(t *testing.T) {
	nest := func(n int) string {
		return strings.Repeat("[", n) + strings.Repeat("]", n)
	}

	v := jsonvet.Validator{MaxDepth: 3}
	if err := v.Validate(strings.NewReader(nest(3))); err != nil {
		t.Errorf("Validate at limit failed: %v", err)
	}

	got := reportOf(t, v.Validate(strings.NewReader(nest(4))))
	want := report{jsonvet.TooDeep, 1, 4} // the fourth open bracket
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report: (-want, +got)\n%s", diff)
	}

	// Mixed nesting counts objects too.
	got = reportOf(t, jsonvet.Validator{MaxDepth: 2}.Validate(strings.NewReader(`[{"a":[0]}]`)))
	want = report{jsonvet.TooDeep, 1, 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report: (-want, +got)\n%s", diff)
	}

	// The default bound applies when none is set.
	if err := jsonvet.Validate(strings.NewReader(nest(jsonvet.DefaultMaxDepth + 1))); err == nil {
		t.Error("Validate did not report over-deep nesting")
	}

	mtest.MustPanic(t, func() {
		jsonvet.Validator{MaxDepth: -1}.Validate(strings.NewReader("{}"))
	})
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("Writing %s: %v", name, err)
		}
		return path
	}

	t.Run("Valid", func(t *testing.T) {
		path := writeFile("valid.json", `{"ok": [true, null]}`)
		if err := jsonvet.ValidateFile(path); err != nil {
			t.Errorf("ValidateFile failed: %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		path := writeFile("invalid.json", "{\n  \"a\": 01\n}")
		got := reportOf(t, jsonvet.ValidateFile(path))
		want := report{jsonvet.NumberLeadingZero, 2, 9}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Report: (-want, +got)\n%s", diff)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := jsonvet.ValidateFile(filepath.Join(dir, "nonesuch.json"))
		got := reportOf(t, err)
		want := report{Kind: jsonvet.FileNotFound} // no position: nothing was read
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Report: (-want, +got)\n%s", diff)
		}
		if msg := err.Error(); strings.Contains(msg, "at line") {
			t.Errorf("Error %q should not report a position", msg)
		}
	})

	t.Run("Directory", func(t *testing.T) {
		got := reportOf(t, jsonvet.ValidateFile(dir))
		if got.Kind != jsonvet.FileRead {
			t.Errorf("Got kind %v, want %v", got.Kind, jsonvet.FileRead)
		}
	})
}
