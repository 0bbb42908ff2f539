// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonvet

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// eof is the end-of-input sentinel. It fails every character-class test and
// every equality check against a real input character.
const eof rune = -1

// A scanner reads one character of lookahead from an input stream and keeps
// the line and column of that character. The column is incremented once per
// fetch, before the character is inspected, so an error constructed by a
// grammar rule always carries the offending character's own position.
type scanner struct {
	r   *bufio.Reader
	tok rune // current lookahead, or eof

	pos LineCol
}

func newScanner(r io.Reader) *scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	// Column starts at 0 so the first fetch brings it to 1.
	return &scanner{r: br, pos: LineCol{Line: 1, Column: 0}}
}

// next advances the lookahead by one character. At the end of the input it
// sets the eof sentinel and returns nil; a read or UTF-8 decoding failure is
// reported as a file-read error.
func (s *scanner) next() *ValidationError {
	s.pos.Column++
	ch, nb, err := s.r.ReadRune()
	if err == io.EOF {
		s.tok = eof
		return nil
	} else if err != nil {
		return s.errf(FileRead, "read failed: %v", err)
	} else if ch == utf8.RuneError && nb == 1 {
		return s.errf(FileRead, "invalid UTF-8 byte")
	}
	s.tok = ch
	return nil
}

// mustNext advances the lookahead like next, but running out of input is an
// error of the given kind. Call sites inside a construct use this to turn
// end-of-input into a construct-specific diagnostic.
func (s *scanner) mustNext(kind Kind, msg string) *ValidationError {
	if err := s.next(); err != nil {
		return err
	} else if s.tok == eof {
		return s.errf(kind, "%s", msg)
	}
	return nil
}

// skipSpace advances past insignificant whitespace, applying the position
// rule for each whitespace character it consumes: a tab adds three extra
// columns, a carriage return resets the column, and a line feed begins a new
// line. It stops on the first non-whitespace character or at end of input.
func (s *scanner) skipSpace() *ValidationError {
	for {
		switch s.tok {
		case ' ':
			if err := s.next(); err != nil {
				return err
			}
		case '\t':
			if err := s.next(); err != nil {
				return err
			}
			s.pos.Column += 3
		case '\r':
			if err := s.next(); err != nil {
				return err
			}
			s.pos.Column = 1
		case '\n':
			if err := s.next(); err != nil {
				return err
			}
			s.pos.Line++
			s.pos.Column = 1
		default:
			return nil
		}
	}
}

// errf is the single construction point for validation errors. The position
// recorded is the position of the current lookahead character.
func (s *scanner) errf(kind Kind, msg string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(msg, args...), LineCol: s.pos}
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
