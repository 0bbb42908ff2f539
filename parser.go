// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonvet

import "go4.org/mem"

// Keyword tails after the dispatch character has been consumed. A string
// value cannot begin with a bare letter, so each letter admits one keyword.
var (
	kwTrue  = mem.S("rue")
	kwFalse = mem.S("alse")
	kwNull  = mem.S("ull")
)

// A parser runs the mutually recursive productions of the JSON grammar over
// a scanner, driven by one character of lookahead. Each production consumes
// exactly the characters of its construct and leaves the lookahead on the
// first character past it; none consumes a terminator belonging to an
// enclosing construct. The first violation anywhere in the descent
// terminates the run.
type parser struct {
	sc       *scanner
	maxDepth int
	depth    int // current object/array nesting
}

// push records entry into an object or array. The recursion depth of the
// descent equals the nesting depth of the input, so the depth is bounded to
// keep hostile inputs from exhausting the call stack.
func (p *parser) push() *ValidationError {
	p.depth++
	if p.depth > p.maxDepth {
		return p.sc.errf(TooDeep, "nesting exceeds %d levels", p.maxDepth)
	}
	return nil
}

// parseDocument validates one complete top-level value, which must be an object
// or an array, followed only by whitespace and end of input.
// Precondition: the first character has been fetched.
func (p *parser) parseDocument() *ValidationError {
	if err := p.sc.skipSpace(); err != nil {
		return err
	}
	var err *ValidationError
	switch p.sc.tok {
	case '{':
		err = p.parseObject()
	case '[':
		err = p.parseArray()
	default:
		return p.sc.errf(InvalidStart, "document must begin with an object or array")
	}
	if err != nil {
		return err
	}
	if err := p.sc.skipSpace(); err != nil {
		return err
	}
	if p.sc.tok != eof {
		return p.sc.errf(TrailingContent, "invalid character after end of document")
	}
	return nil
}

// parseValue validates a single value of any type, with its surrounding
// whitespace.
func (p *parser) parseValue() *ValidationError {
	if err := p.sc.skipSpace(); err != nil {
		return err
	}
	var err *ValidationError
	switch {
	case p.sc.tok == '"':
		err = p.parseString()
	case p.sc.tok == '-' || isDigit(p.sc.tok):
		err = p.parseNumber()
	case p.sc.tok == '{':
		err = p.parseObject()
	case p.sc.tok == '[':
		err = p.parseArray()
	case p.sc.tok == 't':
		err = p.parseKeyword("true", kwTrue)
	case p.sc.tok == 'f':
		err = p.parseKeyword("false", kwFalse)
	case p.sc.tok == 'n':
		err = p.parseKeyword("null", kwNull)
	default:
		return p.sc.errf(ValueChar, "invalid character in value")
	}
	if err != nil {
		return err
	}
	return p.sc.skipSpace()
}

// parseString validates a quoted string. Precondition: the lookahead is the
// opening quote. Postcondition: the lookahead is one past the closing quote.
func (p *parser) parseString() *ValidationError {
	for {
		if err := p.sc.mustNext(StringEOF, "input ended in the middle of a string"); err != nil {
			return err
		}
		switch {
		case p.sc.tok == '\\':
			if err := p.parseEscape(); err != nil {
				return err
			}
		case p.sc.tok == '"':
			return p.sc.next() // move past the closing quote
		case p.sc.tok < ' ':
			// RFC 8259 §7: U+0000 through U+001F must be escaped.
			return p.sc.errf(StringChar, "unescaped control character in string")
		}
	}
}

// parseEscape validates one \-escape, whose backslash is the current lookahead.
func (p *parser) parseEscape() *ValidationError {
	if err := p.sc.mustNext(StringEscape, "input ended instead of escape character"); err != nil {
		return err
	}
	switch p.sc.tok {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return nil
	case 'u':
		return p.parseHex4()
	}
	return p.sc.errf(StringEscape, "invalid escape character in string")
}

// parseHex4 validates the exactly four hex digits required after \u.
func (p *parser) parseHex4() *ValidationError {
	for i := 0; i < 4; i++ {
		if err := p.sc.mustNext(StringHex, `input ended inside \u escape, need 4 hex digits`); err != nil {
			return err
		}
		if !isHexDigit(p.sc.tok) {
			return p.sc.errf(StringHex, `invalid hex digit after \u in string`)
		}
	}
	return nil
}

// digits consumes the lookahead and any further digits, stopping on the
// first non-digit. End of input is not an error here; the caller's grammar
// position decides what may legally follow.
func (p *parser) digits() *ValidationError {
	for {
		if err := p.sc.next(); err != nil {
			return err
		}
		if !isDigit(p.sc.tok) {
			return nil
		}
	}
}

// parseNumber validates a number. Precondition: the lookahead is "-" or a digit.
func (p *parser) parseNumber() *ValidationError {
	if p.sc.tok == '-' {
		if err := p.sc.mustNext(NumberEOF, "input ended in the middle of a number"); err != nil {
			return err
		}
	}

	// A leading zero must be the only integer digit: 0.1 is fine, 01 is not.
	if p.sc.tok == '0' {
		if err := p.sc.next(); err != nil {
			return err
		}
		if isDigit(p.sc.tok) {
			return p.sc.errf(NumberLeadingZero, "leading zero in number")
		}
	} else if isDigit(p.sc.tok) {
		if err := p.digits(); err != nil {
			return err
		}
	} else {
		return p.sc.errf(NumberDigit, `"-" followed by non-digit in number`)
	}

	if p.sc.tok == '.' {
		if err := p.sc.mustNext(NumberEOF, "input ended after decimal point"); err != nil {
			return err
		}
		if !isDigit(p.sc.tok) {
			return p.sc.errf(NumberDigit, "non-digit after decimal point")
		}
		if err := p.digits(); err != nil {
			return err
		}
	}

	if p.sc.tok == 'e' || p.sc.tok == 'E' {
		if err := p.sc.mustNext(NumberExponent, "input ended in exponent"); err != nil {
			return err
		}
		if p.sc.tok == '-' || p.sc.tok == '+' {
			if err := p.sc.mustNext(NumberExponent, "input ended in exponent"); err != nil {
				return err
			}
		}
		if !isDigit(p.sc.tok) {
			return p.sc.errf(NumberExponent, "missing exponent digits")
		}
		if err := p.digits(); err != nil {
			return err
		}
	}
	return nil
}

// parseKeyword validates the tail of the constant named name after its leading
// letter, comparing each expected character in turn, then advances one past
// the constant.
func (p *parser) parseKeyword(name string, rest mem.RO) *ValidationError {
	for i := 0; i < rest.Len(); i++ {
		if err := p.sc.mustNext(ValueEOF, "input ended in "+name+" value"); err != nil {
			return err
		}
		if p.sc.tok != rune(rest.At(i)) {
			return p.sc.errf(ValueChar, "invalid character in %s value", name)
		}
	}
	return p.sc.mustNext(ValueEOF, "input ended in "+name+" value")
}

// parseArray validates an array. Precondition: the lookahead is "[".
// Postcondition: the lookahead is one past the closing bracket.
func (p *parser) parseArray() *ValidationError {
	if err := p.push(); err != nil {
		return err
	}
	if err := p.sc.mustNext(ArrayEOF, "input ended in the middle of an array"); err != nil {
		return err
	}
	if err := p.sc.skipSpace(); err != nil {
		return err
	}
	if p.sc.tok == ']' {
		p.depth--
		return p.sc.next() // empty array
	}
	if err := p.parseElements(); err != nil {
		return err
	}
	if p.sc.tok == ']' {
		p.depth--
		return p.sc.next()
	}
	return p.sc.errf(ArrayChar, "invalid character in array")
}

// parseElements validates a non-empty comma-separated list of values. A comma
// requires another value to follow it.
func (p *parser) parseElements() *ValidationError {
	for {
		if err := p.parseValue(); err != nil {
			return err
		}
		if p.sc.tok != ',' {
			return nil
		}
		if err := p.sc.mustNext(ArrayEOF, "input ended after comma in array"); err != nil {
			return err
		}
	}
}

// parseObject validates an object. Precondition: the lookahead is "{".
// Postcondition: the lookahead is one past the closing brace.
func (p *parser) parseObject() *ValidationError {
	if err := p.push(); err != nil {
		return err
	}
	if err := p.sc.mustNext(ObjectEOF, "input ended in the middle of an object"); err != nil {
		return err
	}
	if err := p.sc.skipSpace(); err != nil {
		return err
	}
	if p.sc.tok == '}' {
		p.depth--
		return p.sc.next() // empty object
	}
	if err := p.parseMembers(); err != nil {
		return err
	}
	if p.sc.tok == '}' {
		p.depth--
		return p.sc.next()
	}
	return p.sc.errf(ObjectClose, "no closing brace in object")
}

// parseMembers validates a non-empty comma-separated list of "key": value
// members. A comma requires another member to follow it.
func (p *parser) parseMembers() *ValidationError {
	for {
		if p.sc.tok != '"' {
			return p.sc.errf(ObjectKey, "no quote to begin object key")
		}
		if err := p.parseString(); err != nil {
			return err
		}
		if err := p.sc.skipSpace(); err != nil {
			return err
		}
		if p.sc.tok != ':' {
			return p.sc.errf(ObjectSeparator, "need colon between key and value")
		}
		if err := p.sc.mustNext(ObjectEOF, "input ended in the middle of an object"); err != nil {
			return err
		}
		if err := p.parseValue(); err != nil {
			return err
		}
		if p.sc.tok != ',' {
			return nil
		}
		if err := p.sc.mustNext(ObjectEOF, "input ended after comma in object"); err != nil {
			return err
		}
		if err := p.sc.skipSpace(); err != nil {
			return err
		}
	}
}
