package jsonvet

// A LineCol describes the line number and column of a character in source
// text. Both values are 1-based; the zero value means no character was read.
// A tab occupies four columns, a carriage return resets the column to 1, and
// a line feed begins a new line at column 1.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column number, 1-based
}
