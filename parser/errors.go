package parser

import "strings"

// SyntaxError is a recoverable parse failure. It carries the source
// string, the offending position, and the length of the offending span
// so callers can render a caret/tilde diagnostic.
type SyntaxError struct {
	Source string
	Pos    int
	Len    int
	Msg    string
}

func newSyntaxError(source string, pos, length int, msg string) *SyntaxError {
	if length < 1 {
		length = 1
	}
	return &SyntaxError{Source: source, Pos: pos, Len: length, Msg: msg}
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString(e.Msg)
	b.WriteString("\n")
	b.WriteString(e.Source)
	b.WriteString("\n")
	for i := 0; i < e.Pos; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	for i := 1; i < e.Len; i++ {
		b.WriteByte('~')
	}
	return b.String()
}
