// Package parser implements a recursive-descent parser from the MLTL
// textual formula grammar into ast.Node trees. It is the inverse of
// ast.Node.AsString up to canonical form.
package parser

import (
	"strconv"
	"strings"

	"github.com/zwang271/mltl-inference/ast"
)

// precedence tiers, low (loosest-binding) to high (tightest-binding),
// matching the grammar's §4.2.1 ordering.
const (
	precEquiv = iota + 1
	precImplies
	precOr
	precXor
	precAnd
	precUntilRelease
)

// Parse strips whitespace from s and parses it into an ast.Node. Errors
// are returned as *SyntaxError; Parse never panics on malformed input.
func Parse(s string) (ast.Node, error) {
	stripped := stripWhitespace(s)
	parens, err := buildParenMap(stripped)
	if err != nil {
		return nil, err
	}
	n, err := parseWindow(stripped, parens, 0, len(stripped))
	if err != nil {
		return nil, err
	}
	return n, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// buildParenMap performs the single-pass paren-balance scan: for every
// '(' position it records the index of the matching ')'.
func buildParenMap(s string) (map[int]int, error) {
	m := make(map[int]int)
	var stack []int
	for i, c := range s {
		switch c {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) == 0 {
				return nil, newSyntaxError(s, i, 1, "unbalanced parenthesis, expected '('")
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			m[open] = i
		}
	}
	if len(stack) > 0 {
		pos := stack[len(stack)-1]
		return nil, newSyntaxError(s, pos, 1, "unbalanced parenthesis, expected ')'")
	}
	return m, nil
}

// parseWindow parses the half-open window [pos, pos+length) of s.
func parseWindow(s string, parens map[int]int, pos, length int) (ast.Node, error) {
	if length <= 0 {
		return nil, newSyntaxError(s, pos, 1, "unexpected token")
	}
	if n, ok, err := parseSingleStmt(s, parens, pos, length); ok || err != nil {
		return n, err
	}
	return parseCompoundStmt(s, parens, pos, length)
}

func window(s string, pos, length int) string { return s[pos : pos+length] }

func parseSingleStmt(s string, parens map[int]int, pos, length int) (ast.Node, bool, error) {
	if length <= 0 {
		return nil, false, nil
	}
	w := window(s, pos, length)

	switch w {
	case "true", "tt", "t":
		return ast.NewConstant(true), true, nil
	case "false", "ff", "f":
		return ast.NewConstant(false), true, nil
	}

	if w[0] == 'p' && len(w) > 1 && allDigits(w[1:]) {
		id, err := strconv.Atoi(w[1:])
		if err != nil {
			return nil, false, nil
		}
		return ast.NewVariable(id), true, nil
	}

	if w[0] == '(' {
		if end, ok := parens[pos]; ok && end == pos+length-1 {
			inner, err := parseWindow(s, parens, pos+1, length-2)
			return inner, true, err
		}
		return nil, false, nil
	}

	// The operand of ~/!/F/G must itself be a single statement (grammar
	// tier 7/8): recurse via parseSingleStmt, not parseWindow, so a
	// trailing binary operator (e.g. "F[0,1](p0)&p1") is left for the
	// compound-statement recognizer at the outer level instead of being
	// greedily swallowed into the operand.
	if w[0] == '~' || w[0] == '!' {
		operand, ok, err := parseSingleStmt(s, parens, pos+1, length-1)
		if err != nil {
			return nil, true, err
		}
		if !ok {
			return nil, false, nil
		}
		return ast.NewNegation(operand), true, nil
	}

	if w[0] == 'F' || w[0] == 'G' {
		lb, ub, consumed, err := parseBounds(s, pos+1)
		if err != nil {
			return nil, true, err
		}
		operandPos := pos + 1 + consumed
		operandLen := length - 1 - consumed
		operand, ok, err := parseSingleStmt(s, parens, operandPos, operandLen)
		if err != nil {
			return nil, true, err
		}
		if !ok {
			return nil, false, nil
		}
		if w[0] == 'F' {
			return ast.NewFinally(operand, lb, ub), true, nil
		}
		return ast.NewGlobally(operand, lb, ub), true, nil
	}

	return nil, false, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// parseBounds parses a leading "[lb,ub]" starting at pos, returning the
// bounds and the number of characters consumed.
func parseBounds(s string, pos int) (lb, ub, consumed int, err error) {
	if pos >= len(s) || s[pos] != '[' {
		return 0, 0, 0, newSyntaxError(s, pos, 1, "missing temporal operator bounds subscript")
	}
	closeIdx := strings.IndexByte(s[pos:], ']')
	if closeIdx < 0 {
		return 0, 0, 0, newSyntaxError(s, pos, len(s)-pos, "illegal temporal operator bounds subscript")
	}
	closeIdx += pos
	inner := s[pos+1 : closeIdx]
	comma := strings.IndexByte(inner, ',')
	if comma < 0 {
		return 0, 0, 0, newSyntaxError(s, pos, closeIdx-pos+1, "illegal temporal operator bounds subscript")
	}
	lbStr, ubStr := inner[:comma], inner[comma+1:]
	lb, errLB := strconv.Atoi(lbStr)
	ub, errUB := strconv.Atoi(ubStr)
	if errLB != nil || errUB != nil || lb < 0 || ub < 0 {
		return 0, 0, 0, newSyntaxError(s, pos, closeIdx-pos+1, "illegal temporal operator bounds subscript")
	}
	if lb > ub {
		return 0, 0, 0, newSyntaxError(s, pos, closeIdx-pos+1, "illegal temporal operator bounds subscript: lb > ub")
	}
	return lb, ub, closeIdx - pos + 1, nil
}

func parseCompoundStmt(s string, parens map[int]int, pos, length int) (ast.Node, error) {
	opPos, opPrec, opLen, found := findLowestPrecBinaryOp(s, parens, pos, length)
	if !found {
		return nil, newSyntaxError(s, pos, length, "unexpected token")
	}

	leftLen := opPos - pos
	rightPos := opPos + opLen
	rightLen := pos + length - rightPos

	switch opPrec {
	case precUntilRelease:
		lb, ub, consumed, err := parseBounds(s, rightPos)
		if err != nil {
			return nil, err
		}
		left, err := parseWindow(s, parens, pos, leftLen)
		if err != nil {
			return nil, err
		}
		right, err := parseWindow(s, parens, rightPos+consumed, rightLen-consumed)
		if err != nil {
			return nil, err
		}
		if s[opPos] == 'U' {
			return ast.NewUntil(left, right, lb, ub), nil
		}
		return ast.NewRelease(left, right, lb, ub), nil
	default:
		left, err := parseWindow(s, parens, pos, leftLen)
		if err != nil {
			return nil, err
		}
		right, err := parseWindow(s, parens, rightPos, rightLen)
		if err != nil {
			return nil, err
		}
		switch opPrec {
		case precEquiv:
			return ast.NewEquiv(left, right), nil
		case precImplies:
			return ast.NewImplies(left, right), nil
		case precOr:
			return ast.NewOr(left, right), nil
		case precXor:
			return ast.NewXor(left, right), nil
		case precAnd:
			return ast.NewAnd(left, right), nil
		}
	}
	return nil, newSyntaxError(s, pos, length, "unexpected token")
}

// findLowestPrecBinaryOp scans the top level of [pos, pos+length) for
// binary operators, skipping parenthesized sub-expressions via the
// paren map. It returns the position, precedence tier, and textual
// length of the rightmost occurrence of the loosest-binding operator
// found — §4.2.1 is explicit that ties at the same precedence level
// resolve to the rightmost occurrence.
func findLowestPrecBinaryOp(s string, parens map[int]int, pos, length int) (opPos, opPrec, opLen int, found bool) {
	end := pos + length
	i := pos
	for i < end {
		c := s[i]
		if c == '(' {
			if m, ok := parens[i]; ok {
				i = m + 1
				continue
			}
		}
		var prec, tokLen int
		switch {
		case c == '<' && i+2 < end && s[i+1] == '-' && s[i+2] == '>':
			prec, tokLen = precEquiv, 3
		case c == '=':
			prec, tokLen = precEquiv, 1
		case c == '-' && i+1 < end && s[i+1] == '>':
			prec, tokLen = precImplies, 2
		case c == '|':
			prec, tokLen = precOr, 1
		case c == '^':
			prec, tokLen = precXor, 1
		case c == '&':
			prec, tokLen = precAnd, 1
		case (c == 'U' || c == 'R') && i > pos:
			prec, tokLen = precUntilRelease, 1
		default:
			i++
			continue
		}
		// Rightmost occurrence of the loosest-binding (lowest prec
		// number) operator wins on ties.
		if !found || prec <= opPrec {
			opPos, opPrec, opLen, found = i, prec, tokLen, true
		}
		i += tokLen
	}
	return opPos, opPrec, opLen, found
}
