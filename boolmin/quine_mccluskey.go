// Package boolmin implements Quine-McCluskey Boolean function minimization:
// a set of satisfying-assignment bit strings reduces to a minimized DNF
// ast.Node via iterated pairwise combination into don't-care terms.
package boolmin

import (
	"sort"
	"strings"

	"github.com/zwang271/mltl-inference/ast"
)

// QuineMcCluskey reduces a set of equal-length minterms (each a string
// over {'0','1'}) into a minimized DNF AST. Empty input yields
// Constant(false); input covering every row of the truth table yields
// Constant(true).
func QuineMcCluskey(minterms []string) ast.Node {
	if len(minterms) == 0 {
		return ast.NewConstant(false)
	}
	width := len(minterms[0])
	deduped := dedupStrings(minterms)
	if len(deduped) == (1 << uint(width)) {
		return ast.NewConstant(true)
	}

	primeImplicants := reduceToFixedPoint(deduped)
	return clausesToDNF(primeImplicants, width)
}

func dedupStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// reduceToFixedPoint iteratively combines terms differing in exactly one
// bit position into a don't-care term, replacing that position with '-'.
// Terms that never combine in a pass are carried forward as prime
// implicants. The loop reaches a fixed point when no pair combines.
func reduceToFixedPoint(minterms []string) []string {
	current := minterms
	var primeImplicants []string

	for len(current) > 0 {
		used := make(map[string]bool, len(current))
		combinedSet := make(map[string]struct{})

		for i := 0; i < len(current); i++ {
			for j := i + 1; j < len(current); j++ {
				if combined, ok := combineOneBit(current[i], current[j]); ok {
					used[current[i]] = true
					used[current[j]] = true
					combinedSet[combined] = struct{}{}
				}
			}
		}

		for _, t := range current {
			if !used[t] {
				primeImplicants = append(primeImplicants, t)
			}
		}

		if len(combinedSet) == 0 {
			break
		}
		next := make([]string, 0, len(combinedSet))
		for t := range combinedSet {
			next = append(next, t)
		}
		sort.Strings(next)
		current = next
	}
	return dedupStrings(primeImplicants)
}

// combineOneBit combines a and b into a don't-care term if they differ in
// exactly one position (the grey-code adjacency test) and agree on every
// other position, including existing don't-cares.
func combineOneBit(a, b string) (string, bool) {
	if len(a) != len(b) {
		return "", false
	}
	diffPos := -1
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			if diffPos != -1 {
				return "", false
			}
			diffPos = i
		}
	}
	if diffPos == -1 {
		return "", false
	}
	var b2 strings.Builder
	b2.Grow(len(a))
	b2.WriteString(a[:diffPos])
	b2.WriteByte('-')
	b2.WriteString(a[diffPos+1:])
	return b2.String(), true
}

// clausesToDNF converts residual terms into an Or-chain of And-chains of
// literals. A '-' position contributes no literal; a fully '-' term
// becomes Constant(true).
func clausesToDNF(terms []string, width int) ast.Node {
	var clauses []ast.Node
	for _, term := range terms {
		clauses = append(clauses, clauseToAST(term, width))
	}
	if len(clauses) == 0 {
		return ast.NewConstant(false)
	}
	result := clauses[0]
	for _, c := range clauses[1:] {
		result = ast.NewOr(result, c)
	}
	return result
}

func clauseToAST(term string, width int) ast.Node {
	var literals []ast.Node
	for i := 0; i < width; i++ {
		switch term[i] {
		case '1':
			literals = append(literals, ast.NewVariable(i))
		case '0':
			literals = append(literals, ast.NewNegation(ast.NewVariable(i)))
		}
	}
	if len(literals) == 0 {
		return ast.NewConstant(true)
	}
	result := literals[0]
	for _, l := range literals[1:] {
		result = ast.NewAnd(result, l)
	}
	return result
}
