package ast

import "github.com/zwang271/mltl-inference/trace"

// Node is the polymorphic interface every AST variant implements. See
// package doc for the canonical semantics each method must honor.
type Node interface {
	Kind() Kind

	// AsString renders the canonical, fully-parenthesized textual form.
	AsString() string
	// AsPrettyString is AsString with the outermost redundant parens
	// stripped.
	AsPrettyString() string

	// EvaluateSubt evaluates the formula over the half-open window
	// [begin, end) of t without allocating a sub-trace.
	EvaluateSubt(t *trace.Trace, begin, end int) bool
	// Evaluate is EvaluateSubt(t, 0, t.Len()).
	Evaluate(t *trace.Trace) bool

	// FutureReach is the minimum trace prefix length needed to decide
	// this formula (MLTL Definition 6, saturating-subtraction variant).
	FutureReach() int

	// Size is the total node count of the subtree rooted here.
	Size() int
	// Depth is the subtree height; leaves have depth 0.
	Depth() int
	// Count returns the number of nodes of kind k in this subtree.
	Count(k Kind) int

	// DeepCopy returns a structural clone owning its own operand trees.
	DeepCopy() Node

	// Equal, Less and LessOrEqual implement the structural total order
	// (§4.1.4): first by Kind in declaration order, then by payload.
	Equal(other Node) bool
	Less(other Node) bool
	LessOrEqual(other Node) bool
}

func evaluate(n Node, t *trace.Trace) bool {
	return n.EvaluateSubt(t, 0, t.Len())
}

func lessOrEqual(n, other Node) bool {
	return n.Equal(other) || n.Less(other)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// satSub is a - b saturating at 0, used by FutureReach per MLTL
// Definition 6.
func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
