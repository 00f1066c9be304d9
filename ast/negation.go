package ast

import "github.com/zwang271/mltl-inference/trace"

// Negation is the unary propositional operator ~operand.
type Negation struct {
	Operand Node
}

// NewNegation builds a Negation node.
func NewNegation(operand Node) *Negation { return &Negation{Operand: operand} }

func (n *Negation) Kind() Kind { return KindNegation }

func (n *Negation) AsString() string { return "~(" + n.Operand.AsString() + ")" }

func (n *Negation) AsPrettyString() string { return "~" + n.Operand.AsPrettyString() }

func (n *Negation) EvaluateSubt(t *trace.Trace, begin, end int) bool {
	return !n.Operand.EvaluateSubt(t, begin, end)
}

func (n *Negation) Evaluate(t *trace.Trace) bool { return evaluate(n, t) }

func (n *Negation) FutureReach() int { return n.Operand.FutureReach() }

func (n *Negation) Size() int { return 1 + n.Operand.Size() }

func (n *Negation) Depth() int { return 1 + n.Operand.Depth() }

func (n *Negation) Count(k Kind) int {
	c := n.Operand.Count(k)
	if k == KindNegation {
		c++
	}
	return c
}

func (n *Negation) DeepCopy() Node { return &Negation{Operand: n.Operand.DeepCopy()} }

func (n *Negation) Equal(other Node) bool {
	o, ok := other.(*Negation)
	return ok && n.Operand.Equal(o.Operand)
}

func (n *Negation) Less(other Node) bool {
	if n.Kind() != other.Kind() {
		return n.Kind() < other.Kind()
	}
	return n.Operand.Less(other.(*Negation).Operand)
}

func (n *Negation) LessOrEqual(other Node) bool { return lessOrEqual(n, other) }
