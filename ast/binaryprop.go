package ast

import "github.com/zwang271/mltl-inference/trace"

// BinaryProp is the shared representation for the five binary
// propositional operators (And, Xor, Or, Implies, Equiv). They differ
// only in symbol and truth table, so one struct backs all five rather
// than five near-identical types.
type BinaryProp struct {
	kind  Kind
	Left  Node
	Right Node
}

var binaryPropSymbol = map[Kind]string{
	KindAnd:     "&",
	KindXor:     "^",
	KindOr:      "|",
	KindImplies: "->",
	KindEquiv:   "<->",
}

func binaryPropEval(k Kind, l, r bool) bool {
	switch k {
	case KindAnd:
		return l && r
	case KindXor:
		return l != r
	case KindOr:
		return l || r
	case KindImplies:
		return !l || r
	case KindEquiv:
		return l == r
	default:
		panic("ast: unknown binary propositional kind")
	}
}

func NewAnd(l, r Node) *BinaryProp     { return &BinaryProp{kind: KindAnd, Left: l, Right: r} }
func NewXor(l, r Node) *BinaryProp     { return &BinaryProp{kind: KindXor, Left: l, Right: r} }
func NewOr(l, r Node) *BinaryProp      { return &BinaryProp{kind: KindOr, Left: l, Right: r} }
func NewImplies(l, r Node) *BinaryProp { return &BinaryProp{kind: KindImplies, Left: l, Right: r} }
func NewEquiv(l, r Node) *BinaryProp   { return &BinaryProp{kind: KindEquiv, Left: l, Right: r} }

func (b *BinaryProp) Kind() Kind { return b.kind }

func (b *BinaryProp) AsString() string {
	return "(" + b.Left.AsString() + ")" + binaryPropSymbol[b.kind] + "(" + b.Right.AsString() + ")"
}

func (b *BinaryProp) AsPrettyString() string {
	return b.Left.AsPrettyString() + binaryPropSymbol[b.kind] + b.Right.AsPrettyString()
}

func (b *BinaryProp) EvaluateSubt(t *trace.Trace, begin, end int) bool {
	// Short-circuit where the algebra permits it without changing the
	// observable result.
	l := b.Left.EvaluateSubt(t, begin, end)
	switch b.kind {
	case KindAnd:
		return l && b.Right.EvaluateSubt(t, begin, end)
	case KindOr:
		return l || b.Right.EvaluateSubt(t, begin, end)
	case KindImplies:
		return !l || b.Right.EvaluateSubt(t, begin, end)
	default:
		r := b.Right.EvaluateSubt(t, begin, end)
		return binaryPropEval(b.kind, l, r)
	}
}

func (b *BinaryProp) Evaluate(t *trace.Trace) bool { return evaluate(b, t) }

func (b *BinaryProp) FutureReach() int {
	return maxInt(b.Left.FutureReach(), b.Right.FutureReach())
}

func (b *BinaryProp) Size() int { return 1 + b.Left.Size() + b.Right.Size() }

func (b *BinaryProp) Depth() int { return 1 + maxInt(b.Left.Depth(), b.Right.Depth()) }

func (b *BinaryProp) Count(k Kind) int {
	c := b.Left.Count(k) + b.Right.Count(k)
	if k == b.kind {
		c++
	}
	return c
}

func (b *BinaryProp) DeepCopy() Node {
	return &BinaryProp{kind: b.kind, Left: b.Left.DeepCopy(), Right: b.Right.DeepCopy()}
}

func (b *BinaryProp) Equal(other Node) bool {
	o, ok := other.(*BinaryProp)
	return ok && o.kind == b.kind && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

func (b *BinaryProp) Less(other Node) bool {
	if b.Kind() != other.Kind() {
		return b.Kind() < other.Kind()
	}
	o := other.(*BinaryProp)
	if !b.Left.Equal(o.Left) {
		return b.Left.Less(o.Left)
	}
	return b.Right.Less(o.Right)
}

func (b *BinaryProp) LessOrEqual(other Node) bool { return lessOrEqual(b, other) }
