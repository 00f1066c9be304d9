package ast

import (
	"strconv"

	"github.com/zwang271/mltl-inference/trace"
)

// UnaryTemporal is the shared representation for Finally and Globally,
// the two bounded unary temporal operators.
type UnaryTemporal struct {
	kind    Kind
	Operand Node
	LB, UB  int
}

// NewFinally builds F[lb,ub](operand). Panics if lb > ub: a malformed
// bound is a programming error for every caller in this module (the
// parser rejects it before ever reaching here).
func NewFinally(operand Node, lb, ub int) *UnaryTemporal {
	mustBounds(lb, ub)
	return &UnaryTemporal{kind: KindFinally, Operand: operand, LB: lb, UB: ub}
}

// NewGlobally builds G[lb,ub](operand).
func NewGlobally(operand Node, lb, ub int) *UnaryTemporal {
	mustBounds(lb, ub)
	return &UnaryTemporal{kind: KindGlobally, Operand: operand, LB: lb, UB: ub}
}

func mustBounds(lb, ub int) {
	if lb > ub {
		panic("ast: lb > ub")
	}
}

func unaryTemporalSymbol(k Kind) string {
	if k == KindFinally {
		return "F"
	}
	return "G"
}

func (u *UnaryTemporal) Kind() Kind { return u.kind }

func (u *UnaryTemporal) bounds() string {
	return "[" + strconv.Itoa(u.LB) + "," + strconv.Itoa(u.UB) + "]"
}

func (u *UnaryTemporal) AsString() string {
	return unaryTemporalSymbol(u.kind) + u.bounds() + "(" + u.Operand.AsString() + ")"
}

func (u *UnaryTemporal) AsPrettyString() string {
	return unaryTemporalSymbol(u.kind) + u.bounds() + "(" + u.Operand.AsPrettyString() + ")"
}

func (u *UnaryTemporal) EvaluateSubt(t *trace.Trace, begin, end int) bool {
	size := end - begin
	if size <= u.LB {
		return u.kind == KindGlobally
	}
	hi := minInt(begin+u.UB, end-1)
	for i := begin + u.LB; i <= hi; i++ {
		v := u.Operand.EvaluateSubt(t, i, end)
		if u.kind == KindFinally && v {
			return true
		}
		if u.kind == KindGlobally && !v {
			return false
		}
	}
	return u.kind == KindGlobally
}

func (u *UnaryTemporal) Evaluate(t *trace.Trace) bool { return evaluate(u, t) }

func (u *UnaryTemporal) FutureReach() int { return u.UB + u.Operand.FutureReach() }

func (u *UnaryTemporal) Size() int { return 1 + u.Operand.Size() }

func (u *UnaryTemporal) Depth() int { return 1 + u.Operand.Depth() }

func (u *UnaryTemporal) Count(k Kind) int {
	c := u.Operand.Count(k)
	if k == u.kind {
		c++
	}
	return c
}

func (u *UnaryTemporal) DeepCopy() Node {
	return &UnaryTemporal{kind: u.kind, Operand: u.Operand.DeepCopy(), LB: u.LB, UB: u.UB}
}

func (u *UnaryTemporal) Equal(other Node) bool {
	o, ok := other.(*UnaryTemporal)
	return ok && o.kind == u.kind && o.LB == u.LB && o.UB == u.UB && u.Operand.Equal(o.Operand)
}

func (u *UnaryTemporal) Less(other Node) bool {
	if u.Kind() != other.Kind() {
		return u.Kind() < other.Kind()
	}
	o := other.(*UnaryTemporal)
	if !u.Operand.Equal(o.Operand) {
		return u.Operand.Less(o.Operand)
	}
	if u.LB != o.LB {
		return u.LB < o.LB
	}
	return u.UB < o.UB
}

func (u *UnaryTemporal) LessOrEqual(other Node) bool { return lessOrEqual(u, other) }
