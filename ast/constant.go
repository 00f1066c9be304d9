package ast

import "github.com/zwang271/mltl-inference/trace"

// Constant is a literal true/false leaf.
type Constant struct {
	Value bool
}

// NewConstant builds a Constant node.
func NewConstant(v bool) *Constant { return &Constant{Value: v} }

func (c *Constant) Kind() Kind { return KindConstant }

func (c *Constant) AsString() string {
	if c.Value {
		return "true"
	}
	return "false"
}

func (c *Constant) AsPrettyString() string { return c.AsString() }

func (c *Constant) EvaluateSubt(t *trace.Trace, begin, end int) bool { return c.Value }

func (c *Constant) Evaluate(t *trace.Trace) bool { return evaluate(c, t) }

func (c *Constant) FutureReach() int { return 0 }

func (c *Constant) Size() int { return 1 }

func (c *Constant) Depth() int { return 0 }

func (c *Constant) Count(k Kind) int {
	if k == KindConstant {
		return 1
	}
	return 0
}

func (c *Constant) DeepCopy() Node { return &Constant{Value: c.Value} }

func (c *Constant) Equal(other Node) bool {
	o, ok := other.(*Constant)
	return ok && o.Value == c.Value
}

func (c *Constant) Less(other Node) bool {
	if c.Kind() != other.Kind() {
		return c.Kind() < other.Kind()
	}
	o := other.(*Constant)
	return !c.Value && o.Value
}

func (c *Constant) LessOrEqual(other Node) bool { return lessOrEqual(c, other) }
