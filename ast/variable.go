package ast

import (
	"strconv"

	"github.com/zwang271/mltl-inference/trace"
)

// Variable is a propositional variable pN referencing bit id of a trace
// state.
type Variable struct {
	ID int
}

// NewVariable builds a Variable node. ID bounds are not enforced here;
// an out-of-range id simply evaluates to false (§4.1.1).
func NewVariable(id int) *Variable { return &Variable{ID: id} }

func (v *Variable) Kind() Kind { return KindVariable }

func (v *Variable) AsString() string { return "p" + strconv.Itoa(v.ID) }

func (v *Variable) AsPrettyString() string { return v.AsString() }

func (v *Variable) EvaluateSubt(t *trace.Trace, begin, end int) bool {
	if end-begin <= 0 {
		return false
	}
	return t.Bit(begin, v.ID)
}

func (v *Variable) Evaluate(t *trace.Trace) bool { return evaluate(v, t) }

func (v *Variable) FutureReach() int { return 1 }

func (v *Variable) Size() int { return 1 }

func (v *Variable) Depth() int { return 0 }

func (v *Variable) Count(k Kind) int {
	if k == KindVariable {
		return 1
	}
	return 0
}

func (v *Variable) DeepCopy() Node { return &Variable{ID: v.ID} }

func (v *Variable) Equal(other Node) bool {
	o, ok := other.(*Variable)
	return ok && o.ID == v.ID
}

func (v *Variable) Less(other Node) bool {
	if v.Kind() != other.Kind() {
		return v.Kind() < other.Kind()
	}
	return v.ID < other.(*Variable).ID
}

func (v *Variable) LessOrEqual(other Node) bool { return lessOrEqual(v, other) }
