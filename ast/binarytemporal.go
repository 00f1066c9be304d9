package ast

import (
	"strconv"

	"github.com/zwang271/mltl-inference/trace"
)

// BinaryTemporal is the shared representation for Until and Release, the
// two bounded binary temporal operators.
type BinaryTemporal struct {
	kind   Kind
	Left   Node
	Right  Node
	LB, UB int
}

// NewUntil builds (L)U[lb,ub](R).
func NewUntil(l, r Node, lb, ub int) *BinaryTemporal {
	mustBounds(lb, ub)
	return &BinaryTemporal{kind: KindUntil, Left: l, Right: r, LB: lb, UB: ub}
}

// NewRelease builds (L)R[lb,ub](R).
func NewRelease(l, r Node, lb, ub int) *BinaryTemporal {
	mustBounds(lb, ub)
	return &BinaryTemporal{kind: KindRelease, Left: l, Right: r, LB: lb, UB: ub}
}

func binaryTemporalSymbol(k Kind) string {
	if k == KindUntil {
		return "U"
	}
	return "R"
}

func (b *BinaryTemporal) Kind() Kind { return b.kind }

func (b *BinaryTemporal) bounds() string {
	return "[" + strconv.Itoa(b.LB) + "," + strconv.Itoa(b.UB) + "]"
}

func (b *BinaryTemporal) AsString() string {
	return "(" + b.Left.AsString() + ")" + binaryTemporalSymbol(b.kind) + b.bounds() + "(" + b.Right.AsString() + ")"
}

func (b *BinaryTemporal) AsPrettyString() string {
	return b.Left.AsPrettyString() + binaryTemporalSymbol(b.kind) + b.bounds() + "(" + b.Right.AsPrettyString() + ")"
}

// EvaluateSubt implements §4.1.1's Until/Release semantics over the
// [begin, end) window.
//
// Until[a,b](L,R) holds iff R first becomes true at some index i in
// [a, min(b,|T|-1)], and L held at every index strictly before i.
func (b *BinaryTemporal) evaluateUntil(t *trace.Trace, begin, end int) bool {
	size := end - begin
	if size <= b.LB {
		return false
	}
	idxLB := begin + b.LB
	idxEnd := minInt(begin+b.UB+1, end)

	i := -1
	for k := idxLB; k < idxEnd; k++ {
		if b.Right.EvaluateSubt(t, k, end) {
			i = k
			break
		}
	}
	if i == -1 {
		return false
	}
	for j := idxLB; j < i; j++ {
		if !b.Left.EvaluateSubt(t, j, end) {
			return false
		}
	}
	return true
}

// Release[a,b](L,R) holds iff either R holds throughout [a, min(b,|T|-1)],
// or L first becomes true at some index j in that range and R held at
// every index from a through j inclusive.
func (b *BinaryTemporal) evaluateRelease(t *trace.Trace, begin, end int) bool {
	size := end - begin
	if size <= b.LB {
		return true
	}
	idxLB := begin + b.LB
	idxEnd := minInt(begin+b.UB+1, end)

	i := idxLB
	for ; i < idxEnd; i++ {
		if !b.Right.EvaluateSubt(t, i, end) {
			break
		}
	}
	if i == idxEnd {
		return true
	}

	j := -1
	var k int
	for k = idxLB; k < idxEnd; k++ {
		if b.Left.EvaluateSubt(t, k, end) {
			j = k + 1
			break
		}
	}
	if k == idxEnd {
		j = k + 1
	} else if j == -1 {
		return false
	}

	upTo := minInt(j, end)
	for k = idxLB; k < upTo; k++ {
		if !b.Right.EvaluateSubt(t, k, end) {
			return false
		}
	}
	return true
}

func (b *BinaryTemporal) EvaluateSubt(t *trace.Trace, begin, end int) bool {
	if b.kind == KindUntil {
		return b.evaluateUntil(t, begin, end)
	}
	return b.evaluateRelease(t, begin, end)
}

func (b *BinaryTemporal) Evaluate(t *trace.Trace) bool { return evaluate(b, t) }

// FutureReach implements MLTL Definition 6 with saturating subtraction
// (spec.md's resolution of the two conflicting source variants).
func (b *BinaryTemporal) FutureReach() int {
	return b.UB + maxInt(satSub(b.Left.FutureReach(), 1), b.Right.FutureReach())
}

func (b *BinaryTemporal) Size() int { return 1 + b.Left.Size() + b.Right.Size() }

func (b *BinaryTemporal) Depth() int { return 1 + maxInt(b.Left.Depth(), b.Right.Depth()) }

func (b *BinaryTemporal) Count(k Kind) int {
	c := b.Left.Count(k) + b.Right.Count(k)
	if k == b.kind {
		c++
	}
	return c
}

func (b *BinaryTemporal) DeepCopy() Node {
	return &BinaryTemporal{kind: b.kind, Left: b.Left.DeepCopy(), Right: b.Right.DeepCopy(), LB: b.LB, UB: b.UB}
}

func (b *BinaryTemporal) Equal(other Node) bool {
	o, ok := other.(*BinaryTemporal)
	return ok && o.kind == b.kind && o.LB == b.LB && o.UB == b.UB &&
		b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

func (b *BinaryTemporal) Less(other Node) bool {
	if b.Kind() != other.Kind() {
		return b.Kind() < other.Kind()
	}
	o := other.(*BinaryTemporal)
	if !b.Left.Equal(o.Left) {
		return b.Left.Less(o.Left)
	}
	if !b.Right.Equal(o.Right) {
		return b.Right.Less(o.Right)
	}
	if b.LB != o.LB {
		return b.LB < o.LB
	}
	return b.UB < o.UB
}

func (b *BinaryTemporal) LessOrEqual(other Node) bool { return lessOrEqual(b, other) }
