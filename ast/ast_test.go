package ast

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/zwang271/mltl-inference/trace"
)

func traceFromStrings(states ...string) *trace.Trace {
	width := 0
	for _, s := range states {
		if len(s) > width {
			width = len(s)
		}
	}
	bits := make([]*bitset.BitSet, len(states))
	for i, s := range states {
		bs := bitset.New(uint(width))
		for j, c := range s {
			if c == '1' {
				bs.Set(uint(j))
			}
		}
		bits[i] = bs
	}
	return trace.New(bits, uint(width))
}

func TestGloballyShortTraceVacuouslyTrue(t *testing.T) {
	tr := traceFromStrings("1")
	g := NewGlobally(NewVariable(0), 2, 5)
	if !g.Evaluate(tr) {
		t.Fatal("Globally with |T| <= lb must be vacuously true")
	}
}

func TestFinallyShortTraceFalse(t *testing.T) {
	tr := traceFromStrings("1")
	f := NewFinally(NewVariable(0), 2, 5)
	if f.Evaluate(tr) {
		t.Fatal("Finally with |T| <= lb must be false")
	}
}

func TestGloballyExample(t *testing.T) {
	g := NewGlobally(NewVariable(1), 0, 3)
	if !g.Evaluate(traceFromStrings("01", "11", "01", "11")) {
		t.Fatal("G[0,3](p1) should hold")
	}
	if g.Evaluate(traceFromStrings("01", "10", "01", "11")) {
		t.Fatal("G[0,3](p1) should not hold")
	}
}

func TestFinallyExample(t *testing.T) {
	f := NewFinally(NewAnd(NewVariable(0), NewVariable(1)), 0, 3)
	if !f.Evaluate(traceFromStrings("00", "11", "00", "00")) {
		t.Fatal("F[0,3](p0&p1) should hold")
	}
	if f.Evaluate(traceFromStrings("00", "00", "10", "01")) {
		t.Fatal("F[0,3](p0&p1) should not hold")
	}
}

func TestUntilExample(t *testing.T) {
	u := NewUntil(NewVariable(0), NewVariable(1), 0, 3)
	if !u.Evaluate(traceFromStrings("10", "10", "11", "00")) {
		t.Fatal("Until[0,3](p0,p1) should hold")
	}
	if u.Evaluate(traceFromStrings("10", "00", "11", "00")) {
		t.Fatal("Until[0,3](p0,p1) should not hold: p0 fails before p1 first holds")
	}
}

func TestReleaseExample(t *testing.T) {
	r := NewRelease(NewConstant(false), NewVariable(0), 0, 3)
	if !r.Evaluate(traceFromStrings("1", "1", "1", "1")) {
		t.Fatal("Release[0,3](false,p0) should hold")
	}
	if r.Evaluate(traceFromStrings("1", "1", "0", "1")) {
		t.Fatal("Release[0,3](false,p0) should not hold")
	}
}

func TestReleaseWithConjunctionLeftOperand(t *testing.T) {
	// p2 holds at every index in [1,4] except the last, but the release
	// condition (p0&~p1) becomes true one step before that failure, so
	// the release obligation is satisfied.
	f := NewRelease(
		NewAnd(NewVariable(0), NewNegation(NewVariable(1))),
		NewVariable(2),
		1, 4,
	)
	if !f.Evaluate(traceFromStrings("000", "001", "001", "101", "000")) {
		t.Fatal("(p0&~p1)R[1,4](p2) should evaluate to true on this trace")
	}
}

func TestOutOfRangeVariableIsFalse(t *testing.T) {
	tr := traceFromStrings("1")
	v := NewVariable(5)
	if v.Evaluate(tr) {
		t.Fatal("variable id beyond trace width must evaluate to false")
	}
}

func TestSizeDepthInvariant(t *testing.T) {
	f := NewGlobally(NewAnd(NewVariable(0), NewVariable(1)), 0, 2)
	if f.Depth()+1 > f.Size() {
		t.Fatalf("depth+1 <= size must hold: depth=%d size=%d", f.Depth(), f.Size())
	}
	if f.Size() < 1 {
		t.Fatal("size must be >= 1")
	}
}

func TestDeepCopyIndependentButEqual(t *testing.T) {
	f := NewUntil(NewVariable(0), NewVariable(1), 0, 2)
	c := f.DeepCopy()
	if !f.Equal(c) {
		t.Fatal("DeepCopy must be structurally equal to the original")
	}
	bt := c.(*BinaryTemporal)
	bt.Left = NewConstant(true)
	if f.Equal(c) {
		t.Fatal("mutating the copy must not affect the original (no aliasing)")
	}
}

func TestDoubleNegationEquivalence(t *testing.T) {
	tr := traceFromStrings("10", "01", "11")
	v := NewVariable(0)
	nn := NewNegation(NewNegation(v))
	if v.Evaluate(tr) != nn.Evaluate(tr) {
		t.Fatal("~~phi must evaluate identically to phi")
	}
}

func TestStructuralOrderIsTotal(t *testing.T) {
	a := NewVariable(0)
	b := NewVariable(1)
	if !a.Less(b) || a.Less(a) || (a.Less(b) && b.Less(a)) {
		t.Fatal("structural order must be irreflexive and antisymmetric")
	}
	if !a.LessOrEqual(a) {
		t.Fatal("LessOrEqual must be reflexive")
	}
}

func TestFutureReachBinaryTemporalSaturatingSub(t *testing.T) {
	// future_reach(Variable) == 1, so L-1 is 0 for a bare variable and the
	// right operand's reach of 1 dominates.
	u := NewUntil(NewVariable(0), NewVariable(1), 0, 5)
	if got, want := u.FutureReach(), 5+maxInt(0, 1); got != want {
		t.Fatalf("FutureReach() = %d, want %d", got, want)
	}
}
