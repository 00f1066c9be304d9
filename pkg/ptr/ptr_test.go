package ptr

import "testing"

func TestPointerAndValueRoundTrip(t *testing.T) {
	p := Pointer(7)
	if Value(p) != 7 {
		t.Fatalf("Value(Pointer(7)) = %d, want 7", Value(p))
	}
}

func TestValueOfNilReturnsZero(t *testing.T) {
	var p *int
	if Value(p) != 0 {
		t.Fatalf("Value(nil) = %d, want 0", Value(p))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := Pointer(3)
	c := Clone(p)
	*c = 9
	if *p != 3 {
		t.Fatal("Clone() must not alias the original pointer")
	}
}

func TestCloneOfNilIsNil(t *testing.T) {
	var p *int
	if Clone(p) != nil {
		t.Fatal("Clone(nil) should return nil")
	}
}
