package world

import "testing"

func TestRNGSequenceReproducible(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestRNGMatchesXorshift(t *testing.T) {
	r := NewRNG(1)
	want := xorshift64(1)
	if got := r.Next(); got != want {
		t.Errorf("Next() = %d, want %d", got, want)
	}
	if got := r.Next(); got != xorshift64(want) {
		t.Errorf("second Next() = %d, want %d", got, xorshift64(want))
	}
}

func TestRNGZeroSeedProgresses(t *testing.T) {
	r := NewRNG(0)
	if r.Next() == 0 {
		t.Error("zero seed produced a zero state")
	}
}

func TestRNGIntnRange(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(6); v < 0 || v >= 6 {
			t.Fatalf("Intn(6) = %d, out of range", v)
		}
		if v := r.Percent(); v < 0 || v >= 100 {
			t.Fatalf("Percent() = %d, out of range", v)
		}
	}
	if v := r.Intn(0); v != 0 {
		t.Errorf("Intn(0) = %d, want 0", v)
	}
}
