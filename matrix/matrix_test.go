package matrix

import (
	"testing"

	"lsfs/bitvec"
)

func TestDeriveIsDeterministic(t *testing.T) {
	seed := []byte("h-seed")
	a := Derive(seed, 12, 40)
	b := Derive(seed, 12, 40)
	for i := 0; i < 12; i++ {
		if !bitvec.Equal(a.Row(i), b.Row(i)) {
			t.Fatalf("row %d differs between two derivations of the same seed", i)
		}
	}
}

func TestDeriveDimensions(t *testing.T) {
	h := Derive([]byte("seed"), 7, 23)
	if h.Rows() != 7 {
		t.Fatalf("Rows() = %d, want 7", h.Rows())
	}
	if h.Cols() != 23 {
		t.Fatalf("Cols() = %d, want 23", h.Cols())
	}
	if h.Row(0).Len() != 23 {
		t.Fatalf("row length = %d, want 23", h.Row(0).Len())
	}
}

func TestSyndromeOfZeroVectorIsZero(t *testing.T) {
	h := Derive([]byte("seed"), 10, 30)
	zero := bitvec.New(30)
	s := h.Syndrome(zero)
	if s.Weight() != 0 {
		t.Fatalf("syndrome of zero vector has weight %d, want 0", s.Weight())
	}
}

func TestSyndromeIsLinear(t *testing.T) {
	h := Derive([]byte("seed"), 9, 26)
	a := bitvec.New(26)
	b := bitvec.New(26)
	for _, i := range []int{0, 3, 7, 20} {
		a.Set(i, 1)
	}
	for _, i := range []int{3, 9, 20, 25} {
		b.Set(i, 1)
	}
	sa := h.Syndrome(a)
	sb := h.Syndrome(b)
	sXor := h.Syndrome(bitvec.Xor(a, b))
	if !bitvec.Equal(sXor, bitvec.Xor(sa, sb)) {
		t.Fatalf("syndrome is not linear over GF(2)")
	}
}

func TestSyndromeDifferentSeedsDiffer(t *testing.T) {
	v := bitvec.New(20)
	v.Set(4, 1)
	v.Set(11, 1)
	h1 := Derive([]byte("seed-one"), 8, 20)
	h2 := Derive([]byte("seed-two"), 8, 20)
	if bitvec.Equal(h1.Syndrome(v), h2.Syndrome(v)) {
		t.Fatalf("two different H seeds produced identical syndromes (suspiciously)")
	}
}
