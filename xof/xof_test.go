package xof

import "testing"

func TestDeterministic(t *testing.T) {
	seed := []byte("test-seed")
	a := New(seed).Squeeze(32)
	b := New(seed).Squeeze(32)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different output at byte %d", i)
		}
	}
}

func TestLabelsDomainSeparate(t *testing.T) {
	seed := []byte("shared-seed")
	a := NewLabeled("perm", seed).Squeeze(16)
	b := NewLabeled("y", seed).Squeeze(16)
	equal := true
	for i := range a {
		if a[i] != b[i] {
			equal = false
			break
		}
	}
	if equal {
		t.Fatalf("different labels produced identical output")
	}
}

func TestReadUniformBelowInRange(t *testing.T) {
	s := New([]byte("range-seed"))
	for i := 0; i < 2000; i++ {
		v := s.ReadUniformBelow(37)
		if v < 0 || v >= 37 {
			t.Fatalf("value %d out of range [0,37)", v)
		}
	}
}

func TestReadUniformBelowOne(t *testing.T) {
	s := New([]byte("one"))
	if v := s.ReadUniformBelow(1); v != 0 {
		t.Fatalf("ReadUniformBelow(1) = %d, want 0", v)
	}
}

func TestReadPermutationIsBijection(t *testing.T) {
	s := New([]byte("perm-seed"))
	n := 97
	perm := s.ReadPermutation(n)
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			t.Fatalf("not a bijection: repeated or out-of-range value %d", v)
		}
		seen[v] = true
	}
}

func TestReadWeightVectorHasExactWeight(t *testing.T) {
	s := New([]byte("weight-seed"))
	n, w := 200, 40
	v := s.ReadWeightVector(n, w)
	if v.Weight() != w {
		t.Fatalf("weight = %d, want %d", v.Weight(), w)
	}
	if v.Len() != n {
		t.Fatalf("len = %d, want %d", v.Len(), n)
	}
}

func TestSumIsDeterministicAndOrderSensitive(t *testing.T) {
	a := Sum(16, []byte("coins"), []byte("payload"))
	b := Sum(16, []byte("coins"), []byte("payload"))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sum not deterministic at byte %d", i)
		}
	}
	c := Sum(16, []byte("payload"), []byte("coins"))
	equal := true
	for i := range a {
		if a[i] != c[i] {
			equal = false
			break
		}
	}
	if equal {
		t.Fatalf("Sum ignored part ordering")
	}
}

func TestReadWeightVectorZero(t *testing.T) {
	s := New([]byte("zero-weight"))
	v := s.ReadWeightVector(10, 0)
	if v.Weight() != 0 {
		t.Fatalf("expected zero weight, got %d", v.Weight())
	}
}
