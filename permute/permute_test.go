package permute

import (
	"testing"

	"lsfs/bitvec"
	"lsfs/xof"
)

func TestSampleIsBijection(t *testing.T) {
	s := xof.New([]byte("permute-seed"))
	p := Sample(s, 50)
	seen := make([]bool, 50)
	for _, v := range p.Slice() {
		if v < 0 || v >= 50 || seen[v] {
			t.Fatalf("not a bijection")
		}
		seen[v] = true
	}
}

func TestApplyPreservesWeight(t *testing.T) {
	s := xof.New([]byte("seed"))
	p := Sample(s, 30)
	v := bitvec.New(30)
	for _, i := range []int{1, 4, 9, 20, 29} {
		v.Set(i, 1)
	}
	out := p.Apply(v)
	if out.Weight() != v.Weight() {
		t.Fatalf("weight changed: %d != %d", out.Weight(), v.Weight())
	}
}

func TestInverseUndoesApply(t *testing.T) {
	s := xof.New([]byte("inv-seed"))
	p := Sample(s, 40)
	v := bitvec.New(40)
	for _, i := range []int{0, 5, 13, 39} {
		v.Set(i, 1)
	}
	roundtrip := p.Inverse().Apply(p.Apply(v))
	if !bitvec.Equal(roundtrip, v) {
		t.Fatalf("Inverse().Apply(Apply(v)) != v")
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	s1 := xof.New([]byte("compose-a"))
	s2 := xof.New([]byte("compose-b"))
	p := Sample(s1, 25)
	q := Sample(s2, 25)
	v := bitvec.New(25)
	for _, i := range []int{2, 6, 11, 24} {
		v.Set(i, 1)
	}
	sequential := q.Apply(p.Apply(v))
	composed := p.Compose(q).Apply(v)
	if !bitvec.Equal(sequential, composed) {
		t.Fatalf("Compose does not match sequential application")
	}
}

func TestFromSliceRejectsNonBijection(t *testing.T) {
	if _, err := FromSlice([]int{0, 0, 2}); err == nil {
		t.Fatalf("expected error for repeated index")
	}
	if _, err := FromSlice([]int{0, 1, 5}); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}

func TestPackUnpackRoundtrip(t *testing.T) {
	s := xof.New([]byte("pack-seed"))
	p := Sample(s, 60)
	w := bitvec.NewWriter()
	p.Pack(w)
	r := bitvec.NewReader(w.Bytes())
	got, err := Unpack(r, 60)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range p.Slice() {
		if got.Slice()[i] != v {
			t.Fatalf("index %d: got %d, want %d", i, got.Slice()[i], v)
		}
	}
}

func TestFromSliceAcceptsIdentity(t *testing.T) {
	p, err := FromSlice([]int{0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
}
