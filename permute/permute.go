// Package permute samples and applies the permutations Stern's protocol
// uses to hide a secret vector's support.
package permute

import (
	"fmt"

	"lsfs/bitvec"
	"lsfs/xof"
)

// Permutation is a bijection on {0,...,n-1}, stored as perm[i] = the
// source index feeding position i.
type Permutation struct {
	perm []int
}

// Sample draws a uniform Permutation of size n from s.
func Sample(s *xof.Stream, n int) Permutation {
	return Permutation{perm: s.ReadPermutation(n)}
}

// FromSlice wraps an existing bijection, validating it.
func FromSlice(p []int) (Permutation, error) {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return Permutation{}, fmt.Errorf("permute: not a bijection on [0,%d)", len(p))
		}
		seen[v] = true
	}
	return Permutation{perm: append([]int(nil), p...)}, nil
}

// Len returns n.
func (p Permutation) Len() int { return len(p.perm) }

// Slice returns the underlying index slice; callers must not mutate it.
func (p Permutation) Slice() []int { return p.perm }

// Apply returns out with out[i] = v[perm[i]] for every i.
func (p Permutation) Apply(v bitvec.Bitvec) bitvec.Bitvec {
	if v.Len() != p.Len() {
		panic("permute: length mismatch")
	}
	return v.Permute(p.perm)
}

// Inverse returns the permutation q such that q.Apply(p.Apply(v)) == v.
func (p Permutation) Inverse() Permutation {
	inv := make([]int, len(p.perm))
	for i, src := range p.perm {
		inv[src] = i
	}
	return Permutation{perm: inv}
}

// bitWidth returns ceil(log2(n)): the number of bits needed to tightly
// pack an index in [0,n).
func bitWidth(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}

// Pack writes the permutation as n tightly packed ceil(log2 n)-bit
// indices, in position order.
func (p Permutation) Pack(w *bitvec.Writer) {
	k := bitWidth(len(p.perm))
	for _, v := range p.perm {
		w.WriteBits(uint64(v), k)
	}
}

// Unpack reads back a Permutation of size n written by Pack, validating
// that the result is a bijection.
func Unpack(r *bitvec.Reader, n int) (Permutation, error) {
	k := bitWidth(n)
	perm := make([]int, n)
	for i := range perm {
		v, err := r.ReadBits(k)
		if err != nil {
			return Permutation{}, fmt.Errorf("permute: unpack index %d: %w", i, err)
		}
		perm[i] = int(v)
	}
	return FromSlice(perm)
}

// Compose returns the permutation equivalent to applying p then q:
// (p then q).Apply(v) == q.Apply(p.Apply(v)).
func (p Permutation) Compose(q Permutation) Permutation {
	if p.Len() != q.Len() {
		panic("permute: length mismatch in Compose")
	}
	out := make([]int, p.Len())
	for i, src := range q.perm {
		out[i] = p.perm[src]
	}
	return Permutation{perm: out}
}
