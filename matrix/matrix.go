// Package matrix derives and applies the lsfs parity-check matrix H, a
// deterministic function of an H-seed: each row is squeezed straight off
// the seed's XOF stream, never stored or transmitted.
package matrix

import (
	"math/bits"

	"lsfs/bitvec"
	"lsfs/xof"
)

// H is a parity-check matrix in GF(2)^(r x n), held as r row Bitvecs.
type H struct {
	rows []bitvec.Bitvec
	n    int
}

// Derive expands seed into an r x n matrix: row i is the i-th
// NInBytes()-byte block squeezed off a single SHAKE-256 stream seeded
// with seed, labeled so H-derivation never collides with any other use
// of the same seed bytes.
func Derive(seed []byte, r, n int) *H {
	s := xof.NewLabeled("lsfs/H", seed)
	rows := make([]bitvec.Bitvec, r)
	for i := range rows {
		rows[i] = s.ReadBits(n)
	}
	return &H{rows: rows, n: n}
}

// Rows returns the number of rows, r.
func (h *H) Rows() int { return len(h.rows) }

// Cols returns the number of columns, n.
func (h *H) Cols() int { return h.n }

// Row returns row i, H[i], of length n.
func (h *H) Row(i int) bitvec.Bitvec { return h.rows[i] }

// Syndrome computes s = H . vT for a length-n vector v, returning a
// length-r Bitvec where bit i is the parity of H[i] AND v.
func (h *H) Syndrome(v bitvec.Bitvec) bitvec.Bitvec {
	if v.Len() != h.n {
		panic("matrix: vector length does not match H's column count")
	}
	s := bitvec.New(len(h.rows))
	for i, row := range h.rows {
		if rowDotParity(row, v) != 0 {
			s.Set(i, 1)
		}
	}
	return s
}

// rowDotParity returns the GF(2) inner product of a and b: the parity of
// the popcount of their AND.
func rowDotParity(a, b bitvec.Bitvec) int {
	ab, bb := a.Bytes(), b.Bytes()
	parity := 0
	for i := range ab {
		parity ^= bits.OnesCount8(ab[i] & bb[i])
	}
	return parity & 1
}
