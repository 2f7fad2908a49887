package lsfs

import (
	"encoding/binary"

	"lsfs/bitvec"
	"lsfs/matrix"
	"lsfs/params"
	"lsfs/permute"
	"lsfs/xof"
)

// roundState is the ephemeral per-round witness state kept in memory
// between commitment and disclosure. It is discarded once the signature
// is assembled; nothing here is ever written to the signature wholesale.
type roundState struct {
	perm   permute.Permutation
	y      bitvec.Bitvec
	yTilde bitvec.Bitvec
	eTilde bitvec.Bitvec

	coins0, coins1, coins2 []byte
	c0, c1, c2             []byte
}

// roundSeed derives the deterministic per-round master seed
// SHAKE-256(sk || message || round_index).
func roundSeed(skSeed, message []byte, i int) []byte {
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], uint32(i))
	return xof.Sum(32, skSeed, message, idx[:])
}

// packPermutation renders perm as the tight bit-packed byte string used
// inside commitment c0 and in the signature payload.
func packPermutation(perm permute.Permutation) []byte {
	w := bitvec.NewWriter()
	perm.Pack(w)
	return w.Bytes()
}

// computeRound runs one Stern round: derives π_i, y_i and the three
// commitment coin strings from seed, then forms the three Stern-round
// commitments c0, c1, c2.
func computeRound(p *params.Params, st *secretState, seed []byte) roundState {
	perm := permute.Sample(xof.NewLabeled("lsfs/perm", seed), p.N)
	y := xof.NewLabeled("lsfs/y", seed).ReadBits(p.N)
	coins0 := xof.NewLabeled("lsfs/coins0", seed).Squeeze(p.CoinsCommByteLen)
	coins1 := xof.NewLabeled("lsfs/coins1", seed).Squeeze(p.CoinsCommByteLen)
	coins2 := xof.NewLabeled("lsfs/coins2", seed).Squeeze(p.CoinsCommByteLen)

	yTilde := perm.Apply(y)
	eTilde := perm.Apply(st.e)
	hy := st.h.Syndrome(y)
	permBytes := packPermutation(perm)

	c0 := xof.Sum(p.CommByteLen, coins0, permBytes, hy.Bytes())
	c1 := xof.Sum(p.CommByteLen, coins1, yTilde.Bytes())
	c2 := xof.Sum(p.CommByteLen, coins2, bitvec.Xor(yTilde, eTilde).Bytes())

	return roundState{
		perm: perm, y: y, yTilde: yTilde, eTilde: eTilde,
		coins0: coins0, coins1: coins1, coins2: coins2,
		c0: c0, c1: c1, c2: c2,
	}
}

// recomputeMode0 rebuilds c0 and c1 from a mode-0 disclosure, mirroring
// computeRound's formulas without knowledge of y or e.
func recomputeMode0(p *params.Params, h *matrix.H, yTilde bitvec.Bitvec, perm permute.Permutation, coins0, coins1 []byte) (c0, c1 []byte) {
	y := perm.Inverse().Apply(yTilde)
	hy := h.Syndrome(y)
	permBytes := packPermutation(perm)
	c0 = xof.Sum(p.CommByteLen, coins0, permBytes, hy.Bytes())
	c1 = xof.Sum(p.CommByteLen, coins1, yTilde.Bytes())
	return c0, c1
}

// recomputeMode1 rebuilds c0 and c2 from a mode-1 disclosure. v = yTilde
// XOR eTilde; the XOR with the public syndrome s is the algebraic check
// binding v to this public key's e.
func recomputeMode1(p *params.Params, h *matrix.H, s bitvec.Bitvec, v bitvec.Bitvec, perm permute.Permutation, coins0, coins2 []byte) (c0, c2 []byte) {
	unpermuted := perm.Inverse().Apply(v)
	hv := h.Syndrome(unpermuted)
	hv.XorInto(s)
	permBytes := packPermutation(perm)
	c0 = xof.Sum(p.CommByteLen, coins0, permBytes, hv.Bytes())
	c2 = xof.Sum(p.CommByteLen, coins2, v.Bytes())
	return c0, c2
}

// recomputeMode2 rebuilds c1 and c2 from a mode-2 disclosure. The caller
// is responsible for checking eTilde's weight separately.
func recomputeMode2(p *params.Params, yTilde, eTilde bitvec.Bitvec, coins1, coins2 []byte) (c1, c2 []byte) {
	c1 = xof.Sum(p.CommByteLen, coins1, yTilde.Bytes())
	c2 = xof.Sum(p.CommByteLen, coins2, bitvec.Xor(yTilde, eTilde).Bytes())
	return c1, c2
}
