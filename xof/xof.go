// Package xof wraps a SHAKE-256 sponge as a deterministic byte stream and
// layers typed readers on top of it: packed bit vectors, rejection-sampled
// bounded integers, random permutations, and fixed-weight vectors.
package xof

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"lsfs/bitvec"
)

// Stream is a single-use, domain-separated SHAKE-256 squeeze state. Every
// helper that needs randomness owns its own Stream; none of it is shared
// or global.
type Stream struct {
	h sha3.ShakeHash
}

// New absorbs seed, with no domain-separation label (see NewLabeled for
// that), and returns a Stream ready to squeeze output.
func New(seed []byte) *Stream {
	h := sha3.NewShake256()
	_, _ = h.Write(seed)
	return &Stream{h: h}
}

// NewLabeled absorbs label followed by seed, so two callers using the
// same seed but different labels produce independent streams.
func NewLabeled(label string, seed []byte) *Stream {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(label))
	_, _ = h.Write(seed)
	return &Stream{h: h}
}

// Squeeze returns the next n bytes of output.
func (s *Stream) Squeeze(n int) []byte {
	out := make([]byte, n)
	if _, err := s.h.Read(out); err != nil {
		// sha3.ShakeHash.Read never returns an error; a sponge has
		// unbounded output.
		panic(fmt.Sprintf("xof: squeeze failed: %v", err))
	}
	return out
}

// ReadBits fills ceil(L/8) bytes from the stream and returns them as a
// Bitvec(L), with the last-byte tail zeroed.
func (s *Stream) ReadBits(nbits int) bitvec.Bitvec {
	buf := s.Squeeze(bitvec.ByteLen(nbits))
	v, err := bitvec.FromBytes(buf, nbits)
	if err != nil {
		// len(buf) == ByteLen(nbits) by construction; unreachable.
		panic(err)
	}
	return v
}

// Sum absorbs each part of data in order and squeezes n bytes: a
// one-shot SHAKE-256 digest over the concatenation, with no implicit
// domain-separation label beyond the parts themselves.
func Sum(n int, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	out := make([]byte, n)
	_, _ = h.Read(out)
	return out
}

// byteCountFor returns the smallest power-of-two byte count whose bit
// width is >= the number of bits needed to represent values in [0,N).
func byteCountFor(n int) int {
	bitsNeeded := 0
	for v := n - 1; v > 0; v >>= 1 {
		bitsNeeded++
	}
	if bitsNeeded == 0 {
		bitsNeeded = 1
	}
	byteCount := 1
	for byteCount*8 < bitsNeeded {
		byteCount *= 2
	}
	return byteCount
}

// ReadUniformBelow returns an integer uniform in [0,n) via rejection
// sampling: draw the smallest power-of-two byte count covering
// ceil(log2 n) bits, mask to that bit width, and reject draws >= n.
func (s *Stream) ReadUniformBelow(n int) int {
	if n <= 0 {
		panic("xof: ReadUniformBelow requires n > 0")
	}
	if n == 1 {
		return 0
	}
	byteCount := byteCountFor(n)
	bitWidth := byteCount * 8
	mask := uint64(1)<<uint(bitWidth) - 1
	if bitWidth >= 64 {
		mask = ^uint64(0)
	}
	for {
		buf := s.Squeeze(byteCount)
		var v uint64
		for i, b := range buf {
			v |= uint64(b) << uint(8*i)
		}
		v &= mask
		if int(v) < n {
			return int(v)
		}
	}
}

// ReadPermutation samples a uniform permutation of {0,...,n-1} via
// Fisher-Yates, high index to low: at position i, draw j in [0,i] and
// swap.
func (s *Stream) ReadPermutation(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.ReadUniformBelow(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// ReadWeightVector samples a Bitvec(n) of Hamming weight exactly w by
// repeatedly drawing a position in [0,n) and setting it, rejecting and
// redrawing on collision (not incrementing a counter) so the resulting
// distribution over weight-w vectors stays uniform.
func (s *Stream) ReadWeightVector(n, w int) bitvec.Bitvec {
	if w < 0 || w > n {
		panic("xof: ReadWeightVector requires 0 <= w <= n")
	}
	v := bitvec.New(n)
	set := 0
	for set < w {
		pos := s.ReadUniformBelow(n)
		if v.Get(pos) == 0 {
			v.Set(pos, 1)
			set++
		}
	}
	return v
}
