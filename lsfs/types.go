// Package lsfs implements the Lossy Stern signature scheme: a
// post-quantum signature built from Stern's zero-knowledge
// identification protocol for syndrome decoding, compiled
// non-interactive via Fiat-Shamir.
package lsfs

import (
	"fmt"

	"lsfs/bitvec"
	"lsfs/matrix"
	"lsfs/params"
	"lsfs/xof"
)

// SecretKey is an opaque seed: every bit of signer-side state (the
// weight-w secret e, the H-seed, per-round derivations) is re-derived
// from it on demand, never stored alongside it.
type SecretKey struct {
	Level params.Level
	Seed  []byte
}

// Bytes returns the wire encoding of sk: just the seed.
func (sk *SecretKey) Bytes() []byte { return sk.Seed }

// ParseSecretKey decodes a secret key for the given level.
func ParseSecretKey(level params.Level, data []byte) (*SecretKey, error) {
	p := params.Get(level)
	if len(data) != p.SkByteLen() {
		return nil, fmt.Errorf("lsfs: secret key must be %d bytes, got %d", p.SkByteLen(), len(data))
	}
	return &SecretKey{Level: level, Seed: append([]byte(nil), data...)}, nil
}

// PublicKey is the verifier's view: the H-seed (so H is reconstructible)
// and the syndrome s = H.eT.
type PublicKey struct {
	Level    params.Level
	HSeed    []byte
	Syndrome bitvec.Bitvec
}

// Bytes returns the wire encoding of pk: HSeed followed by the packed
// syndrome.
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, 0, len(pk.HSeed)+len(pk.Syndrome.Bytes()))
	out = append(out, pk.HSeed...)
	out = append(out, pk.Syndrome.Bytes()...)
	return out
}

// ParsePublicKey decodes a public key for the given level.
func ParsePublicKey(level params.Level, data []byte) (*PublicKey, error) {
	p := params.Get(level)
	if len(data) != p.PkByteLen() {
		return nil, fmt.Errorf("lsfs: public key must be %d bytes, got %d", p.PkByteLen(), len(data))
	}
	hSeed := append([]byte(nil), data[:p.SeedHByteLen]...)
	syndrome, err := bitvec.FromBytes(data[p.SeedHByteLen:], p.R)
	if err != nil {
		return nil, fmt.Errorf("lsfs: parsing syndrome: %w", err)
	}
	return &PublicKey{Level: level, HSeed: hSeed, Syndrome: syndrome}, nil
}

// secretState is the signer-side material re-derived from sk on every
// call: the weight-w secret e and the parity-check matrix H.
type secretState struct {
	p *params.Params
	e bitvec.Bitvec
	h *matrix.H
}

// deriveSecretState rebuilds e and H from sk. e comes from a domain-
// separated branch of sk's XOF stream so that it never collides with the
// H-seed subrange or any round derivation.
func deriveSecretState(sk *SecretKey) *secretState {
	p := params.Get(sk.Level)
	e := xof.NewLabeled("lsfs/e", sk.Seed).ReadWeightVector(p.N, p.W)
	h := matrix.Derive(sk.Seed[:p.SeedHByteLen], p.R, p.N)
	return &secretState{p: p, e: e, h: h}
}

// publicKeyOf derives the public key matching sk.
func publicKeyOf(sk *SecretKey, st *secretState) *PublicKey {
	return &PublicKey{
		Level:    sk.Level,
		HSeed:    append([]byte(nil), sk.Seed[:st.p.SeedHByteLen]...),
		Syndrome: st.h.Syndrome(st.e),
	}
}
