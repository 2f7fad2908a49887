package lsfs

import (
	"fmt"

	"lsfs/entropy"
	"lsfs/params"
)

// GenerateKey draws a fresh seed from src, and derives the matching
// secret and public keys for level. The CLI and benchmark pass
// entropy.System; tests pass a Deterministic source for reproducible
// fixtures.
func GenerateKey(level params.Level, src entropy.Source) (*SecretKey, *PublicKey, error) {
	p := params.Get(level)
	seed, err := src.Read(p.SeedSkByteLen)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	sk := &SecretKey{Level: level, Seed: seed}
	st := deriveSecretState(sk)
	pk := publicKeyOf(sk, st)
	return sk, pk, nil
}
