package lsfs

import (
	"sync"

	"lsfs/bitvec"
)

// Sign produces a deterministic, fixed-length signature over message:
// SHAKE-256(sk || message || i) seeds round i, so the same (sk, message)
// pair always yields the same signature. The t rounds are independent
// until the challenge-hash accumulation step, so they run concurrently;
// results are collected into an index-ordered slice, never a race-ordered
// stream, so the challenge hash stays deterministic regardless of
// goroutine scheduling.
func Sign(sk *SecretKey, message []byte) ([]byte, error) {
	st := deriveSecretState(sk)
	p := st.p

	rounds := make([]roundState, p.T)
	var wg sync.WaitGroup
	for i := 0; i < p.T; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rounds[i] = computeRound(p, st, roundSeed(sk.Seed, message, i))
		}(i)
	}
	wg.Wait()

	triples := make([][3][]byte, p.T)
	for i, r := range rounds {
		triples[i] = [3][]byte{r.c0, r.c1, r.c2}
	}
	chHash := challengeHash(p.ChHashByteLen, message, triples)
	modes := expandChallenge(chHash, p.T)

	w := bitvec.NewWriter()
	w.WriteBytes(chHash)
	for i, r := range rounds {
		switch modes[i] {
		case 0:
			w.WriteBitvec(r.yTilde)
			r.perm.Pack(w)
			w.WriteBytes(r.coins0)
			w.WriteBytes(r.coins1)
			w.WriteBytes(r.c2)
		case 1:
			w.WriteBitvec(bitvec.Xor(r.yTilde, r.eTilde))
			r.perm.Pack(w)
			w.WriteBytes(r.coins0)
			w.WriteBytes(r.coins2)
			w.WriteBytes(r.c1)
		case 2:
			w.WriteBitvec(r.yTilde)
			w.WriteBitvec(r.eTilde)
			w.WriteBytes(r.coins1)
			w.WriteBytes(r.coins2)
			w.WriteBytes(r.c0)
		}
	}
	if w.BitLen() > p.SigByteLen*8 {
		return nil, ErrSignatureOverflow
	}
	sig := make([]byte, p.SigByteLen)
	copy(sig, w.Bytes())
	return sig, nil
}
