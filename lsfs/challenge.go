package lsfs

import "lsfs/xof"

// challengeHash binds message to every round's three commitments, in
// round-ascending, (c0,c1,c2)-ascending order.
func challengeHash(chHashByteLen int, message []byte, triples [][3][]byte) []byte {
	parts := make([][]byte, 0, 1+3*len(triples))
	parts = append(parts, message)
	for _, tr := range triples {
		parts = append(parts, tr[0], tr[1], tr[2])
	}
	return xof.Sum(chHashByteLen, parts...)
}

// expandChallenge turns a challenge-hash digest into t symbols in
// {0,1,2}, one disclosure mode per round, via a single rejection-sampled
// XOF stream seeded with the digest.
func expandChallenge(chHash []byte, t int) []int {
	s := xof.New(chHash)
	b := make([]int, t)
	for i := range b {
		b[i] = s.ReadUniformBelow(3)
	}
	return b
}
