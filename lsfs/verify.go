package lsfs

import (
	"crypto/subtle"

	"lsfs/bitvec"
	"lsfs/matrix"
	"lsfs/params"
	"lsfs/permute"
)

// Open verifies sig (the trailing SigByteLen bytes of signedMessage)
// against pk and, on acceptance, returns the leading message bytes.
// Verification is total: every parseable input yields a definite
// accept/reject; ErrVerificationReject covers both a digest mismatch and
// any per-round check failure. Only a signedMessage too short to even
// contain a signature is reported separately, as ErrSignatureTooShort.
func Open(pk *PublicKey, signedMessage []byte) ([]byte, error) {
	p := params.Get(pk.Level)
	if len(signedMessage) < p.SigByteLen {
		return nil, ErrSignatureTooShort
	}
	msgLen := len(signedMessage) - p.SigByteLen
	message := signedMessage[:msgLen]
	sig := signedMessage[msgLen:]

	if !verify(pk, p, message, sig) {
		return nil, ErrVerificationReject
	}
	return append([]byte(nil), message...), nil
}

func verify(pk *PublicKey, p *params.Params, message, sig []byte) bool {
	r := bitvec.NewReader(sig)
	chHash, err := r.ReadBytes(p.ChHashByteLen)
	if err != nil {
		return false
	}
	modes := expandChallenge(chHash, p.T)
	h := matrix.Derive(pk.HSeed, p.R, p.N)

	triples := make([][3][]byte, p.T)
	for i := 0; i < p.T; i++ {
		c0, c1, c2, ok := parseRound(r, h, pk, p, modes[i])
		if !ok {
			return false
		}
		triples[i] = [3][]byte{c0, c1, c2}
	}
	if !r.TrailingZero() {
		return false
	}

	rehash := challengeHash(p.ChHashByteLen, message, triples)
	return subtle.ConstantTimeCompare(chHash, rehash) == 1
}

// parseRound parses the mode-dictated payload for one round and returns
// the round's full (c0, c1, c2) triple: two recomputed, one read as
// opaque bytes straight from the signature.
func parseRound(r *bitvec.Reader, h *matrix.H, pk *PublicKey, p *params.Params, mode int) (c0, c1, c2 []byte, ok bool) {
	switch mode {
	case 0:
		yTilde, err := r.ReadBitvec(p.N)
		if err != nil {
			return nil, nil, nil, false
		}
		perm, err := permute.Unpack(r, p.N)
		if err != nil {
			return nil, nil, nil, false
		}
		coins0, err := r.ReadBytes(p.CoinsCommByteLen)
		if err != nil {
			return nil, nil, nil, false
		}
		coins1, err := r.ReadBytes(p.CoinsCommByteLen)
		if err != nil {
			return nil, nil, nil, false
		}
		c2, err = r.ReadBytes(p.CommByteLen)
		if err != nil {
			return nil, nil, nil, false
		}
		c0, c1 := recomputeMode0(p, h, yTilde, perm, coins0, coins1)
		return c0, c1, c2, true

	case 1:
		v, err := r.ReadBitvec(p.N)
		if err != nil {
			return nil, nil, nil, false
		}
		perm, err := permute.Unpack(r, p.N)
		if err != nil {
			return nil, nil, nil, false
		}
		coins0, err := r.ReadBytes(p.CoinsCommByteLen)
		if err != nil {
			return nil, nil, nil, false
		}
		coins2, err := r.ReadBytes(p.CoinsCommByteLen)
		if err != nil {
			return nil, nil, nil, false
		}
		c1, err = r.ReadBytes(p.CommByteLen)
		if err != nil {
			return nil, nil, nil, false
		}
		c0, c2 := recomputeMode1(p, h, pk.Syndrome, v, perm, coins0, coins2)
		return c0, c1, c2, true

	case 2:
		yTilde, err := r.ReadBitvec(p.N)
		if err != nil {
			return nil, nil, nil, false
		}
		eTilde, err := r.ReadBitvec(p.N)
		if err != nil {
			return nil, nil, nil, false
		}
		if eTilde.Weight() != p.W {
			return nil, nil, nil, false
		}
		coins1, err := r.ReadBytes(p.CoinsCommByteLen)
		if err != nil {
			return nil, nil, nil, false
		}
		coins2, err := r.ReadBytes(p.CoinsCommByteLen)
		if err != nil {
			return nil, nil, nil, false
		}
		c0, err = r.ReadBytes(p.CommByteLen)
		if err != nil {
			return nil, nil, nil, false
		}
		c1, c2 := recomputeMode2(p, yTilde, eTilde, coins1, coins2)
		return c0, c1, c2, true

	default:
		return nil, nil, nil, false
	}
}
