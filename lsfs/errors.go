package lsfs

import "errors"

// Sentinel errors returned by GenerateKey, Sign, and Open. Verification
// failure itself is not an error: Open returns (nil, ErrVerificationReject)
// only to distinguish a clean reject from a malformed-input failure;
// callers that just want accept/reject should check for this sentinel.
var (
	// ErrEntropyFailure means the entropy source could not fill a
	// request; fatal to GenerateKey. Sign is deterministic and never
	// draws from an entropy source.
	ErrEntropyFailure = errors.New("lsfs: entropy source failure")

	// ErrBufferTooSmall means a caller-provided buffer is shorter than
	// its declared size.
	ErrBufferTooSmall = errors.New("lsfs: buffer too small")

	// ErrSignatureTooShort means a signed message is shorter than
	// sigByteLen, so it cannot even contain a signature.
	ErrSignatureTooShort = errors.New("lsfs: signed message shorter than signature length")

	// ErrSignatureOverflow means the packed payload (challenge hash plus
	// every round's disclosure) would not fit in sigByteLen. Calibrated parameter sets never hit this in honest
	// operation; seeing it means a parameter-set bug.
	ErrSignatureOverflow = errors.New("lsfs: signature payload exceeds sigByteLen")

	// ErrVerificationReject means every input parsed cleanly but the
	// challenge hash or a per-round check did not match.
	ErrVerificationReject = errors.New("lsfs: signature rejected")
)
