// Package entropy supplies the fresh randomness key generation needs,
// with a deterministic stand-in for reproducible tests.
package entropy

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// ErrEntropyFailure is returned when the underlying entropy source fails
// to fill a request.
var ErrEntropyFailure = fmt.Errorf("entropy: source failed to fill request")

// Source supplies fresh random bytes.
type Source interface {
	Read(n int) ([]byte, error)
}

// systemSource reads from crypto/rand.
type systemSource struct{}

// System is the default Source: the operating system's CSPRNG.
var System Source = systemSource{}

func (systemSource) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return buf, nil
}

// Deterministic returns a Source that expands seed with SHAKE-256: the
// same seed always yields the same byte stream, across calls and across
// processes. Meant for tests and reproducible benchmark runs, never for
// production key material.
func Deterministic(seed []byte) Source {
	h := sha3.NewShake256()
	_, _ = h.Write(seed)
	return &deterministicSource{h: h}
}

type deterministicSource struct {
	h sha3.ShakeHash
}

func (d *deterministicSource) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := d.h.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return buf, nil
}
