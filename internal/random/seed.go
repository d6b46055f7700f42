// Package random provides cryptographic seed generation helpers.
//
// It uses crypto/rand to generate high-entropy seeds suitable for
// initializing the pseudo-random generator that draws a session's secret.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"

	apperrors "github.com/louisbranch/guessing-game/internal/platform/errors"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return NewSeedFrom(crand.Reader)
}

// NewSeedFrom reads a seed from the given entropy source. A short or failed
// read is reported as CodeSeedUnavailable.
func NewSeedFrom(source io.Reader) (int64, error) {
	if source == nil {
		return 0, apperrors.New(apperrors.CodeSeedUnavailable, "read random seed: entropy source is required")
	}
	var b [8]byte
	if _, err := io.ReadFull(source, b[:]); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeSeedUnavailable, "read random seed", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
