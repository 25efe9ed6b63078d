// Package fs implements the filesystem adapters: fingerprinting and the staging workspace.
package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints build identities with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the joined identity and returns it as 16 hex digits.
func (h *Hasher) Fingerprint(id domain.BuildIdentity) string {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(id.String())
	return fmt.Sprintf("%016x", hasher.Sum64())
}
