package ports

import "go.trai.ch/wdabuild/internal/core/domain"

// Hasher defines the interface for computing build fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a short, deterministic hash of the identity.
	Fingerprint(id domain.BuildIdentity) string
}
