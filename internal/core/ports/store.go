package ports

import "go.trai.ch/wdabuild/internal/core/domain"

// BuildRecordStore persists the summary of the last successful build of a staging directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get returns nil, nil when no record exists.
	Get(dir string) (*domain.BuildRecord, error)
	Put(dir string, record domain.BuildRecord) error
}
