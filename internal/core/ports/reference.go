package ports

import "go.trai.ch/refset/internal/core/domain"

// ReferenceFactory wraps resolved assembly paths into compiler reference
// handles. The wrapping itself is a collaborator concern; the resolver only
// guarantees the paths it hands over exist and are deduplicated.
//
//go:generate mockgen -source=reference.go -destination=mocks/mock_reference.go -package=mocks
type ReferenceFactory interface {
	// FromFile creates a reference handle for the assembly at path.
	FromFile(path string) domain.Reference
}
