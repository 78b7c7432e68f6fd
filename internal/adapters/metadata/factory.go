// Package metadata implements the ReferenceFactory port.
package metadata

import (
	"go.trai.ch/refset/internal/core/domain"
)

// Factory builds compilation references from on-disk assembly paths.
type Factory struct{}

// NewFactory creates a ReferenceFactory.
func NewFactory() *Factory {
	return &Factory{}
}

// FromFile wraps an assembly path into a reference.
func (f *Factory) FromFile(path string) domain.Reference {
	return domain.Reference{Path: path}
}
