// Package catalog records which vector spaces an application has used.
//
// Each Space is keyed by its vector name. Registering the same name with a
// different dimension is rejected, so two embedding models whose names
// collide cannot silently share one storage collection.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/oceanbase/oaiembed-go/pkg/embedder"
)

var (
	// ErrNotFound indicates that no space is registered under the name.
	ErrNotFound = errors.New("vector space not found")

	// ErrSizeMismatch indicates that the name is registered with a different size.
	ErrSizeMismatch = errors.New("vector space size mismatch")

	// ErrInvalidSpace indicates that a space is missing its name or has a non-positive size.
	ErrInvalidSpace = errors.New("invalid vector space")
)

// Space describes one vector space.
type Space struct {
	// ID is assigned by the store on first registration.
	ID int64

	// Name is the vector name, e.g. "fast-bge-small-en".
	Name string

	// Model is the embedding model that produced the space.
	Model string

	// BaseURL is the endpoint the model was served from.
	BaseURL string

	// Size is the vector dimension.
	Size int

	// CreatedAt is when the space was first registered.
	CreatedAt time.Time
}

// SpaceFor describes the space produced by p.
func SpaceFor(p embedder.Provider, model, baseURL string) *Space {
	return &Space{
		Name:    p.VectorName(),
		Model:   model,
		BaseURL: baseURL,
		Size:    p.VectorSize(),
	}
}

// Validate checks that the space can be registered.
func (s *Space) Validate() error {
	if s == nil || s.Name == "" || s.Size <= 0 {
		return ErrInvalidSpace
	}
	return nil
}

// Store persists vector spaces.
//
// All implementations (SQLite, PostgreSQL, OceanBase) share the same semantics.
type Store interface {
	// Register stores space if its name is new and returns the stored record.
	// If the name exists with the same size the existing record is returned
	// unchanged; with a different size ErrSizeMismatch is returned.
	Register(ctx context.Context, space *Space) (*Space, error)

	// Get returns the space registered under name, or ErrNotFound.
	Get(ctx context.Context, name string) (*Space, error)

	// List returns all spaces ordered by name.
	List(ctx context.Context) ([]*Space, error)

	// Delete removes the space registered under name, or returns ErrNotFound.
	Delete(ctx context.Context, name string) error

	// Close closes the store and releases resources.
	Close() error
}
