package mirror

import (
	"context"
	"errors"
)

// BookDocument is the fixed projection of a book that is pushed to the
// external document store. PublicationDate is an ISO-8601 date string.
type BookDocument struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Category        *string `json:"category"`
	PublicationDate string  `json:"publication_date"`
	Slug            string  `json:"slug"`
}

// ErrDisabled is returned by every operation of the disabled mirror.
var ErrDisabled = errors.New("document mirror is disabled")

// Mirror is the one-way, best-effort copy of book records into a secondary
// document store. Callers decide what to do with failures; implementations
// must never retry.
type Mirror interface {
	// Upsert writes the document keyed by its slug, replacing any previous
	// version.
	Upsert(ctx context.Context, doc BookDocument) error

	// Remove deletes the document for a slug. Removing a missing document
	// is not an error.
	Remove(ctx context.Context, slug string) error

	// List reads back every stored document, newest key order not
	// guaranteed.
	List(ctx context.Context) ([]BookDocument, error)

	// Enabled reports whether writes actually reach an external store.
	Enabled() bool
}

// Disabled is the no-op mirror used when MIRROR_ENABLED is off.
type Disabled struct{}

func NewDisabled() Disabled { return Disabled{} }

func (Disabled) Upsert(ctx context.Context, doc BookDocument) error { return nil }

func (Disabled) Remove(ctx context.Context, slug string) error { return nil }

func (Disabled) List(ctx context.Context) ([]BookDocument, error) { return nil, ErrDisabled }

func (Disabled) Enabled() bool { return false }
