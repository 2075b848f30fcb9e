// Package store defines the document store used by the API and its
// implementations. A store holds named collections of documents; the
// store assigns every inserted document an opaque identifier.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned by FindOne when no document matches.
	ErrNotFound = errors.New("store: document not found")
	// ErrUnavailable is returned when no store is configured.
	ErrUnavailable = errors.New("store: not configured")
	// ErrInvalidID is returned by ParseID for malformed identifiers.
	ErrInvalidID = errors.New("store: invalid identifier")
)

// Filter is an exact-match filter on document fields. A nil or empty
// filter matches every document in the collection.
type Filter map[string]any

// Store is the interface all backing stores implement.
type Store interface {
	// Insert appends doc to the named collection and returns the
	// identifier the store assigned to it, in string form.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Find decodes every matching document into dest, which must be a
	// pointer to a slice. Order is store-native.
	Find(ctx context.Context, collection string, filter Filter, dest any) error

	// FindOne decodes the first matching document into dest, or
	// returns ErrNotFound.
	FindOne(ctx context.Context, collection string, filter Filter, dest any) error

	// Count reports how many documents match the filter.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)

	// Collections lists the names of non-empty collections.
	Collections(ctx context.Context) ([]string, error)
}

// ParseID converts the string form of an identifier back to the
// store's identifier type. The reverse direction is ObjectID.Hex,
// which never fails.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
