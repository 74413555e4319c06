package primstore

import (
	"context"
	"time"
)

// Storage is the backend contract. Values handed to SetObject must be
// encodable by whatever codec the backend uses; Entry decodes into dst, which
// must be a non-nil pointer.
type Storage interface {
	// Entry decodes the value stored under key into dst.
	// Missing keys return an error matching ErrNotFound.
	Entry(ctx context.Context, key string, dst any) (Meta, error)

	// SetObject stores value under key. A zero Expiry means "backend default".
	SetObject(ctx context.Context, key string, value any, expiry Expiry) error

	// RemoveObject deletes key. Missing keys are backend-defined.
	RemoveObject(ctx context.Context, key string) error

	// RemoveAll clears every entry owned by this storage.
	RemoveAll(ctx context.Context) error

	// RemoveExpiredObjects deletes every entry whose deadline has passed.
	RemoveExpiredObjects(ctx context.Context) error
}

// Meta describes a stored entry.
type Meta struct {
	Key       string
	ExpiresAt time.Time // zero => never
}

// Expired reports whether the entry's deadline is at or before now.
func (m Meta) Expired(now time.Time) bool {
	return !m.ExpiresAt.IsZero() && !now.Before(m.ExpiresAt)
}

// Entry is a decoded value plus its metadata.
type Entry[T any] struct {
	Object T
	Meta
}

// EntryOf reads key from s as a T.
func EntryOf[T any](ctx context.Context, s Storage, key string) (Entry[T], error) {
	var e Entry[T]
	m, err := s.Entry(ctx, key, &e.Object)
	if err != nil {
		return Entry[T]{}, err
	}
	e.Meta = m
	return e, nil
}

// ObjectOf is EntryOf without the metadata.
func ObjectOf[T any](ctx context.Context, s Storage, key string) (T, error) {
	e, err := EntryOf[T](ctx, s, key)
	return e.Object, err
}
