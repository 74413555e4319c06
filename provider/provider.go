// Package provider defines the byte store used by the primstore backend.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly the
// same []byte that was previously passed to Set for a key (no prepended/appended
// metadata, no re-encoding, no mutation). If a store performs internal transforms
// (e.g., compression), they MUST be fully reversed.
//
// The store namespaces its keys as "<ns>:<key>" (namespaces contain no ':');
// Scan and Clear take that prefix so several stores can share one provider.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs and prefix iteration.
// Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL (ttl<=0 => no expiry). May ignore cost
	// if unsupported. Returns ok=false when the store rejected the write under
	// pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key. Missing keys are not an error.
	Del(ctx context.Context, key string) error

	// Scan calls fn for every live key starting with prefix. Returning an error
	// from fn stops the scan and is returned by Scan. fn must not call back into
	// the provider for writes; collect keys and act after Scan returns.
	Scan(ctx context.Context, prefix string, fn func(key string, value []byte) error) error

	// Clear removes every key starting with prefix ("" => everything).
	Clear(ctx context.Context, prefix string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
