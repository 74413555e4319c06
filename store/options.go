package store

import (
	"time"

	"github.com/unkn0wn-root/primstore"
	"github.com/unkn0wn-root/primstore/codec"
	pr "github.com/unkn0wn-root/primstore/provider"
)

// SetCostFunc computes the provider cost of an encoded entry.
type SetCostFunc func(storageKey string, raw []byte) int64

// Options tune a Store. Namespace, Provider and Codec are required; the rest
// have defaults.
type Options struct {
	// Required
	Namespace string // logical namespace to avoid collisions, e.g. "prefs", "avatars". Must not contain ':'.
	Provider  pr.Provider
	Codec     codec.Codec

	Logger         primstore.Logger // if nil, NopLogger is used
	Hooks          Hooks            // if nil, NopHooks is used
	DefaultExpiry  primstore.Expiry // applied when SetObject gets a zero Expiry; zero => never
	NativeTTL      bool             // also hand the remaining lifetime to the provider as its TTL
	ComputeSetCost SetCostFunc      // default 1
	Clock          func() time.Time // default time.Now
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
