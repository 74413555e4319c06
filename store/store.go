// Package store is the bundled primstore backend: it frames encoded values
// with their deadline and keeps them in a byte Provider.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unkn0wn-root/primstore"
	"github.com/unkn0wn-root/primstore/codec"
	"github.com/unkn0wn-root/primstore/internal/wire"
	pr "github.com/unkn0wn-root/primstore/provider"
)

var (
	ErrSetRejected      = errors.New("store: provider rejected write")
	ErrInvalidNamespace = errors.New("store: namespace must be non-empty and free of ':'")
)

// nsSep ends the namespace in every storage key. Namespaces may not contain it,
// so no namespace's prefix is a prefix of another's.
const nsSep = ":"

// Store implements primstore.Storage. Every read goes through
// primstore.Decode, so values wrapped by primstore.PrimitiveStorage come back
// as the caller's type.
//
// Expiry is enforced by RemoveExpiredObjects. Entry still returns an expired
// entry that has not been swept; check Meta.Expired.
type Store struct {
	ns             string
	prefix         string
	provider       pr.Provider
	codec          codec.Codec
	log            primstore.Logger
	hooks          Hooks
	defaultExpiry  primstore.Expiry
	nativeTTL      bool
	computeSetCost SetCostFunc
	now            func() time.Time
}

var _ primstore.Storage = (*Store)(nil)

func New(opts Options) (*Store, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("store: codec is required")
	}
	if opts.Namespace == "" || strings.Contains(opts.Namespace, nsSep) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNamespace, opts.Namespace)
	}

	s := &Store{
		ns:        opts.Namespace,
		prefix:    opts.Namespace + nsSep,
		provider:  opts.Provider,
		codec:     opts.Codec,
		nativeTTL: opts.NativeTTL,
	}

	// defaults
	s.log = coalesce[primstore.Logger](opts.Logger, primstore.NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.defaultExpiry = opts.DefaultExpiry
	if s.defaultExpiry.IsZero() {
		s.defaultExpiry = primstore.ExpireNever()
	}
	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(string, []byte) int64 { return 1 }
	}
	if opts.Clock != nil {
		s.now = opts.Clock
	} else {
		s.now = time.Now
	}
	return s, nil
}

func (s *Store) Entry(ctx context.Context, key string, dst any) (primstore.Meta, error) {
	k := s.storageKey(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		return primstore.Meta{}, fmt.Errorf("store: get %q: %w", key, err)
	}
	if !ok {
		return primstore.Meta{}, fmt.Errorf("store: %q: %w", key, primstore.ErrNotFound)
	}
	deadline, payload, err := wire.DecodeEntry(raw)
	if err != nil {
		_ = s.provider.Del(ctx, k) // self-heal corrupt
		s.hooks.CorruptEntry(k, "read")
		s.log.Warn("deleted corrupt entry", primstore.Fields{"key": key})
		return primstore.Meta{}, fmt.Errorf("store: %q: %w", key, primstore.ErrCorrupt)
	}
	if err := primstore.Decode(s.codec, payload, dst); err != nil {
		return primstore.Meta{}, fmt.Errorf("store: decode %q (%s): %w", key, s.codec.Name(), err)
	}
	return primstore.Meta{Key: key, ExpiresAt: deadline}, nil
}

func (s *Store) SetObject(ctx context.Context, key string, value any, expiry primstore.Expiry) error {
	if expiry.IsZero() {
		expiry = s.defaultExpiry
	}
	now := s.now()
	deadline := expiry.Deadline(now)

	payload, err := s.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("store: encode %q (%s): %w", key, s.codec.Name(), err)
	}
	k := s.storageKey(key)
	wireb := wire.EncodeEntry(deadline, payload)

	var ttl time.Duration
	if s.nativeTTL && !deadline.IsZero() {
		ttl = deadline.Sub(now)
		if ttl <= 0 {
			// already past its deadline; keep it until the next sweep
			ttl = 0
		}
	}
	ok, err := s.provider.Set(ctx, k, wireb, s.computeSetCost(k, wireb), ttl)
	if err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("SetObject rejected by provider (pressure)", primstore.Fields{"key": key})
		return fmt.Errorf("store: set %q: %w", key, ErrSetRejected)
	}
	return nil
}

func (s *Store) RemoveObject(ctx context.Context, key string) error {
	if err := s.provider.Del(ctx, s.storageKey(key)); err != nil {
		return fmt.Errorf("store: remove %q: %w", key, err)
	}
	return nil
}

func (s *Store) RemoveAll(ctx context.Context) error {
	if err := s.provider.Clear(ctx, s.prefix); err != nil {
		return fmt.Errorf("store: remove all in %q: %w", s.ns, err)
	}
	s.log.Debug("removed all entries", primstore.Fields{"ns": s.ns})
	return nil
}

// RemoveExpiredObjects deletes entries whose deadline is at or before now and
// any entries whose envelope can't be read. Delete failures don't stop the
// sweep; they are returned together as a *primstore.SweepError.
func (s *Store) RemoveExpiredObjects(ctx context.Context) error {
	now := s.now()
	var expired, corrupt []string
	err := s.provider.Scan(ctx, s.prefix, func(k string, raw []byte) error {
		deadline, err := wire.Deadline(raw)
		switch {
		case err != nil:
			corrupt = append(corrupt, k)
		case !deadline.IsZero() && !now.Before(deadline):
			expired = append(expired, k)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store: scan %q: %w", s.ns, err)
	}

	var failed map[string]error
	removed := 0
	del := func(k string) {
		if err := s.provider.Del(ctx, k); err != nil {
			if failed == nil {
				failed = make(map[string]error)
			}
			failed[k] = err
			s.hooks.SweepDeleteError(k, err)
			return
		}
		removed++
	}
	for _, k := range expired {
		del(k)
	}
	for _, k := range corrupt {
		s.hooks.CorruptEntry(k, "sweep")
		del(k)
	}

	s.hooks.ExpiredSwept(s.ns, removed)
	s.log.Debug("swept expired entries", primstore.Fields{
		"ns": s.ns, "expired": len(expired), "corrupt": len(corrupt), "removed": removed,
	})
	if failed != nil {
		return &primstore.SweepError{Failed: failed}
	}
	return nil
}

// Close closes the provider.
func (s *Store) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *Store) storageKey(userKey string) string {
	return s.prefix + userKey
}
