// Package memory is an in-process Provider backed by a map.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	pr "github.com/unkn0wn-root/primstore/provider"
)

type entry struct {
	value  []byte
	expire time.Time // zero => no TTL
}

func (e entry) expired(now time.Time) bool {
	return !e.expire.IsZero() && !now.Before(e.expire)
}

// Provider keeps entries in a map guarded by an RWMutex. Values are copied on
// the way in and out so callers can't mutate stored bytes.
type Provider struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

var _ pr.Provider = (*Provider)(nil)

func New() *Provider {
	return &Provider{data: make(map[string]entry), now: time.Now}
}

// NewWithClock is New with an injectable clock (tests).
func NewWithClock(now func() time.Time) *Provider {
	p := New()
	if now != nil {
		p.now = now
	}
	return p
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	e, ok := p.data[key]
	p.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expired(p.now()) {
		return clone(e.value), true, nil
	}

	p.mu.Lock()
	// re-check: a concurrent Set may have replaced it
	if cur, ok := p.data[key]; ok && cur.expired(p.now()) {
		delete(p.data, key)
	}
	p.mu.Unlock()
	return nil, false, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var exp time.Time
	if ttl > 0 {
		exp = p.now().Add(ttl)
	}
	p.mu.Lock()
	p.data[key] = entry{value: clone(value), expire: exp}
	p.mu.Unlock()
	return true, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.data, key)
	p.mu.Unlock()
	return nil
}

func (p *Provider) Scan(ctx context.Context, prefix string, fn func(string, []byte) error) error {
	now := p.now()
	type kv struct {
		k string
		v []byte
	}
	p.mu.RLock()
	batch := make([]kv, 0, len(p.data))
	for k, e := range p.data {
		if strings.HasPrefix(k, prefix) && !e.expired(now) {
			batch = append(batch, kv{k, clone(e.value)})
		}
	}
	p.mu.RUnlock()

	for _, it := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(it.k, it.v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provider) Clear(_ context.Context, prefix string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if prefix == "" {
		p.data = make(map[string]entry)
		return nil
	}
	for k := range p.data {
		if strings.HasPrefix(k, prefix) {
			delete(p.data, k)
		}
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.data)
}

func (p *Provider) Close(_ context.Context) error { return nil }

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
