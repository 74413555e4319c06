package ristretto

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/primstore/provider"
)

// Provider stores entries in a ristretto cache. Ristretto cannot enumerate its
// keys, so the provider keeps its own key index for Scan and Clear; keys the
// cache evicted on its own are pruned from the index lazily.
type Provider struct {
	c *rc.Cache

	mu   sync.Mutex
	keys map[string]struct{}
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
	// Cost in Ristretto is provided by the caller (the store passes cost per Set).
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c, keys: make(map[string]struct{})}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		p.unindex(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set waits for the write buffer to drain so a following Get observes the
// value. ok=false means the admission policy refused the entry.
func (p *Provider) Set(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) (bool, error) {
	if ttl < 0 {
		ttl = 0
	}
	if !p.c.SetWithTTL(key, value, cost, ttl) {
		return false, nil
	}
	p.c.Wait()
	if _, ok := p.c.Get(key); !ok {
		return false, nil
	}
	p.mu.Lock()
	p.keys[key] = struct{}{}
	p.mu.Unlock()
	return true, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	p.unindex(key)
	return nil
}

func (p *Provider) Scan(ctx context.Context, prefix string, fn func(string, []byte) error) error {
	for _, k := range p.indexed(prefix) {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, ok := p.c.Get(k)
		b, _ := v.([]byte)
		if !ok || b == nil {
			p.unindex(k) // evicted or expired behind our back
			continue
		}
		if err := fn(k, b); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provider) Clear(_ context.Context, prefix string) error {
	if prefix == "" {
		p.c.Clear()
		p.mu.Lock()
		p.keys = make(map[string]struct{})
		p.mu.Unlock()
		return nil
	}
	for _, k := range p.indexed(prefix) {
		p.c.Del(k)
		p.unindex(k)
	}
	p.c.Wait()
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto's counters (nil unless Config.Metrics was set).
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }

func (p *Provider) indexed(prefix string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.keys))
	for k := range p.keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out
}

func (p *Provider) unindex(key string) {
	p.mu.Lock()
	delete(p.keys, key)
	p.mu.Unlock()
}
