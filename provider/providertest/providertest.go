// Package providertest is a conformance suite for provider.Provider
// implementations.
package providertest

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/primstore/provider"
)

// Run exercises the Provider contract against fresh instances from newProvider.
func Run(t *testing.T, newProvider func(t *testing.T) pr.Provider) {
	t.Helper()

	t.Run("GetMiss", func(t *testing.T) {
		p := newProvider(t)
		b, ok, err := p.Get(context.Background(), "nope")
		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, b)
	})

	t.Run("SetGetTransparent", func(t *testing.T) {
		ctx := context.Background()
		p := newProvider(t)
		in := []byte{0, 'P', 'R', 'I', 'M', 0xff, 0x00}
		ok, err := p.Set(ctx, "ns:k", in, 1, 0)
		require.NoError(t, err)
		require.True(t, ok)

		got, ok, err := p.Get(ctx, "ns:k")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, in, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		ctx := context.Background()
		p := newProvider(t)
		mustSet(t, p, "ns:k", "old")
		mustSet(t, p, "ns:k", "new")
		got, ok, err := p.Get(ctx, "ns:k")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "new", string(got))
	})

	t.Run("DelIdempotent", func(t *testing.T) {
		ctx := context.Background()
		p := newProvider(t)
		mustSet(t, p, "ns:k", "v")
		require.NoError(t, p.Del(ctx, "ns:k"))
		require.NoError(t, p.Del(ctx, "ns:k"))
		_, ok, err := p.Get(ctx, "ns:k")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("ScanPrefix", func(t *testing.T) {
		ctx := context.Background()
		p := newProvider(t)
		mustSet(t, p, "a:1", "x")
		mustSet(t, p, "a:2", "y")
		mustSet(t, p, "b:1", "z")

		got := map[string]string{}
		require.NoError(t, p.Scan(ctx, "a:", func(k string, v []byte) error {
			got[k] = string(v)
			return nil
		}))
		require.Equal(t, map[string]string{"a:1": "x", "a:2": "y"}, got)
	})

	t.Run("ScanStopsOnError", func(t *testing.T) {
		ctx := context.Background()
		p := newProvider(t)
		mustSet(t, p, "a:1", "x")
		mustSet(t, p, "a:2", "y")

		stop := errors.New("stop")
		calls := 0
		err := p.Scan(ctx, "a:", func(string, []byte) error {
			calls++
			return stop
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 1, calls)
	})

	t.Run("ClearPrefix", func(t *testing.T) {
		ctx := context.Background()
		p := newProvider(t)
		mustSet(t, p, "a:1", "x")
		mustSet(t, p, "a:2", "y")
		mustSet(t, p, "b:1", "z")

		require.NoError(t, p.Clear(ctx, "a:"))
		require.Equal(t, []string{"b:1"}, keys(t, p, ""))
	})

	t.Run("ClearAll", func(t *testing.T) {
		ctx := context.Background()
		p := newProvider(t)
		mustSet(t, p, "a:1", "x")
		mustSet(t, p, "b:1", "z")

		require.NoError(t, p.Clear(ctx, ""))
		require.Empty(t, keys(t, p, ""))
	})
}

func mustSet(t *testing.T, p pr.Provider, k, v string) {
	t.Helper()
	ok, err := p.Set(context.Background(), k, []byte(v), 1, 0)
	require.NoError(t, err)
	require.True(t, ok, "set %q rejected", k)
}

func keys(t *testing.T, p pr.Provider, prefix string) []string {
	t.Helper()
	var out []string
	require.NoError(t, p.Scan(context.Background(), prefix, func(k string, _ []byte) error {
		out = append(out, k)
		return nil
	}))
	sort.Strings(out)
	return out
}
