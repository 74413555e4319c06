// Package primstore implements a transparent adapter in front of a keyed
// storage backend that lets callers persist primitive values alongside
// arbitrary structured values.
//
// The backend only ever sees self-describing values. Values whose exact type is
// one of the recognised primitive kinds are wrapped in a small carrier before
// they reach it; everything else passes through unchanged.
//
// Components:
//   - Storage: backend contract (entry lookup, set with expiry, remove,
//     remove-all, expired sweep). store.Store is the bundled implementation.
//   - PrimitiveStorage: the adapter. Classifies on write, delegates the rest.
//   - PrimitiveWrapper[T] / ImageWrapper: carriers persisted by the backend.
//   - Decode: carrier-aware decode routine backends use so reads of a
//     primitive type come back unwrapped.
//
// Primitive kinds (exact type identity, no named or pointer types):
//
//	Image
//	bool     []bool
//	string   []string
//	int      []int
//	float32  []float32
//	float64  []float64
//
// Usage:
//
//	st, _ := store.New(store.Options{
//	    Namespace: "prefs",
//	    Provider:  memory.New(),
//	    Codec:     codec.Msgpack{},
//	})
//	ps, _ := primstore.New(st, primstore.Options{})
//	_ = ps.SetObject(ctx, "flag", true, primstore.ExpireAfter(time.Hour))
//	v, _ := primstore.ObjectOf[bool](ctx, ps, "flag")
package primstore
