package primstore

import "context"

// Options configure PrimitiveStorage.
type Options struct {
	Logger Logger // if nil, NopLogger is used
}

// PrimitiveStorage wraps primitive values in a carrier before handing them to
// the underlying Storage and forwards every other call unchanged.
//
// It holds no state besides the storage reference, adds no locking and never
// swallows an error; concurrency guarantees are those of the wrapped Storage.
type PrimitiveStorage struct {
	storage Storage
	log     Logger
}

var _ Storage = (*PrimitiveStorage)(nil)

func New(storage Storage, opts Options) (*PrimitiveStorage, error) {
	if storage == nil {
		return nil, ErrNilStorage
	}
	log := opts.Logger
	if log == nil {
		log = NopLogger{}
	}
	return &PrimitiveStorage{storage: storage, log: log}, nil
}

// Entry delegates to the underlying storage. Unwrapping carriers is the
// backend's job (see Decode).
func (s *PrimitiveStorage) Entry(ctx context.Context, key string, dst any) (Meta, error) {
	return s.storage.Entry(ctx, key, dst)
}

func (s *PrimitiveStorage) SetObject(ctx context.Context, key string, value any, expiry Expiry) error {
	obj, kind := wrap(value)
	if kind.Primitive() {
		s.log.Debug("wrapped primitive value", Fields{"key": key, "kind": kind.String()})
	}
	return s.storage.SetObject(ctx, key, obj, expiry)
}

func (s *PrimitiveStorage) RemoveObject(ctx context.Context, key string) error {
	return s.storage.RemoveObject(ctx, key)
}

func (s *PrimitiveStorage) RemoveAll(ctx context.Context) error {
	return s.storage.RemoveAll(ctx)
}

func (s *PrimitiveStorage) RemoveExpiredObjects(ctx context.Context) error {
	return s.storage.RemoveExpiredObjects(ctx)
}
