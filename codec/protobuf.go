package codec

import (
	"errors"
	"fmt"
	"reflect"

	"google.golang.org/protobuf/proto"
)

var ErrNotProtoMessage = errors.New("codec: value is not a proto.Message")

var messageType = reflect.TypeOf((*proto.Message)(nil)).Elem()

// Protobuf encodes proto.Message values only. Anything else, including the
// primitive carriers, fails with ErrNotProtoMessage, so pair it with a store
// that only ever holds messages.
type Protobuf struct{}

var _ Codec = Protobuf{}

func (Protobuf) Encode(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("protobuf encode %T: %w", v, ErrNotProtoMessage)
	}
	return proto.Marshal(m)
}

// Decode accepts either a message pointer (*mypb.User) or a pointer to a
// message pointer (**mypb.User); the latter is allocated when nil.
func (Protobuf) Decode(b []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return proto.Unmarshal(b, m)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		el := rv.Elem()
		if el.Kind() == reflect.Pointer && el.Type().Implements(messageType) {
			if el.IsNil() {
				el.Set(reflect.New(el.Type().Elem()))
			}
			return proto.Unmarshal(b, el.Interface().(proto.Message))
		}
	}
	return fmt.Errorf("protobuf decode %T: %w", v, ErrNotProtoMessage)
}

func (Protobuf) Name() string { return "protobuf" }
