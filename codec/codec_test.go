package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/wrapperspb"
)

type profile struct {
	ID      string    `json:"id" msgpack:"id" cbor:"id"`
	Tags    []string  `json:"tags" msgpack:"tags" cbor:"tags"`
	Updated time.Time `json:"updated" msgpack:"updated" cbor:"updated"`
}

func TestStructRoundTrip(t *testing.T) {
	in := profile{ID: "p1", Tags: []string{"a", "b"}, Updated: time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)}
	for _, c := range []Codec{JSON{}, Msgpack{}, MustCBOR(false), MustCBOR(true)} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Encode(in)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			var out profile
			if err := c.Decode(b, &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.ID != in.ID || strings.Join(out.Tags, ",") != "a,b" || !out.Updated.Equal(in.Updated) {
				t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
			}
		})
	}
}

func TestCBORDeterministicIsStable(t *testing.T) {
	c := MustCBOR(true)
	m := map[string]int{"z": 1, "a": 2, "m": 3}
	first, err := c.Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		b, err := c.Encode(m)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, b) {
			t.Fatalf("deterministic encoding differs on iteration %d", i)
		}
	}
}

func TestLimitRejectsOversizedPayload(t *testing.T) {
	c := Limit{Inner: JSON{}, MaxDecode: 8}
	b, err := c.Encode("this string is too long")
	if err != nil {
		t.Fatal(err)
	}
	var s string
	if err := c.Decode(b, &s); err == nil {
		t.Fatalf("expected size error")
	}

	small, _ := c.Encode("ok")
	if err := c.Decode(small, &s); err != nil || s != "ok" {
		t.Fatalf("small payload: s=%q err=%v", s, err)
	}
	if c.Name() != "limit(json)" {
		t.Fatalf("name = %q", c.Name())
	}
}

func TestLimitDisabledWhenZero(t *testing.T) {
	c := Limit{Inner: Msgpack{}}
	b, _ := c.Encode(strings.Repeat("x", 4096))
	var s string
	if err := c.Decode(b, &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestProtobufMessageRoundTrip(t *testing.T) {
	c := Protobuf{}
	b, err := c.Encode(wrapperspb.String("hello"))
	if err != nil {
		t.Fatal(err)
	}

	direct := &wrapperspb.StringValue{}
	if err := c.Decode(b, direct); err != nil || direct.GetValue() != "hello" {
		t.Fatalf("decode into message: v=%q err=%v", direct.GetValue(), err)
	}

	var viaPtr *wrapperspb.StringValue
	if err := c.Decode(b, &viaPtr); err != nil || viaPtr.GetValue() != "hello" {
		t.Fatalf("decode into **message: v=%q err=%v", viaPtr.GetValue(), err)
	}
}

func TestProtobufRejectsNonMessages(t *testing.T) {
	c := Protobuf{}
	if _, err := c.Encode(true); !errors.Is(err, ErrNotProtoMessage) {
		t.Fatalf("encode bool: want ErrNotProtoMessage, got %v", err)
	}
	var s string
	if err := c.Decode([]byte{0x0a, 0x01, 'x'}, &s); !errors.Is(err, ErrNotProtoMessage) {
		t.Fatalf("decode into *string: want ErrNotProtoMessage, got %v", err)
	}
}
