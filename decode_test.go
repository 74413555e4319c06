package primstore

import (
	"reflect"
	"testing"

	"github.com/unkn0wn-root/primstore/codec"
)

var testCodecs = []codec.Codec{codec.JSON{}, codec.Msgpack{}, codec.MustCBOR(false), codec.MustCBOR(true)}

func encode(t *testing.T, c codec.Codec, v any) []byte {
	t.Helper()
	b, err := c.Encode(v)
	if err != nil {
		t.Fatalf("%s encode %T: %v", c.Name(), v, err)
	}
	return b
}

func TestDecodeUnwrapsCarrier(t *testing.T) {
	for _, c := range testCodecs {
		t.Run(c.Name(), func(t *testing.T) {
			obj, _ := wrap([]string{"a", "b"})
			var got []string
			if err := Decode(c, encode(t, c, obj), &got); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, []string{"a", "b"}) {
				t.Fatalf("got %v", got)
			}

			obj, _ = wrap(Image{Format: "gif", Data: []byte("GIF89a")})
			var img Image
			if err := Decode(c, encode(t, c, obj), &img); err != nil {
				t.Fatal(err)
			}
			if img.Format != "gif" || string(img.Data) != "GIF89a" {
				t.Fatalf("image = %+v", img)
			}
		})
	}
}

func TestDecodeFallsBackToRaw(t *testing.T) {
	for _, c := range testCodecs {
		t.Run(c.Name(), func(t *testing.T) {
			var f float64
			if err := Decode(c, encode(t, c, 3.25), &f); err != nil || f != 3.25 {
				t.Fatalf("raw float: f=%v err=%v", f, err)
			}
			var s string
			if err := Decode(c, encode(t, c, "plain"), &s); err != nil || s != "plain" {
				t.Fatalf("raw string: s=%q err=%v", s, err)
			}
		})
	}
}

// A map that decodes cleanly into the probe but isn't a carrier must not be
// taken for one.
func TestDecodeRejectsCarrierLookalikes(t *testing.T) {
	for _, c := range testCodecs {
		t.Run(c.Name(), func(t *testing.T) {
			b := encode(t, c, map[string]string{"value": "x", "extra": "y"})
			var s string
			if err := Decode(c, b, &s); err == nil {
				t.Fatalf("expected decode error, got s=%q", s)
			}

			b = encode(t, c, map[string]int{"other": 1})
			var n int
			if err := Decode(c, b, &n); err == nil {
				t.Fatalf("expected decode error, got n=%d", n)
			}
		})
	}
}

func TestDecodeExplicitCarrier(t *testing.T) {
	for _, c := range testCodecs {
		t.Run(c.Name(), func(t *testing.T) {
			obj, _ := wrap(42)
			var w PrimitiveWrapper[int]
			if err := Decode(c, encode(t, c, obj), &w); err != nil || w.Value != 42 {
				t.Fatalf("w=%+v err=%v", w, err)
			}
		})
	}
}

func TestDecodeNonPrimitiveIsRaw(t *testing.T) {
	in := point{X: 3, Y: 4}
	for _, c := range testCodecs {
		t.Run(c.Name(), func(t *testing.T) {
			var out point
			if err := Decode(c, encode(t, c, in), &out); err != nil || out != in {
				t.Fatalf("out=%+v err=%v", out, err)
			}
		})
	}
}

func TestDecodeEmptySliceCarrier(t *testing.T) {
	for _, c := range testCodecs {
		t.Run(c.Name(), func(t *testing.T) {
			obj, _ := wrap([]int{})
			got := []int{9}
			if err := Decode(c, encode(t, c, obj), &got); err != nil {
				t.Fatal(err)
			}
			if len(got) != 0 {
				t.Fatalf("got %v, want empty", got)
			}
		})
	}
}
