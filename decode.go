package primstore

import "github.com/unkn0wn-root/primstore/codec"

// Decode decodes b into dst, unwrapping a carrier when dst points to a
// primitive type. Backends call it on every read so that a value written
// through PrimitiveStorage comes back as the caller's type.
//
// Entries written without a carrier (directly against the backend) still
// decode: the carrier attempt fails and b is decoded raw. Asking for the
// carrier type itself (e.g. *PrimitiveWrapper[bool]) also works, since
// carriers are not primitive and always decode raw.
func Decode(c codec.Codec, b []byte, dst any) error {
	if probe, commit := carrierFor(dst); probe != nil {
		if err := c.Decode(b, probe); err == nil && commit() {
			return nil
		}
	}
	return c.Decode(b, dst)
}

// carrierFor returns a probe that a carrier decodes into and a commit func that
// copies the carried value into dst. commit reports false when the probe did
// not hold exactly the carrier's field, so a struct that merely decodes
// without error is not mistaken for a carrier. It returns a nil probe when dst
// is not a primitive pointer.
//
// The probe is a single-key map rather than the carrier struct: struct decoding
// silently zero-fills missing fields in every supported codec.
func carrierFor(dst any) (any, func() bool) {
	switch p := dst.(type) {
	case *Image:
		return probe(p, imageField)
	case *bool:
		return probe(p, valueField)
	case *[]bool:
		return probe(p, valueField)
	case *string:
		return probe(p, valueField)
	case *[]string:
		return probe(p, valueField)
	case *int:
		return probe(p, valueField)
	case *[]int:
		return probe(p, valueField)
	case *float32:
		return probe(p, valueField)
	case *[]float32:
		return probe(p, valueField)
	case *float64:
		return probe(p, valueField)
	case *[]float64:
		return probe(p, valueField)
	default:
		return nil, nil
	}
}

func probe[T any](p *T, field string) (any, func() bool) {
	m := make(map[string]T, 1)
	return &m, func() bool {
		v, ok := m[field]
		if !ok || len(m) != 1 {
			return false
		}
		*p = v
		return true
	}
}
