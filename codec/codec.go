// Package codec serializes stored values to bytes.
//
// Codecs are type-erased: a backend persists values of many types behind one
// codec, so Encode takes any and Decode fills a caller-supplied pointer.
package codec

// Codec encodes/decodes values to []byte for storage.
type Codec interface {
	Encode(v any) ([]byte, error)
	// Decode decodes b into v, which must be a non-nil pointer.
	Decode(b []byte, v any) error
	// Name identifies the codec in logs.
	Name() string
}
