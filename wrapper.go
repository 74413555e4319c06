package primstore

// Encoded field names of the carriers. Decode relies on them.
const (
	valueField = "value"
	imageField = "image"
)

// PrimitiveWrapper carries a single primitive value so that backends which
// persist structured values can store it under one uniform shape.
type PrimitiveWrapper[T any] struct {
	Value T `json:"value" msgpack:"value" cbor:"value"`
}

// ImageWrapper is the carrier for Image values.
type ImageWrapper struct {
	Image Image `json:"image" msgpack:"image" cbor:"image"`
}

// wrap substitutes the carrier for v when v is primitive.
// Non-primitive values (including carriers) come back untouched.
func wrap(v any) (any, Kind) {
	switch x := v.(type) {
	case Image:
		return ImageWrapper{Image: x}, KindImage
	case bool:
		return PrimitiveWrapper[bool]{Value: x}, KindBool
	case []bool:
		return PrimitiveWrapper[[]bool]{Value: x}, KindBools
	case string:
		return PrimitiveWrapper[string]{Value: x}, KindString
	case []string:
		return PrimitiveWrapper[[]string]{Value: x}, KindStrings
	case int:
		return PrimitiveWrapper[int]{Value: x}, KindInt
	case []int:
		return PrimitiveWrapper[[]int]{Value: x}, KindInts
	case float32:
		return PrimitiveWrapper[float32]{Value: x}, KindFloat32
	case []float32:
		return PrimitiveWrapper[[]float32]{Value: x}, KindFloat32s
	case float64:
		return PrimitiveWrapper[float64]{Value: x}, KindFloat64
	case []float64:
		return PrimitiveWrapper[[]float64]{Value: x}, KindFloat64s
	default:
		return v, KindNone
	}
}
