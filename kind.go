package primstore

// Kind identifies a recognised primitive type. The set is closed.
type Kind uint8

const (
	KindNone Kind = iota
	KindImage
	KindBool
	KindBools
	KindString
	KindStrings
	KindInt
	KindInts
	KindFloat32
	KindFloat32s
	KindFloat64
	KindFloat64s
)

var kindNames = [...]string{
	KindNone:     "none",
	KindImage:    "image",
	KindBool:     "bool",
	KindBools:    "[]bool",
	KindString:   "string",
	KindStrings:  "[]string",
	KindInt:      "int",
	KindInts:     "[]int",
	KindFloat32:  "float32",
	KindFloat32s: "[]float32",
	KindFloat64:  "float64",
	KindFloat64s: "[]float64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Primitive reports whether k is one of the recognised kinds.
func (k Kind) Primitive() bool { return k > KindNone && int(k) < len(kindNames) }

// KindOf classifies the dynamic type of v. Matching is by exact type identity:
// named types, pointers and other containers are KindNone.
func KindOf(v any) Kind {
	switch v.(type) {
	case Image:
		return KindImage
	case bool:
		return KindBool
	case []bool:
		return KindBools
	case string:
		return KindString
	case []string:
		return KindStrings
	case int:
		return KindInt
	case []int:
		return KindInts
	case float32:
		return KindFloat32
	case []float32:
		return KindFloat32s
	case float64:
		return KindFloat64
	case []float64:
		return KindFloat64s
	default:
		return KindNone
	}
}

// Classify returns the Kind of T without needing an instance.
// Interface types classify as KindNone.
func Classify[T any]() Kind {
	var zero T
	return KindOf(zero)
}

func IsPrimitive[T any]() bool { return Classify[T]().Primitive() }
