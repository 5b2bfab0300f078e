package value

import (
	"fmt"
	"math"
)

// TypeError reports a failed typed extraction (the spec's InvalidType).
// It is a distinct, non-fatal result — callers should check for it with
// errors.As, not treat it as a parse failure.
type TypeError struct {
	Got  Kind
	Want string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value: cannot extract %s as %s", e.Got, e.Want)
}

func typeErr(k Kind, want string) error { return &TypeError{Got: k, Want: want} }

// Bool returns v's boolean, requiring an exact Bool kind match.
func (v *Value) Bool() (bool, error) {
	if v.kind != Bool {
		return false, typeErr(v.kind, "bool")
	}
	return v.b, nil
}

// Str returns v's string, requiring an exact String kind match.
func (v *Value) Str() (string, error) {
	if v.kind != String {
		return "", typeErr(v.kind, "string")
	}
	return string(v.str), nil
}

// Float64 converts any numeric kind to float64 via a lossy cast.
func (v *Value) Float64() (float64, error) {
	switch v.kind {
	case Int:
		return float64(v.i), nil
	case Uint:
		return float64(v.u), nil
	case Float:
		return v.f, nil
	default:
		return 0, typeErr(v.kind, "float64")
	}
}

// Float32 converts any numeric kind to float32 via a lossy cast.
func (v *Value) Float32() (float32, error) {
	f, err := v.Float64()
	if err != nil {
		return 0, typeErr(v.kind, "float32")
	}
	return float32(f), nil
}

// Signed is the set of integer types GetInt may target.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Unsigned is the set of integer types GetUint may target.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

func signedBounds(bits uint) (int64, int64) {
	if bits >= 64 {
		return math.MinInt64, math.MaxInt64
	}
	hi := int64(1)<<(bits-1) - 1
	return -hi - 1, hi
}

func unsignedMax(bits uint) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return uint64(1)<<bits - 1
}

// GetInt extracts v as a signed integer of type T, per the narrowing rules:
//   - stored Int succeeds iff it fits within [T's min, T's max].
//   - stored Uint succeeds iff it is <= T's max.
//   - stored Float, String, Bool, Array, Object, Null always fail.
func GetInt[T Signed](v *Value) (T, error) {
	var zero T
	bits := bitSize(zero)
	lo, hi := signedBounds(bits)
	switch v.kind {
	case Int:
		if v.i < lo || v.i > hi {
			return zero, typeErr(v.kind, "int")
		}
		return T(v.i), nil
	case Uint:
		if v.u > uint64(hi) {
			return zero, typeErr(v.kind, "int")
		}
		return T(v.u), nil
	default:
		return zero, typeErr(v.kind, "int")
	}
}

// GetUint extracts v as an unsigned integer of type T, per the narrowing
// rules:
//   - stored Uint succeeds iff it is <= T's max.
//   - stored Int always fails, even when non-negative (IntNum never
//     narrows to an unsigned target per spec).
//   - stored Float, String, Bool, Array, Object, Null always fail.
func GetUint[T Unsigned](v *Value) (T, error) {
	var zero T
	bits := bitSize(zero)
	max := unsignedMax(bits)
	switch v.kind {
	case Uint:
		if v.u > max {
			return zero, typeErr(v.kind, "uint")
		}
		return T(v.u), nil
	default:
		return zero, typeErr(v.kind, "uint")
	}
}

func bitSize[T Signed | Unsigned](zero T) uint {
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	case int64, uint64:
		return 64
	case int, uint:
		return 64
	default:
		return 64
	}
}
