package skema

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// numberLike matches json.Number from either encoding/json or go-json.
type numberLike interface {
	Float64() (float64, error)
	String() string
}

// IsNull reports whether v stands for null: untyped nil or a nil pointer,
// map, slice, func, chan or interface.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// TypeOf names the dynamic type of v the way messages refer to it:
// "number", "string", "boolean", "function", "undefined" or "object".
func TypeOf(v any) string {
	if v == nil {
		return "object"
	}
	if v == Undefined {
		return "undefined"
	}
	if n, ok := v.(numberLike); ok {
		if _, err := n.Float64(); err != nil {
			return "string"
		}
		return "number"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Func:
		return "function"
	default:
		return "object"
	}
}

// ToFloat converts any Go number or json.Number to float64. ok is false for
// every other type and for json.Number values that do not parse.
func ToFloat(v any) (f float64, ok bool) {
	if n, isNum := v.(numberLike); isNum {
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// FormatNumber renders f like JavaScript's Number#toString: no trailing
// fraction for integers, Infinity/-Infinity/NaN spelled out, and exponent
// notation outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatValue renders v for messages.
func FormatValue(v any) string {
	if IsNull(v) {
		return "null"
	}
	if v == Undefined {
		return "undefined"
	}
	if f, ok := ToFloat(v); ok {
		return FormatNumber(f)
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	}
	return "[object]"
}
