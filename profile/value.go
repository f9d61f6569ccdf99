package profile

import (
	"fmt"
	"time"
)

// Kind identifies what a Value holds.
type Kind uint8

const (
	KindNone   Kind = iota // KindNone marks a field that was not supplied.
	KindInt                // KindInt holds a signed integer.
	KindUint               // KindUint holds an unsigned integer.
	KindFloat              // KindFloat holds a real number.
	KindString             // KindString holds text or an enum name.
	KindTime               // KindTime holds milliseconds since the Unix epoch.
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is an optional application value for a single message field.
//
// The zero Value is "not supplied": the field is dropped from the message
// instead of being encoded with a default.
type Value struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
}

// None returns an absent value.
func None() Value { return Value{} }

// Int returns a signed integer value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Uint returns an unsigned integer value.
func Uint(v uint64) Value { return Value{kind: KindUint, u: v} }

// Float returns a real value, e.g. degrees, meters or seconds.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String returns a text value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Enum returns an enum value referenced by name.
func Enum(name string) Value { return Value{kind: KindString, s: name} }

// Time returns a timestamp value with millisecond precision.
func Time(t time.Time) Value { return Value{kind: KindTime, i: t.UnixMilli()} }

// UnixMilli returns a timestamp value from milliseconds since the Unix epoch.
func UnixMilli(ms int64) Value { return Value{kind: KindTime, i: ms} }

// Duration returns a duration as a real number of seconds.
func Duration(d time.Duration) Value { return Float(d.Seconds()) }

// FloatPtr returns Float(*v), or an absent value when v is nil.
func FloatPtr(v *float64) Value {
	if v == nil {
		return None()
	}

	return Float(*v)
}

// Kind returns the kind of value held.
func (v Value) Kind() Kind { return v.kind }

// Present reports whether the value was supplied.
func (v Value) Present() bool { return v.kind != KindNone }

// Str returns the text held by a string value.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.s, true
}

// Number returns the value as a real number. Timestamps are returned in
// milliseconds since the Unix epoch.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt, KindTime:
		return float64(v.i), true
	case KindUint:
		return float64(v.u), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// integer returns the value truncated toward zero as int64.
func (v Value) integer() (int64, bool) {
	switch v.kind {
	case KindInt, KindTime:
		return v.i, true
	case KindUint:
		return int64(v.u), true //nolint:gosec
	case KindFloat:
		return int64(v.f), true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "<none>"
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindUint:
		return fmt.Sprintf("%d", v.u)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindTime:
		return time.UnixMilli(v.i).UTC().Format(time.RFC3339Nano)
	default:
		return "<invalid>"
	}
}
