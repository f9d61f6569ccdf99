package profile

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/fitcourse/endian"
	"github.com/arloliu/fitcourse/errs"
	"github.com/arloliu/fitcourse/format"
)

// DateTimeOffset is the number of seconds between the Unix epoch and the FIT
// epoch, 1989-12-31T00:00:00Z.
const DateTimeOffset = 631065600

// MaxFieldSize is the largest encoded field size a definition record can declare.
const MaxFieldSize = math.MaxUint8

// FieldType maps application values of one semantic kind to their wire encoding.
//
// Implementations are immutable. Append writes exactly EncodedSize(v) bytes.
type FieldType interface {
	// Name returns the registry name of the type.
	Name() string
	// Size returns the fixed wire size in bytes, or 0 for variable-length types.
	Size() int
	// BaseType returns the wire tag declared in definition records.
	BaseType() format.BaseType
	// EncodedSize returns the number of bytes Append writes for v.
	EncodedSize(v Value) (int, error)
	// Append appends the wire encoding of v to dst.
	Append(dst []byte, engine endian.EndianEngine, v Value) ([]byte, error)
}

// Encode returns the big-endian wire encoding of v using t.
func Encode(t FieldType, v Value) ([]byte, error) {
	size, err := t.EncodedSize(v)
	if err != nil {
		return nil, err
	}

	return t.Append(make([]byte, 0, size), endian.GetBigEndianEngine(), v)
}

// appendInt appends the low bytes of n using the width of base.
func appendInt(dst []byte, engine endian.EndianEngine, base format.BaseType, n int64) []byte {
	switch base.Size() {
	case 1:
		return append(dst, byte(n))
	case 2:
		return engine.AppendUint16(dst, uint16(n)) //nolint:gosec
	default:
		return engine.AppendUint32(dst, uint32(n)) //nolint:gosec
	}
}

func invalidValue(t FieldType, v Value) error {
	return fmt.Errorf("%w: %s cannot encode %s value", errs.ErrInvalidValue, t.Name(), v.Kind())
}

// intType stores integers as-is, truncated to the base width.
type intType struct {
	name string
	base format.BaseType
}

func (t intType) Name() string              { return t.name }
func (t intType) Size() int                 { return t.base.Size() }
func (t intType) BaseType() format.BaseType { return t.base }

func (t intType) EncodedSize(v Value) (int, error) {
	if _, ok := v.integer(); !ok {
		return 0, invalidValue(t, v)
	}

	return t.Size(), nil
}

func (t intType) Append(dst []byte, engine endian.EndianEngine, v Value) ([]byte, error) {
	n, ok := v.integer()
	if !ok {
		return dst, invalidValue(t, v)
	}

	return appendInt(dst, engine, t.base, n), nil
}

// scaledType stores round((v + offset) × scale).
type scaledType struct {
	name   string
	base   format.BaseType
	scale  float64
	offset float64
}

func (t scaledType) Name() string              { return t.name }
func (t scaledType) Size() int                 { return t.base.Size() }
func (t scaledType) BaseType() format.BaseType { return t.base }

func (t scaledType) EncodedSize(v Value) (int, error) {
	if _, ok := v.Number(); !ok {
		return 0, invalidValue(t, v)
	}

	return t.Size(), nil
}

func (t scaledType) Append(dst []byte, engine endian.EndianEngine, v Value) ([]byte, error) {
	f, ok := v.Number()
	if !ok {
		return dst, invalidValue(t, v)
	}

	return appendInt(dst, engine, t.base, int64(math.Round((f+t.offset)*t.scale))), nil
}

// semicircleType stores degrees as round(v / 180 × 2^31) in a signed 32-bit field.
type semicircleType struct{}

func (semicircleType) Name() string              { return "semicircles" }
func (semicircleType) Size() int                 { return 4 }
func (semicircleType) BaseType() format.BaseType { return format.BaseSint32 }

func (t semicircleType) EncodedSize(v Value) (int, error) {
	if _, ok := v.Number(); !ok {
		return 0, invalidValue(t, v)
	}

	return 4, nil
}

func (t semicircleType) Append(dst []byte, engine endian.EndianEngine, v Value) ([]byte, error) {
	f, ok := v.Number()
	if !ok {
		return dst, invalidValue(t, v)
	}

	return appendInt(dst, engine, format.BaseSint32, DegreesToSemicircles(f)), nil
}

// DegreesToSemicircles converts degrees to semicircles before width truncation.
func DegreesToSemicircles(deg float64) int64 {
	return int64(math.Round(deg / 180 * (1 << 31)))
}

// SemicirclesToDegrees converts a wire semicircle value back to degrees.
func SemicirclesToDegrees(sc int32) float64 {
	return float64(sc) * 180 / (1 << 31)
}

// dateTimeType stores Unix milliseconds as seconds since the FIT epoch.
type dateTimeType struct{}

func (dateTimeType) Name() string              { return "date_time" }
func (dateTimeType) Size() int                 { return 4 }
func (dateTimeType) BaseType() format.BaseType { return format.BaseUint32 }

func (t dateTimeType) EncodedSize(v Value) (int, error) {
	if _, ok := v.Number(); !ok {
		return 0, invalidValue(t, v)
	}

	return 4, nil
}

func (t dateTimeType) Append(dst []byte, engine endian.EndianEngine, v Value) ([]byte, error) {
	ms, ok := v.Number()
	if !ok {
		return dst, invalidValue(t, v)
	}

	// Dates before the FIT epoch wrap around.
	return appendInt(dst, engine, format.BaseUint32, int64(math.Round(ms/1000))-DateTimeOffset), nil
}

// enumType stores an enum name as its one-byte table value.
type enumType struct {
	name   string
	values map[string]uint8
}

func (t enumType) Name() string              { return t.name }
func (t enumType) Size() int                 { return 1 }
func (t enumType) BaseType() format.BaseType { return format.BaseEnum }

func (t enumType) lookup(v Value) (uint8, error) {
	name, ok := v.Str()
	if !ok {
		return 0, invalidValue(t, v)
	}

	n, ok := t.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a member of %s", errs.ErrUnknownEnumValue, name, t.name)
	}

	return n, nil
}

func (t enumType) EncodedSize(v Value) (int, error) {
	if _, err := t.lookup(v); err != nil {
		return 0, err
	}

	return 1, nil
}

func (t enumType) Append(dst []byte, _ endian.EndianEngine, v Value) ([]byte, error) {
	n, err := t.lookup(v)
	if err != nil {
		return dst, err
	}

	return append(dst, n), nil
}

// stringType stores a null-terminated UTF-8 string.
type stringType struct{}

func (stringType) Name() string              { return "string" }
func (stringType) Size() int                 { return 0 }
func (stringType) BaseType() format.BaseType { return format.BaseString }

func (t stringType) EncodedSize(v Value) (int, error) {
	s, ok := v.Str()
	if !ok {
		return 0, invalidValue(t, v)
	}

	size := EncodedStringLen(s)
	if size > MaxFieldSize {
		return 0, fmt.Errorf("%w: string encodes to %d bytes, maximum %d", errs.ErrFieldTooLarge, size, MaxFieldSize)
	}

	return size, nil
}

func (t stringType) Append(dst []byte, _ endian.EndianEngine, v Value) ([]byte, error) {
	if _, err := t.EncodedSize(v); err != nil {
		return dst, err
	}
	s, _ := v.Str()

	return AppendString(dst, s), nil
}

// Registered field types.
var (
	Sint8  FieldType = intType{name: "sint8", base: format.BaseSint8}
	Uint8  FieldType = intType{name: "uint8", base: format.BaseUint8}
	Sint16 FieldType = intType{name: "sint16", base: format.BaseSint16}
	Uint16 FieldType = intType{name: "uint16", base: format.BaseUint16}
	Sint32 FieldType = intType{name: "sint32", base: format.BaseSint32}
	Uint32 FieldType = intType{name: "uint32", base: format.BaseUint32}
	Text   FieldType = stringType{}

	Seconds     FieldType = scaledType{name: "seconds", base: format.BaseUint32, scale: 1000}
	Distance    FieldType = scaledType{name: "distance", base: format.BaseUint32, scale: 100}
	Altitude    FieldType = scaledType{name: "altitude", base: format.BaseUint16, scale: 5, offset: 500}
	Semicircles FieldType = semicircleType{}
	DateTime    FieldType = dateTimeType{}

	EnumFile        FieldType = enumType{name: "enum_file", values: fileValues}
	EnumSport       FieldType = enumType{name: "enum_sport", values: sportValues}
	EnumEvent       FieldType = enumType{name: "enum_event", values: eventValues}
	EnumEventType   FieldType = enumType{name: "enum_event_type", values: eventTypeValues}
	EnumCoursePoint FieldType = enumType{name: "enum_course_point", values: coursePointValues}
)

var typeRegistry = func() map[string]FieldType {
	types := []FieldType{
		EnumFile, EnumSport, EnumEvent, EnumEventType, EnumCoursePoint,
		Sint8, Uint8, Sint16, Uint16, Sint32, Uint32, Text,
		Seconds, Distance, Semicircles, Altitude, DateTime,
	}

	m := make(map[string]FieldType, len(types))
	for _, t := range types {
		m[t.Name()] = t
	}

	return m
}()

// LookupType returns the registered field type with the given name.
func LookupType(name string) (FieldType, error) {
	t, ok := typeRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownType, name)
	}

	return t, nil
}

// TypeNames returns the names of all registered field types, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(typeRegistry))
	for name := range typeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
