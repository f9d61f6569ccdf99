package profile

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/arloliu/fitcourse/endian"
	"github.com/arloliu/fitcourse/errs"
	"github.com/arloliu/fitcourse/format"
	"github.com/stretchr/testify/require"
)

func TestLookupType(t *testing.T) {
	for _, name := range TypeNames() {
		ft, err := LookupType(name)
		require.NoError(t, err)
		require.Equal(t, name, ft.Name())
	}

	_, err := LookupType("float64")
	require.ErrorIs(t, err, errs.ErrUnknownType)
	require.Contains(t, err.Error(), "float64")

	require.Len(t, TypeNames(), 17)
}

func TestFieldType_BaseTypes(t *testing.T) {
	tests := []struct {
		ft   FieldType
		base format.BaseType
		size int
	}{
		{Sint8, format.BaseSint8, 1},
		{Uint8, format.BaseUint8, 1},
		{Sint16, format.BaseSint16, 2},
		{Uint16, format.BaseUint16, 2},
		{Sint32, format.BaseSint32, 4},
		{Uint32, format.BaseUint32, 4},
		{Text, format.BaseString, 0},
		{Seconds, format.BaseUint32, 4},
		{Distance, format.BaseUint32, 4},
		{Altitude, format.BaseUint16, 2},
		{Semicircles, format.BaseSint32, 4},
		{DateTime, format.BaseUint32, 4},
		{EnumFile, format.BaseEnum, 1},
		{EnumCoursePoint, format.BaseEnum, 1},
	}

	for _, tt := range tests {
		t.Run(tt.ft.Name(), func(t *testing.T) {
			require.Equal(t, tt.base, tt.ft.BaseType())
			require.Equal(t, tt.size, tt.ft.Size())
		})
	}
}

func TestFieldType_Transforms(t *testing.T) {
	tests := []struct {
		name     string
		ft       FieldType
		value    Value
		expected []byte
	}{
		{"seconds", Seconds, Float(60), []byte{0x00, 0x00, 0xea, 0x60}},
		{"seconds from duration", Seconds, Duration(90 * time.Second), []byte{0x00, 0x01, 0x5f, 0x90}},
		{"distance", Distance, Float(123.456), []byte{0x00, 0x00, 0x30, 0x3a}},
		{"altitude", Altitude, Float(50), []byte{0x0a, 0xbe}},
		{"altitude floor", Altitude, Float(-500), []byte{0x00, 0x00}},
		{"semicircles positive", Semicircles, Float(45), []byte{0x20, 0x00, 0x00, 0x00}},
		{"semicircles negative", Semicircles, Float(-45), []byte{0xe0, 0x00, 0x00, 0x00}},
		{"semicircles min", Semicircles, Float(-180), []byte{0x80, 0x00, 0x00, 0x00}},
		{"date_time", DateTime, Time(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), []byte{0x3f, 0xf4, 0xb4, 0x80}},
		{"date_time epoch", DateTime, Time(time.Date(1989, 12, 31, 0, 0, 0, 0, time.UTC)), []byte{0, 0, 0, 0}},
		{"date_time half rounds up", DateTime, UnixMilli(DateTimeOffset*1000 + 500), []byte{0, 0, 0, 1}},
		{"date_time below half", DateTime, UnixMilli(DateTimeOffset*1000 + 499), []byte{0, 0, 0, 0}},
		{"date_time before epoch wraps", DateTime, UnixMilli(0), []byte{0xda, 0x62, 0xb4, 0x00}},
		{"uint16", Uint16, Int(300), []byte{0x01, 0x2c}},
		{"uint16 from float truncates", Uint16, Float(300.9), []byte{0x01, 0x2c}},
		{"uint8", Uint8, Uint(7), []byte{0x07}},
		{"sint8 negative", Sint8, Int(-1), []byte{0xff}},
		{"sint16 negative", Sint16, Int(-2), []byte{0xff, 0xfe}},
		{"uint32", Uint32, Uint(0xdeadbeef), []byte{0xde, 0xad, 0xbe, 0xef}},
		{"enum", EnumFile, Enum("course"), []byte{0x06}},
		{"enum course point", EnumCoursePoint, Enum("u_turn"), []byte{23}},
		{"string", Text, String("foo"), []byte{'f', 'o', 'o', 0}},
		{"empty string", Text, String(""), []byte{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := tt.ft.EncodedSize(tt.value)
			require.NoError(t, err)
			require.Equal(t, len(tt.expected), size)

			got, err := Encode(tt.ft, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestFieldType_LittleEndianEngine(t *testing.T) {
	got, err := Altitude.Append(nil, endian.GetLittleEndianEngine(), Float(50))
	require.NoError(t, err)
	require.Equal(t, []byte{0xbe, 0x0a}, got)
}

func TestFieldType_RoundTrip(t *testing.T) {
	t.Run("semicircles", func(t *testing.T) {
		for _, deg := range []float64{45, -45, 0, 1, -179.999, 12.3456789, 89.99} {
			b, err := Encode(Semicircles, Float(deg))
			require.NoError(t, err)
			sc := int32(binary.BigEndian.Uint32(b)) //nolint:gosec
			require.InDelta(t, deg, SemicirclesToDegrees(sc), 1e-6)
		}
		require.Equal(t, int64(math.Round(45.0/180*(1<<31))), DegreesToSemicircles(45))
	})

	t.Run("distance", func(t *testing.T) {
		for _, m := range []float64{0, 0.01, 150, 42195.5} {
			b, err := Encode(Distance, Float(m))
			require.NoError(t, err)
			require.InDelta(t, m, float64(binary.BigEndian.Uint32(b))/100, 0.005)
		}
	})

	t.Run("altitude", func(t *testing.T) {
		for _, m := range []float64{-12.4, 0, 55, 8848.86} {
			b, err := Encode(Altitude, Float(m))
			require.NoError(t, err)
			require.InDelta(t, m, float64(binary.BigEndian.Uint16(b))/5-500, 0.1)
		}
	})

	t.Run("date_time", func(t *testing.T) {
		ts := time.Date(2023, 6, 15, 8, 30, 12, 0, time.UTC)
		b, err := Encode(DateTime, Time(ts))
		require.NoError(t, err)
		decoded := time.Unix(int64(binary.BigEndian.Uint32(b))+DateTimeOffset, 0).UTC()
		require.Equal(t, ts, decoded)
	})
}

func TestFieldType_Strings(t *testing.T) {
	t.Run("multi-byte", func(t *testing.T) {
		size, err := Text.EncodedSize(String("café"))
		require.NoError(t, err)
		require.Equal(t, 6, size)

		got, err := Encode(Text, String("café"))
		require.NoError(t, err)
		require.Equal(t, []byte{'c', 'a', 'f', 0xc3, 0xa9, 0}, got)
	})

	t.Run("astral plane", func(t *testing.T) {
		got, err := Encode(Text, String("😀"))
		require.NoError(t, err)
		require.Equal(t, []byte{0xf0, 0x9f, 0x98, 0x80, 0}, got)
	})

	t.Run("invalid utf-8 is replaced", func(t *testing.T) {
		got, err := Encode(Text, String("a\xffb"))
		require.NoError(t, err)
		require.Equal(t, []byte{'a', 0xef, 0xbf, 0xbd, 'b', 0}, got)
		require.Equal(t, len(got), EncodedStringLen("a\xffb"))
	})

	t.Run("maximum size", func(t *testing.T) {
		size, err := Text.EncodedSize(String(strings.Repeat("a", MaxFieldSize-1)))
		require.NoError(t, err)
		require.Equal(t, MaxFieldSize, size)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := Text.EncodedSize(String(strings.Repeat("a", MaxFieldSize)))
		require.ErrorIs(t, err, errs.ErrFieldTooLarge)

		_, err = Encode(Text, String(strings.Repeat("é", 128)))
		require.ErrorIs(t, err, errs.ErrFieldTooLarge)
	})
}

func TestFieldType_Errors(t *testing.T) {
	t.Run("unknown enum value", func(t *testing.T) {
		_, err := Encode(EnumCoursePoint, Enum("backflip"))
		require.ErrorIs(t, err, errs.ErrUnknownEnumValue)
		require.Contains(t, err.Error(), "backflip")
	})

	t.Run("wrong kind", func(t *testing.T) {
		_, err := Encode(Distance, String("far"))
		require.ErrorIs(t, err, errs.ErrInvalidValue)

		_, err = Encode(Text, Float(1))
		require.ErrorIs(t, err, errs.ErrInvalidValue)

		_, err = Encode(EnumEvent, Int(0))
		require.ErrorIs(t, err, errs.ErrInvalidValue)

		_, err = Encode(Uint8, None())
		require.ErrorIs(t, err, errs.ErrInvalidValue)
	})
}

func TestEnumLookup(t *testing.T) {
	n, ok := EnumValue(EnumEventType, EventTypeStopDisableAll)
	require.True(t, ok)
	require.Equal(t, uint8(9), n)

	_, ok = EnumValue(Uint8, "start")
	require.False(t, ok)

	names := EnumNames(EnumCoursePoint)
	require.Len(t, names, 26)
	require.Equal(t, "generic", names[0])
	require.Equal(t, "segment_end", names[25])
	require.Nil(t, EnumNames(Distance))
}
