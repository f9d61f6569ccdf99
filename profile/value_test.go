package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValue_Presence(t *testing.T) {
	var zero Value
	require.False(t, zero.Present())
	require.False(t, None().Present())
	require.Equal(t, KindNone, zero.Kind())

	require.True(t, Int(0).Present())
	require.True(t, String("").Present())
	require.False(t, FloatPtr(nil).Present())

	alt := 55.0
	require.Equal(t, Float(55), FloatPtr(&alt))
}

func TestValue_Number(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 250*int(time.Millisecond), time.UTC)

	n, ok := Time(ts).Number()
	require.True(t, ok)
	require.Equal(t, float64(ts.UnixMilli()), n)

	n, ok = Uint(9).Number()
	require.True(t, ok)
	require.Equal(t, 9.0, n)

	_, ok = String("x").Number()
	require.False(t, ok)

	_, ok = Float(1).Str()
	require.False(t, ok)
}

func TestValue_String(t *testing.T) {
	require.Equal(t, "<none>", None().String())
	require.Equal(t, "-3", Int(-3).String())
	require.Equal(t, `"go right"`, String("go right").String())
	require.Equal(t, "1970-01-01T00:00:01Z", UnixMilli(1000).String())
}
