package checksum

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum_Empty(t *testing.T) {
	require.Equal(t, uint16(0), Sum(nil))
	require.Equal(t, uint16(0x1234), Update(0x1234, nil))
}

func TestSum_KnownValues(t *testing.T) {
	// CRC-16/ARC check value, which this nibble table implements.
	require.Equal(t, uint16(0xbb3d), Sum([]byte("123456789")))

	// Single byte: table lookups only.
	require.Equal(t, UpdateByte(0, 0x0e), Sum([]byte{0x0e}))
}

func TestUpdate_Continuation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := range 50 {
		a := make([]byte, rng.Intn(64))
		b := make([]byte, rng.Intn(64))
		rng.Read(a)
		rng.Read(b)

		whole := Sum(append(append([]byte{}, a...), b...))
		require.Equal(t, whole, Update(Sum(a), b), "iteration %d", i)
	}
}

func TestHash(t *testing.T) {
	data := []byte("course file payload")

	h := New(0)
	n, err := h.Write(data[:6])
	require.NoError(t, err)
	require.Equal(t, 6, n)
	_, _ = h.Write(data[6:])

	require.Equal(t, Sum(data), h.Sum16())
	require.Equal(t, int64(len(data)), h.Size())

	h.Reset()
	require.Equal(t, uint16(0), h.Sum16())
	require.Equal(t, int64(0), h.Size())

	var zero Hash
	_, _ = zero.Write(data)
	require.Equal(t, Sum(data), zero.Sum16())
}
