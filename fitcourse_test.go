package fitcourse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fitcourse/course"
	"github.com/arloliu/fitcourse/fitfile"
	"github.com/arloliu/fitcourse/format"
	"github.com/arloliu/fitcourse/profile"
)

// TestNewEncoder verifies the wrapper applies encoder options
func TestNewEncoder(t *testing.T) {
	enc, err := NewEncoder(fitfile.WithProfileVersion(2100))
	require.NoError(t, err)
	require.Equal(t, uint16(2100), enc.ProfileVersion())

	_, err = NewEncoder(fitfile.WithInitialCapacity(-1))
	require.Error(t, err)
}

// TestNewCourse verifies a course built through the wrapper is a valid file
func TestNewCourse(t *testing.T) {
	start := time.Date(2024, 6, 1, 7, 30, 0, 0, time.UTC)
	home := course.Position{Lat: 47.3769, Long: 8.5417}
	lake := course.Position{Lat: 47.3525, Long: 8.5568}

	c, err := NewCourse("Lake loop", start, time.Hour, home, home, course.WithAscent(40))
	require.NoError(t, err)

	alt := 408.0
	for i := range 10 {
		dist := float64(i) * 150
		c.Point(start.Add(time.Duration(i)*time.Minute), home, &alt, &dist)
	}
	c.Turn(start.Add(10*time.Minute), lake, "right", "Quai", nil)

	file, err := c.Finish(start.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, Verify(file.Bytes()))
}

// TestCompressDecompress verifies archived files restore byte for byte
func TestCompressDecompress(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, enc.WriteFileID(fitfile.Values{"type": profile.Enum(profile.FileCourse)}))
	require.NoError(t, enc.WriteCourse(fitfile.Values{"name": profile.String("archive")}))

	file, err := enc.Finish()
	require.NoError(t, err)

	packed, err := file.Compress(format.CompressionZstd)
	require.NoError(t, err)

	restored, err := Decompress(format.CompressionZstd, packed)
	require.NoError(t, err)
	require.Equal(t, file.Bytes(), restored)
}

// TestMessages verifies the catalog order
func TestMessages(t *testing.T) {
	require.Equal(t, []string{"file_id", "course", "lap", "record", "course_point", "event"}, Messages())
}
