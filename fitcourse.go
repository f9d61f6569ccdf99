// Package fitcourse writes FIT (Flexible and Interoperable Data Transfer)
// course files for GPS devices and route planners.
//
// A FIT file is a 14-byte header, a sequence of definition and data records
// and a 2-byte checksum trailer. Definition records declare the binary layout
// of a message; data records carry the encoded field values. The encoder
// emits a definition only when the layout of a message changes, so long runs
// of track points cost one definition record.
//
// # Core Features
//
//   - Semantic field types: timestamps, GPS semicircles, scaled distances and altitudes
//   - Fixed catalog of course messages: file_id, course, lap, record, course_point, event
//   - Per-channel definition memoization, up to 16 message streams per file
//   - Header and payload checksums compatible with every FIT reader
//   - Framing verification and optional compression (Zstd, S2, LZ4) for archival
//
// # Basic Usage
//
// Building a course with the course helper:
//
//	import "github.com/arloliu/fitcourse"
//
//	c, _ := fitcourse.NewCourse("Lake loop", start, time.Hour,
//	    course.Position{Lat: 47.37, Long: 8.54},
//	    course.Position{Lat: 47.37, Long: 8.54},
//	)
//	c.Point(start, course.Position{Lat: 47.37, Long: 8.54}, nil, nil)
//	file, _ := c.Finish(start.Add(time.Hour))
//	os.WriteFile("lake.fit", file.Bytes(), 0o644)
//
// Writing messages directly:
//
//	enc, _ := fitcourse.NewEncoder()
//	_ = enc.WriteFileID(fitfile.Values{
//	    "type":         profile.Enum(profile.FileCourse),
//	    "time_created": profile.Time(time.Now()),
//	})
//	_ = enc.WriteCourse(fitfile.Values{"name": profile.String("Lake loop")})
//	file, _ := enc.Finish()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fitfile and
// course packages. For fine-grained control use them directly; the field
// types and message catalog live in the profile package.
package fitcourse

import (
	"time"

	"github.com/arloliu/fitcourse/course"
	"github.com/arloliu/fitcourse/fitfile"
	"github.com/arloliu/fitcourse/format"
	"github.com/arloliu/fitcourse/profile"
)

// NewEncoder creates a new FIT stream encoder.
//
// Parameters:
//   - opts: Optional configuration functions (see fitfile.EncoderOption)
//
// Returns:
//   - *fitfile.Encoder: The created encoder
//   - error: An error if the configuration is invalid
//
// Available options:
//   - fitfile.WithLogger(*zap.Logger)
//   - fitfile.WithProfileVersion(uint16)
//   - fitfile.WithInitialCapacity(int)
func NewEncoder(opts ...fitfile.EncoderOption) (*fitfile.Encoder, error) {
	return fitfile.NewEncoder(opts...)
}

// NewCourse starts a course file. See course.New.
//
// Example:
//
//	c, err := fitcourse.NewCourse("Commute", start, 25*time.Minute, home, office,
//	    course.WithAscent(85),
//	    course.WithDescent(60),
//	)
func NewCourse(name string, start time.Time, totalTimerTime time.Duration, startPos, endPos course.Position, opts ...course.Option) (*course.Course, error) {
	return course.New(name, start, totalTimerTime, startPos, endPos, opts...)
}

// Verify checks the header, length and checksums of an encoded FIT file.
func Verify(data []byte) error {
	return fitfile.Verify(data)
}

// Decompress restores a file archived with fitfile.File.Compress and verifies it.
func Decompress(ct format.CompressionType, data []byte) ([]byte, error) {
	return fitfile.Decompress(ct, data)
}

// Messages returns the names of the messages the encoder knows, in catalog order.
func Messages() []string {
	return profile.Messages()
}
