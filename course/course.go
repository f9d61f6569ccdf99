package course

import (
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/fitcourse/fitfile"
	"github.com/arloliu/fitcourse/internal/options"
	"github.com/arloliu/fitcourse/profile"
)

// Position is a geographic position in degrees.
type Position struct {
	Lat  float64
	Long float64
}

// Course writes a course file.
//
// Note: A Course is NOT thread-safe and NOT reusable. After Finish, create a new one.
type Course struct {
	*Config

	enc    *fitfile.Encoder
	err    error
	points int
	turns  int
}

// New starts a course file: it writes the file_id, course and lap messages
// and a timer start event at start.
//
// Parameters:
//   - name: Course name; keep it under 16 bytes, some devices truncate longer names
//   - start: Start time of the course
//   - totalTimerTime: Planned duration
//   - startPos, endPos: First and last position of the course
//   - opts: Optional configuration (clock, ascent, descent, logger)
//
// Returns:
//   - *Course: Course ready for points and turns
//   - error: Configuration error, or any error from writing the leading messages
func New(name string, start time.Time, totalTimerTime time.Duration, startPos, endPos Position, opts ...Option) (*Course, error) {
	config := NewConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	enc, err := fitfile.NewEncoder(config.encoderOpts...)
	if err != nil {
		return nil, err
	}

	c := &Course{Config: config, enc: enc}
	now := config.clock()

	if err := enc.WriteFileID(fitfile.Values{
		"type":         profile.Enum(profile.FileCourse),
		"time_created": profile.Time(now),
	}); err != nil {
		return nil, err
	}

	if err := enc.WriteCourse(fitfile.Values{"name": profile.String(name)}); err != nil {
		return nil, err
	}

	if err := enc.WriteLap(fitfile.Values{
		"timestamp":           profile.Time(now),
		"start_time":          profile.Time(start),
		"total_timer_time":    profile.Duration(totalTimerTime),
		"start_position_lat":  profile.Float(startPos.Lat),
		"start_position_long": profile.Float(startPos.Long),
		"end_position_lat":    profile.Float(endPos.Lat),
		"end_position_long":   profile.Float(endPos.Long),
		"total_ascent":        profile.FloatPtr(config.ascent),
		"total_descent":       profile.FloatPtr(config.descent),
	}); err != nil {
		return nil, err
	}

	if err := c.timerEvent(start, profile.EventTypeStart); err != nil {
		return nil, err
	}

	return c, nil
}

// Point adds the next track point. Altitude (meters) and distance (meters
// from the start) are optional.
func (c *Course) Point(t time.Time, pos Position, altitude, distance *float64) *Course {
	if c.err != nil {
		return c
	}

	c.err = c.enc.WriteRecord(fitfile.Values{
		"timestamp":     profile.Time(t),
		"position_lat":  profile.Float(pos.Lat),
		"position_long": profile.Float(pos.Long),
		"altitude":      profile.FloatPtr(altitude),
		"distance":      profile.FloatPtr(distance),
	})
	if c.err == nil {
		c.points++
	}

	return c
}

// Turn adds a turn instruction. Kind is a course point type such as "left"
// or "summit", see profile.EnumNames(profile.EnumCoursePoint). An empty name
// and a nil distance are omitted. Turns can be mixed with points or added
// after them.
func (c *Course) Turn(t time.Time, pos Position, kind, name string, distance *float64) *Course {
	if c.err != nil {
		return c
	}

	values := fitfile.Values{
		"timestamp":     profile.Time(t),
		"position_lat":  profile.Float(pos.Lat),
		"position_long": profile.Float(pos.Long),
		"type":          profile.Enum(kind),
		"distance":      profile.FloatPtr(distance),
	}
	if name != "" {
		values["name"] = profile.String(name)
	}

	c.err = c.enc.WriteCoursePoint(values)
	if c.err == nil {
		c.turns++
	}

	return c
}

// Err returns the first error recorded by Point or Turn.
func (c *Course) Err() error {
	return c.err
}

// Points returns the number of track points written.
func (c *Course) Points() int {
	return c.points
}

// Turns returns the number of turn instructions written.
func (c *Course) Turns() int {
	return c.turns
}

// Finish writes the timer stop event at end and returns the finished file.
//
// Returns:
//   - *fitfile.File: The course file
//   - error: The first error recorded by Point or Turn, or any error from the encoder
func (c *Course) Finish(end time.Time) (*fitfile.File, error) {
	if c.err != nil {
		return nil, c.err
	}

	if err := c.timerEvent(end, profile.EventTypeStopDisableAll); err != nil {
		return nil, err
	}

	file, err := c.enc.Finish()
	if err != nil {
		return nil, err
	}

	c.logger.Debug("finished course",
		zap.Int("points", c.points),
		zap.Int("turns", c.turns),
		zap.Int("bytes", file.Len()),
	)

	return file, nil
}

func (c *Course) timerEvent(t time.Time, eventType string) error {
	return c.enc.WriteEvent(fitfile.Values{
		"timestamp":   profile.Time(t),
		"event":       profile.Enum(profile.EventTimer),
		"event_type":  profile.Enum(eventType),
		"event_group": profile.Int(0),
	})
}
