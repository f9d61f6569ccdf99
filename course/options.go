package course

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/fitcourse/fitfile"
	"github.com/arloliu/fitcourse/internal/options"
)

// Config holds the settings of a Course.
type Config struct {
	clock       func() time.Time
	logger      *zap.Logger
	ascent      *float64
	descent     *float64
	encoderOpts []fitfile.EncoderOption
}

// NewConfig returns the default course configuration.
func NewConfig() *Config {
	return &Config{
		clock:  time.Now,
		logger: zap.NewNop(),
	}
}

// Option is a functional option for configuring Course.
type Option = options.Option[*Config]

// WithClock sets the clock used for the file creation time and lap timestamp.
// Default is time.Now.
func WithClock(clock func() time.Time) Option {
	return options.New(func(c *Config) error {
		if clock == nil {
			return fmt.Errorf("clock must not be nil")
		}
		c.clock = clock

		return nil
	})
}

// WithAscent sets the total ascent of the lap in meters.
func WithAscent(meters float64) Option {
	return options.New(func(c *Config) error {
		if err := checkClimb("ascent", meters); err != nil {
			return err
		}
		c.ascent = &meters

		return nil
	})
}

// WithDescent sets the total descent of the lap in meters.
func WithDescent(meters float64) Option {
	return options.New(func(c *Config) error {
		if err := checkClimb("descent", meters); err != nil {
			return err
		}
		c.descent = &meters

		return nil
	})
}

// WithLogger sets the logger for the course and its encoder.
// Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
		c.encoderOpts = append(c.encoderOpts, fitfile.WithLogger(logger))
	})
}

// WithEncoderOptions passes options through to the underlying encoder.
func WithEncoderOptions(opts ...fitfile.EncoderOption) Option {
	return options.NoError(func(c *Config) {
		c.encoderOpts = append(c.encoderOpts, opts...)
	})
}

// the lap stores ascent and descent as uint16 meters
func checkClimb(name string, meters float64) error {
	if math.IsNaN(meters) || meters < 0 || meters > math.MaxUint16 {
		return fmt.Errorf("invalid %s: %v meters", name, meters)
	}

	return nil
}
