package fitfile

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/fitcourse/internal/options"
	"github.com/arloliu/fitcourse/section"
)

const defaultRecordCapacity = 64

// EncoderConfig holds the settings of an Encoder.
type EncoderConfig struct {
	logger         *zap.Logger
	profileVersion uint16
	recordCapacity int
}

// NewEncoderConfig returns the default encoder configuration.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		logger:         zap.NewNop(),
		profileVersion: section.ProfileVersion,
		recordCapacity: defaultRecordCapacity,
	}
}

// Logger returns the logger used by the encoder.
func (c *EncoderConfig) Logger() *zap.Logger {
	return c.logger
}

// ProfileVersion returns the profile version written to the file header.
func (c *EncoderConfig) ProfileVersion() uint16 {
	return c.profileVersion
}

// EncoderOption is a functional option for configuring Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLogger sets the logger used for debug output. Default is a no-op logger.
func WithLogger(logger *zap.Logger) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger.With(zap.String("component", "fitfile"))
	})
}

// WithProfileVersion overrides the profile version written to the header.
// Default is 2078 (20.78).
func WithProfileVersion(version uint16) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if version == 0 {
			return fmt.Errorf("invalid profile version: %d", version)
		}
		c.profileVersion = version

		return nil
	})
}

// WithInitialCapacity sets the number of records the encoder preallocates.
func WithInitialCapacity(records int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if records < 0 {
			return fmt.Errorf("invalid initial capacity: %d", records)
		}
		c.recordCapacity = records

		return nil
	})
}
