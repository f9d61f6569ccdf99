package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type encoderConfig struct {
	profileVersion uint16
	capacity       int
	calls          []string
}

func withProfileVersion(v uint16) Option[*encoderConfig] {
	return NoError(func(c *encoderConfig) {
		c.profileVersion = v
		c.calls = append(c.calls, "profile")
	})
}

func withCapacity(n int) Option[*encoderConfig] {
	return New(func(c *encoderConfig) error {
		if n < 0 {
			return errors.New("capacity cannot be negative")
		}
		c.capacity = n
		c.calls = append(c.calls, "capacity")

		return nil
	})
}

func TestApply(t *testing.T) {
	cfg := &encoderConfig{}

	err := Apply(cfg, withProfileVersion(2105), withCapacity(32))
	require.NoError(t, err)
	require.Equal(t, uint16(2105), cfg.profileVersion)
	require.Equal(t, 32, cfg.capacity)
	require.Equal(t, []string{"profile", "capacity"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &encoderConfig{}

	err := Apply(cfg, withCapacity(-1), withProfileVersion(1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "negative")
	require.Empty(t, cfg.calls, "options after a failing one must not run")
}

func TestApply_Empty(t *testing.T) {
	cfg := &encoderConfig{}

	require.NoError(t, Apply(cfg))
	require.NoError(t, Apply[*encoderConfig](cfg, nil))
	require.Empty(t, cfg.calls)
}
