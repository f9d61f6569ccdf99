package course

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/fitcourse/errs"
	"github.com/arloliu/fitcourse/fitfile"
	"github.com/arloliu/fitcourse/section"
)

var testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func ptr(v float64) *float64 { return &v }

func newTestCourse(t *testing.T, opts ...Option) *Course {
	t.Helper()

	opts = append([]Option{WithClock(fixedClock)}, opts...)
	c, err := New("foo", testNow, 2*time.Minute,
		Position{Lat: 1, Long: 1}, Position{Lat: 10, Long: 10}, opts...)
	require.NoError(t, err)

	return c
}

func TestCourse_Helper(t *testing.T) {
	c := newTestCourse(t)

	c.Point(testNow, Position{Lat: 1, Long: 1}, nil, nil).
		Point(testNow, Position{Lat: 2, Long: 1}, nil, nil).
		Point(testNow, Position{Lat: 3, Long: 1}, ptr(50), ptr(100)).
		Point(testNow, Position{Lat: 4, Long: 1}, ptr(55), ptr(150)).
		Turn(testNow, Position{Lat: 4, Long: 2}, "right", "go right", ptr(200)).
		Point(testNow, Position{Lat: 5, Long: 2}, ptr(50), ptr(250)).
		Turn(testNow, Position{Lat: 4, Long: 2}, "left", "", nil)
	require.NoError(t, c.Err())
	require.Equal(t, 5, c.Points())
	require.Equal(t, 2, c.Turns())

	file, err := c.Finish(testNow)
	require.NoError(t, err)

	require.Equal(t, 340, file.Len())
	require.Equal(t, 20, file.RecordCount())
	require.Equal(t, 6, file.ChannelCount())
	require.Equal(t, uint16(0x2349), file.CRC())
	require.NoError(t, fitfile.Verify(file.Bytes()))
}

func TestCourse_AscentDescent(t *testing.T) {
	plain, err := newTestCourse(t).Finish(testNow)
	require.NoError(t, err)

	climb, err := newTestCourse(t, WithAscent(350), WithDescent(340)).Finish(testNow)
	require.NoError(t, err)

	// two more lap fields: 3 definition bytes and 2 data bytes each
	require.Equal(t, plain.Len()+10, climb.Len())
	require.NoError(t, fitfile.Verify(climb.Bytes()))
}

func TestCourse_Deterministic(t *testing.T) {
	build := func() *fitfile.File {
		c := newTestCourse(t)
		c.Point(testNow.Add(time.Second), Position{Lat: 48.1, Long: 11.5}, ptr(520), ptr(0))
		file, err := c.Finish(testNow.Add(time.Minute))
		require.NoError(t, err)

		return file
	}

	require.Equal(t, build().Bytes(), build().Bytes())
}

func TestCourse_FirstErrorWins(t *testing.T) {
	c := newTestCourse(t)

	c.Point(testNow, Position{Lat: 1, Long: 1}, nil, nil).
		Turn(testNow, Position{Lat: 1, Long: 1}, "backflip", "", nil).
		Point(testNow, Position{Lat: 2, Long: 1}, nil, nil)

	require.ErrorIs(t, c.Err(), errs.ErrUnknownEnumValue)
	require.Equal(t, 1, c.Points())
	require.Zero(t, c.Turns())

	_, err := c.Finish(testNow)
	require.ErrorIs(t, err, errs.ErrUnknownEnumValue)
}

func TestCourse_FinishTwice(t *testing.T) {
	c := newTestCourse(t)

	_, err := c.Finish(testNow)
	require.NoError(t, err)

	_, err = c.Finish(testNow)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCourse_NameTooLong(t *testing.T) {
	name := make([]byte, 300)
	for i := range name {
		name[i] = 'a'
	}

	_, err := New(string(name), testNow, time.Minute, Position{}, Position{})
	require.ErrorIs(t, err, errs.ErrFieldTooLarge)
}

func TestCourse_Options(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		for _, opt := range []Option{
			WithClock(nil),
			WithAscent(-1),
			WithDescent(70000),
			WithEncoderOptions(fitfile.WithProfileVersion(0)),
		} {
			_, err := New("x", testNow, time.Minute, Position{}, Position{}, opt)
			require.Error(t, err)
		}
	})

	t.Run("encoder options", func(t *testing.T) {
		c := newTestCourse(t, WithEncoderOptions(fitfile.WithProfileVersion(2105)))
		file, err := c.Finish(testNow)
		require.NoError(t, err)
		require.Equal(t, uint16(2105), file.Header().ProfileVersion)
	})

	t.Run("default clock", func(t *testing.T) {
		before := time.Now().Add(-time.Second)
		c, err := New("x", testNow, time.Minute, Position{}, Position{})
		require.NoError(t, err)

		file, err := c.Finish(testNow)
		require.NoError(t, err)

		// time_created is the last field of the first data record
		data := file.Bytes()
		off := section.HeaderSize + section.DefinitionRecordLen(2) + 2
		created := int64(data[off])<<24 | int64(data[off+1])<<16 | int64(data[off+2])<<8 | int64(data[off+3])
		require.GreaterOrEqual(t, created+631065600, before.Unix())
	})

	t.Run("logger", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		c := newTestCourse(t, WithLogger(zap.New(core)))
		c.Point(testNow, Position{Lat: 1, Long: 1}, nil, nil)

		_, err := c.Finish(testNow)
		require.NoError(t, err)

		finished := logs.FilterMessage("finished course").All()
		require.Len(t, finished, 1)
		require.Equal(t, int64(1), finished[0].ContextMap()["points"])
		require.Positive(t, logs.FilterMessage("emitted definition").Len())
	})
}
