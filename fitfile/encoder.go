package fitfile

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/fitcourse/checksum"
	"github.com/arloliu/fitcourse/endian"
	"github.com/arloliu/fitcourse/errs"
	"github.com/arloliu/fitcourse/internal/options"
	"github.com/arloliu/fitcourse/internal/pool"
	"github.com/arloliu/fitcourse/mesg"
	"github.com/arloliu/fitcourse/profile"
	"github.com/arloliu/fitcourse/section"
)

// Values maps field names to optional application values.
type Values = mesg.Values

// Encoder builds one FIT file from a sequence of message writes.
//
// Records are kept in write order. A definition record is inserted right
// before a data record whenever the message's channel has no definition yet
// or its layout differs from the last one emitted on that channel.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used by a single goroutine at a time.
//
// Note: The Encoder is NOT reusable. After calling Finish, a new encoder must be created for further encoding.
type Encoder struct {
	*EncoderConfig

	channels channelTable
	records  [][]byte
	dataSize int

	// running checksum over every record byte appended so far
	crc checksum.Hash

	finished bool
}

// NewEncoder creates a new Encoder.
//
// Parameters:
//   - opts: Optional configuration (logger, profile version, initial capacity)
//
// Returns:
//   - *Encoder: New encoder instance ready for message writes
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		EncoderConfig: config,
		records:       make([][]byte, 0, config.recordCapacity),
	}, nil
}

// WriteFileID writes a file_id message (type, time_created).
func (e *Encoder) WriteFileID(values Values) error {
	return e.Write(profile.MesgFileID, values)
}

// WriteCourse writes a course message (name).
func (e *Encoder) WriteCourse(values Values) error {
	return e.Write(profile.MesgCourse, values)
}

// WriteLap writes a lap message.
func (e *Encoder) WriteLap(values Values) error {
	return e.Write(profile.MesgLap, values)
}

// WriteRecord writes a record message, i.e. a single track point.
func (e *Encoder) WriteRecord(values Values) error {
	return e.Write(profile.MesgRecord, values)
}

// WriteCoursePoint writes a course_point message, i.e. a navigation cue.
func (e *Encoder) WriteCoursePoint(values Values) error {
	return e.Write(profile.MesgCoursePoint, values)
}

// WriteEvent writes an event message.
func (e *Encoder) WriteEvent(values Values) error {
	return e.Write(profile.MesgEvent, values)
}

// Write encodes one message and appends its records.
//
// The channel of a message name is assigned on first use and kept for the
// lifetime of the encoder, even if that first write fails. A failed write
// appends no record.
//
// Parameters:
//   - name: Catalog message name
//   - values: Field values by name; absent values are skipped
//
// Returns:
//   - error: ErrInvalidState, ErrChannelExhausted, or any error returned by mesg.Build
func (e *Encoder) Write(name string, values Values) error {
	if e.finished {
		return fmt.Errorf("%w: write %q after finish", errs.ErrInvalidState, name)
	}

	ch, isNew, err := e.channels.assign(name)
	if err != nil {
		return err
	}
	if isNew {
		e.logger.Debug("assigned channel", zap.String("message", name), zap.Uint8("channel", ch))
	}

	m, err := mesg.Build(ch, name, values)
	if err != nil {
		return err
	}

	// Render the data record first so a failure leaves no orphan definition.
	data, err := m.DataRecord()
	if err != nil {
		return err
	}

	if defn := m.Definition(); e.channels.needsDefinition(defn) {
		e.appendRecord(defn.AppendRecord(make([]byte, 0, defn.RecordLen())))
		e.channels.setDefinition(defn)

		e.logger.Debug("emitted definition",
			zap.String("message", name),
			zap.Uint8("channel", ch),
			zap.Int("fields", len(defn.Fields)),
		)
	}

	e.appendRecord(data)

	return nil
}

func (e *Encoder) appendRecord(rec []byte) {
	e.records = append(e.records, rec)
	e.dataSize += len(rec)
	_, _ = e.crc.Write(rec)
}

// Finish frames the records with the file header and trailer and returns the file.
//
// After Finish the encoder is closed: further writes and a second Finish fail
// with ErrInvalidState.
//
// Returns:
//   - *File: The finished file
//   - error: ErrInvalidState if already finished, ErrInvalidPayloadLength if
//     the payload does not fit the 32-bit length field
func (e *Encoder) Finish() (*File, error) {
	if e.finished {
		return nil, fmt.Errorf("%w: encoder already finished", errs.ErrInvalidState)
	}

	if uint64(e.dataSize) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidPayloadLength, e.dataSize)
	}

	header := section.NewFileHeader(uint32(e.dataSize)) //nolint:gosec
	header.ProfileVersion = e.profileVersion

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	buf.Grow(section.HeaderSize + e.dataSize + section.TrailerSize)
	buf.B = header.Append(buf.B)
	for _, rec := range e.records {
		buf.MustWrite(rec)
	}
	buf.B = endian.GetLittleEndianEngine().AppendUint16(buf.B, e.crc.Sum16())

	file := &File{
		data:     buf.Clone(),
		header:   *header,
		records:  len(e.records),
		channels: e.channels.len(),
	}

	e.logger.Debug("finished file",
		zap.Int("records", file.records),
		zap.Int("channels", file.channels),
		zap.Int("bytes", file.Len()),
	)

	e.finished = true
	e.records = nil
	e.channels.reset()

	return file, nil
}

// Finished reports whether Finish has been called.
func (e *Encoder) Finished() bool {
	return e.finished
}

// Len returns the number of record bytes written so far.
func (e *Encoder) Len() int {
	return e.dataSize
}

// RecordCount returns the number of definition and data records written so far.
func (e *Encoder) RecordCount() int {
	return len(e.records)
}

// ChannelCount returns the number of local channels assigned so far.
func (e *Encoder) ChannelCount() int {
	return e.channels.len()
}

// Channel returns the local channel assigned to a message name.
func (e *Encoder) Channel(name string) (uint8, bool) {
	return e.channels.lookup(name)
}
