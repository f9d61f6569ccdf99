package mesg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arloliu/fitcourse/endian"
	"github.com/arloliu/fitcourse/errs"
	"github.com/arloliu/fitcourse/internal/pool"
	"github.com/arloliu/fitcourse/profile"
	"github.com/arloliu/fitcourse/section"
)

// Values maps field names to optional application values.
// A key holding an absent value is checked against the schema but not encoded.
type Values map[string]profile.Value

// Field is a retained field of a message instance.
type Field struct {
	profile.FieldDef

	Value profile.Value
	Size  int // resolved encoded size
}

// Message is a single message instance bound to a local channel.
type Message struct {
	channel uint8
	def     *profile.MessageDef
	fields  []Field
}

// Build resolves the named message and keeps the present values in catalog order.
//
// Every key of values must name a field of the message; all unknown keys are
// reported together before anything is encoded. Encoded sizes are resolved
// here, so invalid enum names, wrong value kinds and oversized strings are
// rejected by Build rather than during record rendering.
//
// Parameters:
//   - channel: Local message number (0-15)
//   - name: Catalog message name
//   - values: Field values by name
//
// Returns:
//   - *Message: The message instance
//   - error: ErrChannelExhausted, ErrUnknownMessage, ErrUnknownField,
//     ErrUnknownEnumValue, ErrInvalidValue or ErrFieldTooLarge
func Build(channel uint8, name string, values Values) (*Message, error) {
	if channel > section.MaxLocalMesgNum {
		return nil, fmt.Errorf("%w: channel %d", errs.ErrChannelExhausted, channel)
	}

	def, err := profile.LookupMessage(name)
	if err != nil {
		return nil, err
	}

	if unknown := unknownFields(def, values); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: message %q has no field named %s",
			errs.ErrUnknownField, name, strings.Join(unknown, ", "))
	}

	fields := make([]Field, 0, len(values))
	for _, fd := range def.Fields {
		v, ok := values[fd.Name]
		if !ok || !v.Present() {
			continue
		}

		size, err := fd.Type.EncodedSize(v)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, fd.Name, err)
		}

		fields = append(fields, Field{FieldDef: fd, Value: v, Size: size})
	}

	return &Message{channel: channel, def: def, fields: fields}, nil
}

func unknownFields(def *profile.MessageDef, values Values) []string {
	var unknown []string
	for key := range values {
		if _, ok := def.Field(key); !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	return unknown
}

// Name returns the catalog name of the message.
func (m *Message) Name() string { return m.def.Name }

// Num returns the global message number.
func (m *Message) Num() uint16 { return m.def.Num }

// Channel returns the local message number the message is bound to.
func (m *Message) Channel() uint8 { return m.channel }

// Fields returns the retained fields in catalog order.
func (m *Message) Fields() []Field { return m.fields }

// Definition returns the resolved layout of the message.
func (m *Message) Definition() Definition {
	fields := make([]FieldDefinition, len(m.fields))
	for i, f := range m.fields {
		fields[i] = FieldDefinition{
			Num:      f.Num,
			Size:     uint8(f.Size), //nolint:gosec
			BaseType: f.Type.BaseType(),
		}
	}

	return Definition{Channel: m.channel, MesgNum: m.def.Num, Fields: fields}
}

// AppendDefinitionRecord appends the definition record to dst.
func (m *Message) AppendDefinitionRecord(dst []byte) []byte {
	return m.Definition().AppendRecord(dst)
}

// DefinitionRecord returns the definition record in a new slice.
func (m *Message) DefinitionRecord() []byte {
	return m.AppendDefinitionRecord(make([]byte, 0, section.DefinitionRecordLen(len(m.fields))))
}

// DataLen returns the size of the data record in bytes.
func (m *Message) DataLen() int {
	n := section.DataRecordHeaderSize
	for _, f := range m.fields {
		n += f.Size
	}

	return n
}

// AppendDataRecord appends the data record to dst.
func (m *Message) AppendDataRecord(dst []byte) ([]byte, error) {
	engine := endian.GetBigEndianEngine()

	dst = append(dst, section.DataHeader(m.channel))
	for _, f := range m.fields {
		var err error
		if dst, err = f.Type.Append(dst, engine, f.Value); err != nil {
			return dst, fmt.Errorf("%s.%s: %w", m.def.Name, f.Name, err)
		}
	}

	return dst, nil
}

// DataRecord returns the data record in a new slice.
func (m *Message) DataRecord() ([]byte, error) {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	var err error
	if buf.B, err = m.AppendDataRecord(buf.B); err != nil {
		return nil, err
	}

	return buf.Clone(), nil
}
