package mesg

import (
	"github.com/arloliu/fitcourse/endian"
	"github.com/arloliu/fitcourse/format"
	"github.com/arloliu/fitcourse/section"
)

// FieldDefinition is the (number, size, base type) triple a definition record
// declares for one field.
type FieldDefinition struct {
	Num      uint8
	Size     uint8
	BaseType format.BaseType
}

// Definition is the resolved layout of a message instance on a channel.
// Data records are only valid after a definition record with an equal
// Definition on the same channel.
type Definition struct {
	Channel uint8
	MesgNum uint16
	Fields  []FieldDefinition
}

// Equal reports whether d and other describe the same binary layout.
func (d Definition) Equal(other Definition) bool {
	if d.Channel != other.Channel || d.MesgNum != other.MesgNum || len(d.Fields) != len(other.Fields) {
		return false
	}

	for i := range d.Fields {
		if d.Fields[i] != other.Fields[i] {
			return false
		}
	}

	return true
}

// RecordLen returns the size of the definition record in bytes.
func (d Definition) RecordLen() int {
	return section.DefinitionRecordLen(len(d.Fields))
}

// DataLen returns the size of a data record matching this definition.
func (d Definition) DataLen() int {
	n := section.DataRecordHeaderSize
	for _, f := range d.Fields {
		n += int(f.Size)
	}

	return n
}

// AppendRecord appends the definition record to dst.
func (d Definition) AppendRecord(dst []byte) []byte {
	engine := endian.GetBigEndianEngine()

	dst = append(dst,
		section.DefinitionHeader(d.Channel),
		0,
		endian.Architecture(engine),
	)
	dst = engine.AppendUint16(dst, d.MesgNum)
	dst = append(dst, uint8(len(d.Fields))) //nolint:gosec

	for _, f := range d.Fields {
		dst = append(dst, f.Num, f.Size, byte(f.BaseType))
	}

	return dst
}

// Clone returns a deep copy of d, so a cached definition does not share its
// field slice with the message it came from.
func (d Definition) Clone() Definition {
	fields := make([]FieldDefinition, len(d.Fields))
	copy(fields, d.Fields)
	d.Fields = fields

	return d
}
