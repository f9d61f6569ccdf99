// Package errs defines the sentinel errors returned by fitcourse packages.
//
// Call sites wrap these with additional context using fmt.Errorf and %w, so
// callers should compare with errors.Is rather than by equality:
//
//	if errors.Is(err, errs.ErrUnknownField) {
//	    // caller passed a field name the message does not define
//	}
package errs

import "errors"

// Catalog and value errors.
var (
	// ErrUnknownType is returned when a field type name is not in the type registry.
	ErrUnknownType = errors.New("unknown field type")
	// ErrUnknownMessage is returned when a message name is not in the message catalog.
	ErrUnknownMessage = errors.New("unknown message")
	// ErrUnknownField is returned when a caller supplies a field name that the message does not define.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownEnumValue is returned when an enum field is given a name absent from its table.
	ErrUnknownEnumValue = errors.New("unknown enum value")
	// ErrInvalidValue is returned when a value's kind cannot be encoded by the field's type.
	ErrInvalidValue = errors.New("invalid value for field type")
	// ErrFieldTooLarge is returned when an encoded field does not fit the one-byte size slot.
	ErrFieldTooLarge = errors.New("field too large")
)

// Encoder state errors.
var (
	// ErrChannelExhausted is returned when more than 16 distinct messages are written to one encoder.
	ErrChannelExhausted = errors.New("local message channels exhausted")
	// ErrInvalidState is returned when an encoder is used after Finish.
	ErrInvalidState = errors.New("invalid encoder state")
)

// File integrity errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidMagicNumber   = errors.New("invalid magic number")
	ErrInvalidProtocol      = errors.New("unsupported protocol version")
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	ErrChecksumMismatch     = errors.New("checksum mismatch")
)
