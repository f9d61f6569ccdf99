package format

type (
	// BaseType is the wire tag stored in a definition record that tells a decoder
	// the storage width, signedness and kind of a field.
	BaseType uint8
	// CompressionType selects the codec used to archive a finished file.
	CompressionType uint8
)

const (
	BaseEnum   BaseType = 0x00 // BaseEnum is a one-byte enumeration.
	BaseSint8  BaseType = 0x01 // BaseSint8 is a signed 8-bit integer.
	BaseUint8  BaseType = 0x02 // BaseUint8 is an unsigned 8-bit integer.
	BaseString BaseType = 0x07 // BaseString is a null-terminated UTF-8 string.
	BaseSint16 BaseType = 0x83 // BaseSint16 is a signed 16-bit integer.
	BaseUint16 BaseType = 0x84 // BaseUint16 is an unsigned 16-bit integer.
	BaseSint32 BaseType = 0x85 // BaseSint32 is a signed 32-bit integer.
	BaseUint32 BaseType = 0x86 // BaseUint32 is an unsigned 32-bit integer.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Size returns the fixed width in bytes of the base type, or 0 for variable-length types.
func (b BaseType) Size() int {
	switch b {
	case BaseEnum, BaseSint8, BaseUint8:
		return 1
	case BaseSint16, BaseUint16:
		return 2
	case BaseSint32, BaseUint32:
		return 4
	default:
		return 0
	}
}

// IsEndianAware reports whether the base type's byte order depends on the
// architecture byte of its definition record.
func (b BaseType) IsEndianAware() bool {
	return b&0x80 != 0
}

func (b BaseType) String() string {
	switch b {
	case BaseEnum:
		return "enum"
	case BaseSint8:
		return "sint8"
	case BaseUint8:
		return "uint8"
	case BaseString:
		return "string"
	case BaseSint16:
		return "sint16"
	case BaseUint16:
		return "uint16"
	case BaseSint32:
		return "sint32"
	case BaseUint32:
		return "uint32"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
