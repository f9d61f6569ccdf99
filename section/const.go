package section

// File header values.
const (
	HeaderSize      = 14        // fixed file header size in bytes
	HeaderCRCOffset = 12        // byte offset of the header checksum
	ProtocolVersion = 0x10      // protocol version 1.0
	ProfileVersion  = 2078      // profile version 20.78
	TrailerSize     = 2         // size of the payload checksum that ends the file
	MaxPayloadSize  = 1<<32 - 1 // payload length is stored as uint32
)

// Magic is the data type tag stored at bytes 8-11 of the file header.
var Magic = [4]byte{'.', 'F', 'I', 'T'}

// Record header bits.
const (
	RecordDefinitionFlag = 0x40 // set for definition records, clear for data records
	LocalMesgNumMask     = 0x0F // low 4 bits carry the local message number
	MaxLocalMesgNum      = 15   // highest local message number
	LocalMesgNumCount    = MaxLocalMesgNum + 1
)

// Definition record layout.
const (
	DefinitionFixedSize    = 6   // header, reserved, architecture, message number (2), field count
	FieldDefinitionSize    = 3   // field number, size, base type
	MaxFieldsPerDefinition = 255 // field count is a single byte
	DataRecordHeaderSize   = 1
)
