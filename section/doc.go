// Package section defines the low-level binary structures and constants of the FIT file layout.
//
// # File Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (14 bytes, fixed, little-endian)                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Records (variable)                                      │
//	│  - definition records: declare a layout per channel     │
//	│  - data records: field values in the declared layout    │
//	├─────────────────────────────────────────────────────────┤
//	│ Trailer (2 bytes): checksum of all record bytes, LE     │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field            | Type    | Description
//	-------|------------------|---------|----------------------------------
//	0      | Size             | uint8   | Header size, always 14
//	1      | ProtocolVersion  | uint8   | 0x10 (1.0)
//	2-3    | ProfileVersion   | uint16  | 2078 (20.78)
//	4-7    | DataSize         | uint32  | Record payload length in bytes
//	8-11   | DataType         | [4]byte | ".FIT"
//	12-13  | CRC              | uint16  | Checksum of bytes 0-11
//
// # Record Headers
//
// Every record starts with one header byte. Bit 6 (0x40) marks a definition
// record; the low 4 bits carry the local message number (channel 0-15).
//
// Definition record:
//
//	Bytes  | Field            | Description
//	-------|------------------|----------------------------------
//	0      | Header           | 0x40 | local message number
//	1      | Reserved         | 0
//	2      | Architecture     | 0 = little-endian, 1 = big-endian
//	3-4    | Global mesg num  | in the declared architecture
//	5      | Field count      | n
//	6..    | Field defs       | n × (field number, size, base type)
//
// Data record:
//
//	Bytes  | Field            | Description
//	-------|------------------|----------------------------------
//	0      | Header           | local message number
//	1..    | Field values     | in definition order
package section
