package section

import (
	"fmt"

	"github.com/arloliu/fitcourse/checksum"
	"github.com/arloliu/fitcourse/endian"
	"github.com/arloliu/fitcourse/errs"
)

// FileHeader represents the fixed 14-byte header at the start of a FIT file.
//
// All multi-byte header fields are little-endian regardless of the
// architecture declared by the records that follow.
type FileHeader struct {
	// Size is the header length in bytes, always HeaderSize.
	Size uint8 // byte offset 0
	// ProtocolVersion is the FIT protocol version, 0x10 for 1.0.
	ProtocolVersion uint8 // byte offset 1
	// ProfileVersion is the FIT profile version times 100.
	ProfileVersion uint16 // byte offset 2-3
	// DataSize is the length of the record payload, excluding header and trailer.
	DataSize uint32 // byte offset 4-7
	// DataType is the ".FIT" magic tag.
	DataType [4]byte // byte offset 8-11
	// CRC is the checksum of bytes 0-11.
	CRC uint16 // byte offset 12-13
}

// NewFileHeader creates a header for a payload of dataSize bytes.
// The CRC field is filled in by Bytes.
func NewFileHeader(dataSize uint32) *FileHeader {
	return &FileHeader{
		Size:            HeaderSize,
		ProtocolVersion: ProtocolVersion,
		ProfileVersion:  ProfileVersion,
		DataSize:        dataSize,
		DataType:        Magic,
	}
}

// Bytes serializes the header, computing and storing its checksum.
func (h *FileHeader) Bytes() []byte {
	return h.Append(make([]byte, 0, HeaderSize))
}

// Append appends the serialized header to dst, computing and storing its checksum.
func (h *FileHeader) Append(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	start := len(dst)
	dst = append(dst, h.Size, h.ProtocolVersion)
	dst = engine.AppendUint16(dst, h.ProfileVersion)
	dst = engine.AppendUint32(dst, h.DataSize)
	dst = append(dst, h.DataType[:]...)

	h.CRC = checksum.Sum(dst[start:])

	return engine.AppendUint16(dst, h.CRC)
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 14 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidProtocol, ErrInvalidMagicNumber or ErrChecksumMismatch
func (h *FileHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	h.Size = data[0]
	h.ProtocolVersion = data[1]
	h.ProfileVersion = engine.Uint16(data[2:4])
	h.DataSize = engine.Uint32(data[4:8])
	copy(h.DataType[:], data[8:12])
	h.CRC = engine.Uint16(data[12:14])

	if h.Size != HeaderSize {
		return fmt.Errorf("%w: header declares %d bytes", errs.ErrInvalidHeaderSize, h.Size)
	}

	if h.ProtocolVersion>>4 != ProtocolVersion>>4 {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidProtocol, h.ProtocolVersion)
	}

	if h.DataType != Magic {
		return fmt.Errorf("%w: %q", errs.ErrInvalidMagicNumber, h.DataType[:])
	}

	if crc := checksum.Sum(data[:HeaderCRCOffset]); crc != h.CRC {
		return fmt.Errorf("%w: header crc 0x%04x, computed 0x%04x", errs.ErrChecksumMismatch, h.CRC, crc)
	}

	return nil
}

// ParseFileHeader parses a FileHeader from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least 14 bytes)
//
// Returns:
//   - FileHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or any error returned by Parse
func ParseFileHeader(data []byte) (FileHeader, error) {
	if len(data) < HeaderSize {
		return FileHeader{}, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h := FileHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}
