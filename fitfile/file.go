package fitfile

import (
	"fmt"
	"io"

	"github.com/arloliu/fitcourse/checksum"
	"github.com/arloliu/fitcourse/compress"
	"github.com/arloliu/fitcourse/endian"
	"github.com/arloliu/fitcourse/errs"
	"github.com/arloliu/fitcourse/format"
	"github.com/arloliu/fitcourse/internal/hash"
	"github.com/arloliu/fitcourse/section"
)

// File is a finished FIT file.
type File struct {
	data     []byte
	header   section.FileHeader
	records  int
	channels int
}

// Bytes returns the encoded file. The returned slice must not be modified.
func (f *File) Bytes() []byte {
	return f.data
}

// Len returns the total file size in bytes, header and trailer included.
func (f *File) Len() int {
	return len(f.data)
}

// Header returns the file header.
func (f *File) Header() section.FileHeader {
	return f.header
}

// Payload returns the record bytes between header and trailer.
func (f *File) Payload() []byte {
	return f.data[section.HeaderSize : len(f.data)-section.TrailerSize]
}

// CRC returns the payload checksum stored in the trailer.
func (f *File) CRC() uint16 {
	return endian.GetLittleEndianEngine().Uint16(f.data[len(f.data)-section.TrailerSize:])
}

// RecordCount returns the number of definition and data records in the file.
func (f *File) RecordCount() int {
	return f.records
}

// ChannelCount returns the number of local channels the file uses.
func (f *File) ChannelCount() int {
	return f.channels
}

// ID returns the xxHash64 fingerprint of the file bytes.
// Identical inputs produce identical files and therefore identical IDs.
func (f *File) ID() uint64 {
	return hash.Sum(f.data)
}

// WriteTo writes the file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.data)
	return int64(n), err
}

// Compress returns the file compressed with the given codec, for archival or
// transfer. Use Decompress to restore the original bytes.
func (f *File) Compress(ct format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	out, err := codec.Compress(f.data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress file with %s: %w", ct, err)
	}

	return out, nil
}

// Decompress restores a file compressed with File.Compress and verifies it.
func Decompress(ct format.CompressionType, data []byte) ([]byte, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress file with %s: %w", ct, err)
	}

	if err := Verify(out); err != nil {
		return nil, err
	}

	return out, nil
}

// Verify checks the framing of an encoded FIT file: the header fields and
// checksum, the declared payload length, and the payload checksum in the
// trailer. Record contents are not decoded.
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidProtocol, ErrInvalidMagicNumber,
//     ErrInvalidPayloadLength or ErrChecksumMismatch
func Verify(data []byte) error {
	header, err := section.ParseFileHeader(data)
	if err != nil {
		return err
	}

	want := uint64(section.HeaderSize) + uint64(header.DataSize) + section.TrailerSize
	if uint64(len(data)) != want {
		return fmt.Errorf("%w: header declares %d payload bytes, file has %d bytes",
			errs.ErrInvalidPayloadLength, header.DataSize, len(data))
	}

	payload := data[section.HeaderSize : len(data)-section.TrailerSize]
	stored := endian.GetLittleEndianEngine().Uint16(data[len(data)-section.TrailerSize:])
	if crc := checksum.Sum(payload); crc != stored {
		return fmt.Errorf("%w: trailer crc 0x%04x, computed 0x%04x", errs.ErrChecksumMismatch, stored, crc)
	}

	return nil
}
