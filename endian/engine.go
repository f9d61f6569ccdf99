// Package endian provides the byte order engines used by the FIT writer.
//
// A FIT file mixes byte orders: the file header and trailer are always
// little-endian, while multi-byte fields inside records follow the
// architecture byte of their definition record (0 = little, 1 = big).
// fitcourse always declares big-endian records.
//
//	engine := endian.ForArchitecture(endian.ArchBigEndian)
//	buf = engine.AppendUint32(buf, value)
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// Architecture byte values as stored in a definition record.
const (
	ArchLittleEndian uint8 = 0
	ArchBigEndian    uint8 = 1
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForArchitecture returns the engine matching a definition record's architecture byte.
// Any non-zero value selects big-endian.
func ForArchitecture(arch uint8) EndianEngine {
	if arch == ArchLittleEndian {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// Architecture returns the architecture byte that declares the given engine.
func Architecture(engine EndianEngine) uint8 {
	if engine == EndianEngine(binary.LittleEndian) {
		return ArchLittleEndian
	}

	return ArchBigEndian
}
