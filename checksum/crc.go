// Package checksum implements the 16-bit running checksum of the FIT file format.
//
// The checksum is computed nibble-wise over a 16-entry table. It protects the
// first 12 bytes of the file header and, separately, the whole record payload.
// Because the state is a plain uint16, a checksum can be continued across
// buffers:
//
//	crc := checksum.Update(0, a)
//	crc = checksum.Update(crc, b) // == checksum.Sum(append(a, b...))
package checksum

// Size is the encoded size of a checksum in bytes.
const Size = 2

var table = [16]uint16{
	0x0000, 0xcc01, 0xd801, 0x1400,
	0xf001, 0x3c00, 0x2800, 0xe401,
	0xa001, 0x6c00, 0x7800, 0xb401,
	0x5000, 0x9c01, 0x8801, 0x4400,
}

func step(crc uint16, nibble byte) uint16 {
	return ((crc >> 4) & 0x0fff) ^ table[crc&0xf] ^ table[nibble&0xf]
}

// UpdateByte folds a single byte into crc, low nibble first.
func UpdateByte(crc uint16, b byte) uint16 {
	return step(step(crc, b&0xf), b>>4)
}

// Update folds data into the running checksum crc and returns the new state.
func Update(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc = UpdateByte(crc, b)
	}

	return crc
}

// Sum returns the checksum of data starting from a zero state.
func Sum(data []byte) uint16 {
	return Update(0, data)
}

// Hash is a running checksum that accepts data through io.Writer.
//
// The zero value is ready to use.
type Hash struct {
	crc uint16
	n   int64
}

// New returns a Hash starting from the given initial state.
func New(initial uint16) *Hash {
	return &Hash{crc: initial}
}

// Write folds p into the checksum. It never returns an error.
func (h *Hash) Write(p []byte) (int, error) {
	h.crc = Update(h.crc, p)
	h.n += int64(len(p))

	return len(p), nil
}

// Sum16 returns the current checksum state.
func (h *Hash) Sum16() uint16 {
	return h.crc
}

// Size returns the number of bytes folded in so far.
func (h *Hash) Size() int64 {
	return h.n
}

// Reset clears the checksum back to a zero state.
func (h *Hash) Reset() {
	h.crc = 0
	h.n = 0
}
