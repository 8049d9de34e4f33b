package bitstream

// Threshold converts 8-bit gray samples into a bitmap of 0/1 values.
// An element is 1 when the sample is at or below threshold (dark).
func Threshold(samples []byte, threshold uint8) []byte {
	bits := make([]byte, len(samples))
	for i, px := range samples {
		if px <= threshold {
			bits[i] = 1
		}
	}
	return bits
}

// PackedLen returns the packed size in bytes of a bitmap with n elements.
func PackedLen(n int) int {
	return (n + 7) / 8
}

// Pack stores a bitmap at 8 pixels per byte, most significant bit first.
// Bit i of the bitmap lands in byte i/8 at position 7-(i%8); trailing
// padding bits in the last byte are zero.
func Pack(bits []byte) []byte {
	out := make([]byte, PackedLen(len(bits)))
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << (7 - i%8)
		}
	}
	return out
}

// Unpack expands n bits from a packed frame back into a 0/1 bitmap,
// discarding any padding beyond n.
func Unpack(packed []byte, n int) []byte {
	bits := make([]byte, n)
	for i := range bits {
		if packed[i/8]&(1<<(7-i%8)) != 0 {
			bits[i] = 1
		}
	}
	return bits
}
