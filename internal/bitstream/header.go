package bitstream

import (
	"encoding/binary"
	"fmt"
	"math"
)

// HeaderLen is the size of the blob header in bytes.
const HeaderLen = 10

// DefaultFPS substitutes for a missing or non-positive frame rate.
const DefaultFPS = 30.0

// Header describes the fixed-size prefix of a blob.
type Header struct {
	Width      uint16
	Height     uint16
	FPSx100    uint16
	FrameCount uint32
}

// FPSx100 converts a frame rate to its wire encoding: rate times 100,
// rounded to nearest, clamped to [1,65535]. A non-positive or NaN rate is
// treated as DefaultFPS before conversion.
func FPSx100(fps float64) uint16 {
	if math.IsNaN(fps) || fps <= 0 {
		fps = DefaultFPS
	}
	scaled := math.Round(fps * 100)
	if scaled < 1 {
		scaled = 1
	}
	if scaled > 65535 {
		scaled = 65535
	}
	return uint16(scaled)
}

// FPS returns the frame rate the header encodes.
func (h Header) FPS() float64 {
	return float64(h.FPSx100) / 100
}

// FrameLen returns the packed size of one frame in bytes.
func (h Header) FrameLen() int {
	return PackedLen(int(h.Width) * int(h.Height))
}

// AppendBinary appends the 10-byte little-endian wire form of the header.
func (h Header) AppendBinary(b []byte) []byte {
	b = binary.LittleEndian.AppendUint16(b, h.Width)
	b = binary.LittleEndian.AppendUint16(b, h.Height)
	b = binary.LittleEndian.AppendUint16(b, h.FPSx100)
	b = binary.LittleEndian.AppendUint32(b, h.FrameCount)
	return b
}

// ParseHeader decodes the blob header from the start of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderLen {
		return Header{}, fmt.Errorf("blob header: %d bytes, want %d", len(b), HeaderLen)
	}
	return Header{
		Width:      binary.LittleEndian.Uint16(b[0:2]),
		Height:     binary.LittleEndian.Uint16(b[2:4]),
		FPSx100:    binary.LittleEndian.Uint16(b[4:6]),
		FrameCount: binary.LittleEndian.Uint32(b[6:10]),
	}, nil
}
