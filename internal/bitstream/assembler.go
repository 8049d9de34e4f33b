package bitstream

import (
	"bytes"
	"fmt"
)

// Assembler collects delta-encoded frames and produces the final blob. The
// body is buffered in memory so the header, including the final frame count,
// is written exactly once at finalize time; no caller ever observes a
// placeholder count.
type Assembler struct {
	width    uint16
	height   uint16
	fpsX100  uint16
	frameLen int
	frames   uint32
	body     bytes.Buffer
}

// NewAssembler prepares a blob for the given frame geometry. A non-positive
// fps falls back to DefaultFPS.
func NewAssembler(width, height int, fps float64) (*Assembler, error) {
	if width <= 0 || width > 65535 || height <= 0 || height > 65535 {
		return nil, fmt.Errorf("blob geometry %dx%d out of range", width, height)
	}
	return &Assembler{
		width:    uint16(width),
		height:   uint16(height),
		fpsX100:  FPSx100(fps),
		frameLen: PackedLen(width * height),
	}, nil
}

// FrameLen returns the expected packed size of each appended frame.
func (a *Assembler) FrameLen() int {
	return a.frameLen
}

// FrameCount returns the number of frames appended so far.
func (a *Assembler) FrameCount() int {
	return int(a.frames)
}

// Append adds one wire frame (raw first frame or diff) to the body.
func (a *Assembler) Append(frame []byte) error {
	if len(frame) != a.frameLen {
		return fmt.Errorf("blob frame: %d bytes, want %d", len(frame), a.frameLen)
	}
	a.body.Write(frame)
	a.frames++
	return nil
}

// Finalize serializes header and body in a single pass and returns the blob.
func (a *Assembler) Finalize() []byte {
	header := Header{
		Width:      a.width,
		Height:     a.height,
		FPSx100:    a.fpsX100,
		FrameCount: a.frames,
	}
	out := make([]byte, 0, HeaderLen+a.body.Len())
	out = header.AppendBinary(out)
	return append(out, a.body.Bytes()...)
}
