package encoder

import (
	"fmt"
	"log/slog"

	"inkreel/internal/bitstream"
	"inkreel/internal/framesource"
)

// Options controls one encoding run.
type Options struct {
	Width     int
	Height    int
	FPS       float64
	Threshold uint8
	// MaxFrames bounds the number of encoded frames; 0 means unlimited.
	MaxFrames int
}

// Result is the finished blob and its measurements.
type Result struct {
	Blob       []byte
	FrameCount int
}

// Encode drains the frame source into a finished blob. When the source ends
// naturally it is verified afterwards, so that a failing producer is
// reported only once every fully delivered frame has been consumed; on the
// max-frames bound the producer is stopped without a status check.
func Encode(src framesource.Source, opts Options, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	asm, err := bitstream.NewAssembler(opts.Width, opts.Height, opts.FPS)
	if err != nil {
		return Result{}, err
	}

	frame := make([]byte, opts.Width*opts.Height)
	delta := bitstream.NewDelta()
	exhausted := false

	for opts.MaxFrames <= 0 || asm.FrameCount() < opts.MaxFrames {
		ok, err := src.ReadFrame(frame)
		if err != nil {
			return Result{}, fmt.Errorf("read frame %d: %w", asm.FrameCount(), err)
		}
		if !ok {
			exhausted = true
			break
		}

		packed := bitstream.Pack(bitstream.Threshold(frame, opts.Threshold))
		wire, err := delta.Encode(packed)
		if err != nil {
			return Result{}, err
		}
		if err := asm.Append(wire); err != nil {
			return Result{}, err
		}
	}

	if exhausted {
		if err := src.Verify(); err != nil {
			return Result{}, err
		}
	}

	blob := asm.Finalize()
	logger.Info("encoded bitstream",
		slog.Int("frames", asm.FrameCount()),
		slog.Int("blob_bytes", len(blob)),
		slog.Int("frame_bytes", asm.FrameLen()),
		slog.Bool("exhausted", exhausted))

	return Result{Blob: blob, FrameCount: asm.FrameCount()}, nil
}
