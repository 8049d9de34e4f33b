package framesource

import (
	"errors"
	"io"
)

// Source delivers raw grayscale frames one at a time.
type Source interface {
	// ReadFrame fills buf with the next full frame. It returns false with a
	// nil error at end of stream; a partially delivered trailing frame is
	// discarded silently and reported as a clean end of stream.
	ReadFrame(buf []byte) (bool, error)

	// Verify reports whether the producer terminated successfully. It must
	// be called only after the stream has been drained; a failure still
	// means every frame already returned by ReadFrame was fully delivered.
	Verify() error

	// Close releases the producer on any exit path. Safe to call after
	// Verify and on early termination.
	Close() error
}

// readerSource adapts an io.Reader into a Source. Used by tests and for
// encoding from a pre-captured raw stream.
type readerSource struct {
	r io.Reader
}

// FromReader wraps an unframed raw byte stream as a Source.
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

func (s *readerSource) ReadFrame(buf []byte) (bool, error) {
	return readFull(s.r, buf)
}

func (s *readerSource) Verify() error { return nil }

func (s *readerSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// readFull implements the shared frame read policy: a full frame reads true,
// immediate EOF reads false, and a short trailing frame is dropped without
// error.
func readFull(r io.Reader, buf []byte) (bool, error) {
	_, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return false, nil
	default:
		return false, err
	}
}
