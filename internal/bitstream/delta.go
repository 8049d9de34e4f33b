package bitstream

import "fmt"

// Delta turns a sequence of packed frames into a delta stream: the first
// frame passes through verbatim, every later frame is emitted as the XOR
// against its predecessor. The retained state is always the last raw packed
// frame, never a diff.
type Delta struct {
	prev []byte
}

// NewDelta returns an encoder with no prior frame observed.
func NewDelta() *Delta {
	return &Delta{}
}

// Primed reports whether a first frame has been consumed.
func (d *Delta) Primed() bool {
	return d.prev != nil
}

// Encode emits the wire form of the next packed frame and advances the
// running state. The returned slice is freshly allocated; callers may reuse
// the input buffer.
func (d *Delta) Encode(packed []byte) ([]byte, error) {
	if d.prev != nil && len(packed) != len(d.prev) {
		return nil, fmt.Errorf("delta encode: frame length %d, want %d", len(packed), len(d.prev))
	}

	out := make([]byte, len(packed))
	if d.prev == nil {
		copy(out, packed)
		d.prev = append([]byte(nil), packed...)
		return out, nil
	}

	for i, b := range packed {
		out[i] = d.prev[i] ^ b
	}
	copy(d.prev, packed)
	return out, nil
}

// Accumulator reconstructs raw packed frames from a delta stream. It mirrors
// Delta: the first applied frame is taken verbatim, later ones are XOR-ed
// onto the running total.
type Accumulator struct {
	cur []byte
}

// Apply folds the next wire frame into the accumulator and returns the
// reconstructed raw packed frame. The returned slice is only valid until the
// next call.
func (a *Accumulator) Apply(frame []byte) ([]byte, error) {
	if a.cur == nil {
		a.cur = append([]byte(nil), frame...)
		return a.cur, nil
	}
	if len(frame) != len(a.cur) {
		return nil, fmt.Errorf("delta apply: frame length %d, want %d", len(frame), len(a.cur))
	}
	for i, b := range frame {
		a.cur[i] ^= b
	}
	return a.cur, nil
}
