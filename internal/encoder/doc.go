// Package encoder runs the frame pipeline: read a raw grayscale frame,
// threshold it to one bit per pixel, pack it, delta-code it against the
// previous frame, and append it to the blob. The whole pipeline executes on
// a single goroutine and never buffers more than one frame.
package encoder
