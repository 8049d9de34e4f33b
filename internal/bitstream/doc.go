// Package bitstream implements the monochrome delta bitstream carried in the
// BA.bin attachment.
//
// A blob is a 10-byte little-endian header followed by fixed-length frames:
//
//	offset 0..2   width            (u16)
//	offset 2..4   height           (u16)
//	offset 4..6   frame rate × 100, rounded, clamped to [1,65535] (u16)
//	offset 6..10  frame count      (u32)
//	offset 10..   first packed frame (ceil(width*height/8) bytes), then
//	              frame_count-1 diff frames of identical length
//
// Frames are packed 8 pixels per byte, most significant bit first; a set bit
// means the source sample was at or below the threshold (dark). Every frame
// after the first is the XOR of the current packed frame against the
// previous one. Decoders recover frame k by XOR-ing each diff onto a running
// copy of the last reconstructed frame, in order.
package bitstream
