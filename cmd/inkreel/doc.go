// Command inkreel converts a video into a 1-bit delta-coded bitstream and
// packages it, together with an unmodified audio track, inside a PDF whose
// START button links to a playback URL.
package main
