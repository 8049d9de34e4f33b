// Package artifact assembles the output PDF: the encoded bitstream and the
// untouched audio track as named embedded files, plus a single page whose
// drawn START button is overlaid by a link annotation opening the trigger
// URL. Attachment payloads are stored byte-for-byte with no compression.
package artifact
