// Package pdf holds a minimal PDF object model and a one-pass writer: just
// enough of the format to assemble a catalog, a page tree, content streams,
// annotations, and embedded file attachments, and to serialize the graph
// with a classic cross-reference table.
//
// Objects live in an arena owned by Document; cross references are stable
// object numbers handed out by Add/Reserve, never memory addresses. Nothing
// here parses PDFs.
package pdf
