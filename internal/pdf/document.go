package pdf

import (
	"bytes"
	"fmt"
	"io"
)

// Document is an arena of indirect objects plus the trailer root. Object
// numbers are assigned in arena order, starting at 1, and never change.
type Document struct {
	version string
	objs    []Object
	root    Ref
}

// NewDocument returns an empty PDF 1.7 document.
func NewDocument() *Document {
	return &Document{version: "1.7"}
}

// Add places obj in the arena and returns its reference.
func (d *Document) Add(obj Object) Ref {
	d.objs = append(d.objs, obj)
	return Ref{Num: len(d.objs)}
}

// Reserve allocates an object number ahead of its definition, for graphs
// with reference cycles (page <-> page tree). Fill it with Set before
// serializing.
func (d *Document) Reserve() Ref {
	return d.Add(nil)
}

// Set fills a reserved slot.
func (d *Document) Set(ref Ref, obj Object) error {
	if ref.Num < 1 || ref.Num > len(d.objs) {
		return fmt.Errorf("pdf: set unknown object %d", ref.Num)
	}
	d.objs[ref.Num-1] = obj
	return nil
}

// SetRoot marks the catalog object referenced from the trailer.
func (d *Document) SetRoot(ref Ref) {
	d.root = ref
}

// WriteTo serializes the whole graph in one pass: header, numbered objects,
// cross-reference table, trailer.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.root.Num == 0 {
		return 0, fmt.Errorf("pdf: document root not set")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%%PDF-%s\n", d.version)
	// Binary marker comment so transports treat the file as binary.
	buf.WriteString("%\xE2\xE3\xCF\xD3\n")

	offsets := make([]int, len(d.objs))
	for i, obj := range d.objs {
		if obj == nil {
			return 0, fmt.Errorf("pdf: object %d reserved but never set", i+1)
		}
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", i+1)
		obj.encode(&buf)
		buf.WriteString("\nendobj\n")
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(d.objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	buf.WriteString("trailer\n")
	trailer := NewDict()
	trailer.Set("Size", Integer(len(d.objs)+1))
	trailer.Set("Root", d.root)
	trailer.encode(&buf)
	fmt.Fprintf(&buf, "\nstartxref\n%d\n%%%%EOF\n", xrefStart)

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
