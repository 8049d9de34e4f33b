package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"testing"
)

func encodeToString(obj Object) string {
	var buf bytes.Buffer
	obj.encode(&buf)
	return buf.String()
}

func TestNameEscaping(t *testing.T) {
	cases := []struct {
		in   Name
		want string
	}{
		{"Type", "/Type"},
		{"application/octet-stream", "/application#2Foctet-stream"},
		{"audio/ogg", "/audio#2Fogg"},
		{"with space", "/with#20space"},
		{"hash#tag", "/hash#23tag"},
	}
	for _, tc := range cases {
		if got := encodeToString(tc.in); got != tc.want {
			t.Fatalf("name %q: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestStringEscaping(t *testing.T) {
	got := encodeToString(String(`a(b)c\d`))
	want := `(a\(b\)c\\d)`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("Type", Name("Catalog"))
	d.Set("Pages", Ref{Num: 2})
	d.Set("Type", Name("Catalog")) // overwrite keeps position
	got := encodeToString(d)
	want := "<< /Type /Catalog /Pages 2 0 R >>"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestStreamSetsLength(t *testing.T) {
	s := NewStream(NewDict(), []byte("hello"))
	length, ok := s.Dict.Get("Length")
	if !ok || length.(Integer) != 5 {
		t.Fatalf("expected Length 5, got %v", length)
	}
	got := encodeToString(s)
	if !bytes.Contains([]byte(got), []byte("stream\nhello\nendstream")) {
		t.Fatalf("unexpected stream encoding: %s", got)
	}
}

func TestRealFormatting(t *testing.T) {
	if got := encodeToString(Real(156)); got != "156" {
		t.Fatalf("expected 156, got %s", got)
	}
	if got := encodeToString(Real(29.97)); got != "29.97" {
		t.Fatalf("expected 29.97, got %s", got)
	}
}

func TestWriteToProducesValidXref(t *testing.T) {
	doc := NewDocument()
	pagesRef := doc.Reserve()

	content := doc.Add(NewStream(NewDict(), []byte("q Q")))
	page := NewDict()
	page.Set("Type", Name("Page"))
	page.Set("Parent", pagesRef)
	page.Set("MediaBox", Array{Integer(0), Integer(0), Integer(612), Integer(792)})
	page.Set("Contents", content)
	pageRef := doc.Add(page)

	pages := NewDict()
	pages.Set("Type", Name("Pages"))
	pages.Set("Kids", Array{pageRef})
	pages.Set("Count", Integer(1))
	if err := doc.Set(pagesRef, pages); err != nil {
		t.Fatalf("set pages: %v", err)
	}

	catalog := NewDict()
	catalog.Set("Type", Name("Catalog"))
	catalog.Set("Pages", pagesRef)
	doc.SetRoot(doc.Add(catalog))

	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		t.Fatalf("write: %v", err)
	}
	data := out.Bytes()

	if !bytes.HasPrefix(data, []byte("%PDF-1.7\n")) {
		t.Fatalf("expected PDF 1.7 header, got %q", data[:9])
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Fatalf("expected %s terminator", "%%EOF")
	}

	// Every xref offset must point at the matching "N 0 obj" line.
	re := regexp.MustCompile(`(?m)^(\d{10}) 00000 n `)
	matches := re.FindAllSubmatch(data, -1)
	if len(matches) != 4 {
		t.Fatalf("expected 4 in-use xref entries, got %d", len(matches))
	}
	for i, m := range matches {
		off, err := strconv.Atoi(string(m[1]))
		if err != nil {
			t.Fatalf("parse offset: %v", err)
		}
		want := []byte(fmt.Sprintf("%d 0 obj\n", i+1))
		if !bytes.HasPrefix(data[off:], want) {
			t.Fatalf("xref entry %d points at %q, expected %q", i+1, data[off:off+10], want)
		}
	}

	// startxref must point at the xref table.
	se := regexp.MustCompile(`startxref\n(\d+)\n`)
	sm := se.FindSubmatch(data)
	if sm == nil {
		t.Fatal("missing startxref")
	}
	off, _ := strconv.Atoi(string(sm[1]))
	if !bytes.HasPrefix(data[off:], []byte("xref\n")) {
		t.Fatalf("startxref points at %q", data[off:off+4])
	}
}

func TestWriteToDeterministic(t *testing.T) {
	build := func() *Document {
		doc := NewDocument()
		d := NewDict()
		d.Set("Type", Name("Catalog"))
		doc.SetRoot(doc.Add(d))
		return doc
	}
	var a, b bytes.Buffer
	if _, err := build().WriteTo(&a); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if _, err := build().WriteTo(&b); err != nil {
		t.Fatalf("write b: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("expected identical output for identical graphs")
	}
}

func TestWriteToRejectsUnsetReservation(t *testing.T) {
	doc := NewDocument()
	doc.Reserve()
	d := NewDict()
	d.Set("Type", Name("Catalog"))
	doc.SetRoot(doc.Add(d))
	if _, err := doc.WriteTo(&bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unset reservation")
	}
}

func TestWriteToRequiresRoot(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewDict())
	if _, err := doc.WriteTo(&bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing root")
	}
}
