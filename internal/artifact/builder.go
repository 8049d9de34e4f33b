package artifact

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"inkreel/internal/fileutil"
	"inkreel/internal/pdf"
)

// Fixed attachment names; the external player extracts both by name, so
// they are part of the wire contract.
const (
	BitstreamName = "BA.bin"
	AudioName     = "AU.ogg"

	bitstreamMIME = "application/octet-stream"
	audioMIME     = "audio/ogg"
)

// Page geometry in user-space units (US Letter).
const (
	pageWidth  = 612
	pageHeight = 792
)

// Rect is an axis-aligned rectangle in page user space.
type Rect struct {
	LLX, LLY, URX, URY float64
}

// Contains reports whether the point lies in the rectangle. Edges count as
// inside, matching common viewer hit testing.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.LLX && x <= r.URX && y >= r.LLY && y <= r.URY
}

// TriggerRect is the button and link annotation region.
var TriggerRect = Rect{LLX: 156, LLY: 360, URX: 456, URY: 460}

// Artifact is a fully built document graph, ready to serialize.
type Artifact struct {
	doc         *pdf.Document
	url         string
	attachments map[string][]byte
}

// Build assembles the document object graph: one interactive page plus the
// two named attachments, registered both in the EmbeddedFiles name tree and
// in the catalog-level associated-files array.
func Build(url string, blob, audio []byte) (*Artifact, error) {
	if url == "" {
		return nil, errors.New("artifact: trigger URL required")
	}

	doc := pdf.NewDocument()
	pagesRef := doc.Reserve()

	font := pdf.NewDict()
	font.Set("Type", pdf.Name("Font"))
	font.Set("Subtype", pdf.Name("Type1"))
	font.Set("BaseFont", pdf.Name("Helvetica"))
	fontRef := doc.Add(font)

	attachments := map[string][]byte{
		BitstreamName: blob,
		AudioName:     audio,
	}
	filespecs := map[string]pdf.Ref{
		BitstreamName: addAttachment(doc, BitstreamName, blob, bitstreamMIME),
		AudioName:     addAttachment(doc, AudioName, audio, audioMIME),
	}

	// The EmbeddedFiles name tree requires its keys in lexical order.
	names := make([]string, 0, len(filespecs))
	for name := range filespecs {
		names = append(names, name)
	}
	sort.Strings(names)
	nameArray := make(pdf.Array, 0, 2*len(names))
	for _, name := range names {
		nameArray = append(nameArray, pdf.String(name), filespecs[name])
	}
	embedded := pdf.NewDict()
	embedded.Set("Names", nameArray)
	namesDict := pdf.NewDict()
	namesDict.Set("EmbeddedFiles", embedded)
	namesRef := doc.Add(namesDict)

	contentRef := doc.Add(pdf.NewStream(pdf.NewDict(), buttonContent(TriggerRect, "START")))

	annot := pdf.NewDict()
	annot.Set("Type", pdf.Name("Annot"))
	annot.Set("Subtype", pdf.Name("Link"))
	annot.Set("Rect", pdf.Array{
		pdf.Real(TriggerRect.LLX), pdf.Real(TriggerRect.LLY),
		pdf.Real(TriggerRect.URX), pdf.Real(TriggerRect.URY),
	})
	annot.Set("Border", pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(0)})
	action := pdf.NewDict()
	action.Set("S", pdf.Name("URI"))
	// The URL is stored as the literal string given, never re-encoded.
	action.Set("URI", pdf.String(url))
	annot.Set("A", action)
	annotRef := doc.Add(annot)

	fontRes := pdf.NewDict()
	fontRes.Set("F1", fontRef)
	resources := pdf.NewDict()
	resources.Set("Font", fontRes)

	page := pdf.NewDict()
	page.Set("Type", pdf.Name("Page"))
	page.Set("Parent", pagesRef)
	page.Set("MediaBox", pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(pageWidth), pdf.Integer(pageHeight)})
	page.Set("Resources", resources)
	page.Set("Contents", contentRef)
	page.Set("Annots", pdf.Array{annotRef})
	pageRef := doc.Add(page)

	pages := pdf.NewDict()
	pages.Set("Type", pdf.Name("Pages"))
	pages.Set("Kids", pdf.Array{pageRef})
	pages.Set("Count", pdf.Integer(1))
	if err := doc.Set(pagesRef, pages); err != nil {
		return nil, err
	}

	catalog := pdf.NewDict()
	catalog.Set("Type", pdf.Name("Catalog"))
	catalog.Set("Pages", pagesRef)
	catalog.Set("Names", namesRef)
	catalog.Set("AF", pdf.Array{filespecs[BitstreamName], filespecs[AudioName]})
	doc.SetRoot(doc.Add(catalog))

	return &Artifact{doc: doc, url: url, attachments: attachments}, nil
}

// addAttachment embeds a payload as an EmbeddedFile stream and returns the
// reference of its file-specification node. The filespec carries the same
// literal name as /F and as the Unicode /UF.
func addAttachment(doc *pdf.Document, name string, data []byte, mime string) pdf.Ref {
	streamDict := pdf.NewDict()
	streamDict.Set("Type", pdf.Name("EmbeddedFile"))
	streamDict.Set("Subtype", pdf.Name(mime))
	streamRef := doc.Add(pdf.NewStream(streamDict, data))

	ef := pdf.NewDict()
	ef.Set("F", streamRef)
	filespec := pdf.NewDict()
	filespec.Set("Type", pdf.Name("Filespec"))
	filespec.Set("F", pdf.String(name))
	filespec.Set("UF", pdf.String(name))
	filespec.Set("EF", ef)
	return doc.Add(filespec)
}

// Attachment returns the payload registered under name.
func (a *Artifact) Attachment(name string) ([]byte, bool) {
	data, ok := a.attachments[name]
	return data, ok
}

// ResolveTrigger returns the URL an activation at (x, y) opens, if any.
func (a *Artifact) ResolveTrigger(x, y float64) (string, bool) {
	if TriggerRect.Contains(x, y) {
		return a.url, true
	}
	return "", false
}

// WriteTo serializes the document graph in one pass.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	return a.doc.WriteTo(w)
}

// Save persists the artifact atomically. Any failure to write is fatal to
// the encode and surfaced unmodified.
func (a *Artifact) Save(path string) error {
	if err := fileutil.WriteStreamAtomic(path, 0o644, func(w io.Writer) error {
		_, err := a.doc.WriteTo(w)
		return err
	}); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}
