package pdf

import (
	"bytes"
	"fmt"
	"strconv"
)

// Object is any value that can appear in the document graph.
type Object interface {
	encode(buf *bytes.Buffer)
}

// Name is a PDF name object (written with a leading slash).
type Name string

// String is a PDF literal string.
type String []byte

// Integer is a PDF integer number.
type Integer int64

// Real is a PDF real number.
type Real float64

// Boolean is a PDF boolean.
type Boolean bool

// Array is an ordered list of objects.
type Array []Object

// Ref is an indirect reference to an arena object.
type Ref struct {
	Num int
	Gen int
}

func (n Name) encode(buf *bytes.Buffer) {
	buf.WriteByte('/')
	for i := 0; i < len(n); i++ {
		c := n[i]
		if isRegularNameByte(c) {
			buf.WriteByte(c)
		} else {
			fmt.Fprintf(buf, "#%02X", c)
		}
	}
}

// isRegularNameByte reports whether c may appear unescaped in a name:
// printable ASCII excluding whitespace, delimiters, and the escape char.
func isRegularNameByte(c byte) bool {
	if c <= ' ' || c > '~' {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%', '#':
		return false
	}
	return true
}

func (s String) encode(buf *bytes.Buffer) {
	buf.WriteByte('(')
	for _, c := range s {
		switch c {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\r':
			buf.WriteString(`\r`)
		case '\n':
			buf.WriteString(`\n`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
}

func (i Integer) encode(buf *bytes.Buffer) {
	buf.WriteString(strconv.FormatInt(int64(i), 10))
}

func (r Real) encode(buf *bytes.Buffer) {
	buf.WriteString(strconv.FormatFloat(float64(r), 'f', -1, 64))
}

func (b Boolean) encode(buf *bytes.Buffer) {
	buf.WriteString(strconv.FormatBool(bool(b)))
}

func (a Array) encode(buf *bytes.Buffer) {
	buf.WriteByte('[')
	for i, obj := range a {
		if i > 0 {
			buf.WriteByte(' ')
		}
		obj.encode(buf)
	}
	buf.WriteByte(']')
}

func (r Ref) encode(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "%d %d R", r.Num, r.Gen)
}

// Dict is a PDF dictionary preserving insertion order so output stays
// deterministic.
type Dict struct {
	keys []Name
	kv   map[Name]Object
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{kv: make(map[Name]Object)}
}

// Set stores or replaces an entry, keeping first-insertion order.
func (d *Dict) Set(key string, value Object) *Dict {
	name := Name(key)
	if _, ok := d.kv[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.kv[name] = value
	return d
}

// Get returns the entry for key.
func (d *Dict) Get(key string) (Object, bool) {
	v, ok := d.kv[Name(key)]
	return v, ok
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.keys)
}

func (d *Dict) encode(buf *bytes.Buffer) {
	buf.WriteString("<<")
	for _, key := range d.keys {
		buf.WriteByte(' ')
		key.encode(buf)
		buf.WriteByte(' ')
		d.kv[key].encode(buf)
	}
	buf.WriteString(" >>")
}

// Stream is a dictionary with an attached raw payload. The payload is
// stored exactly as given; no filter is applied.
type Stream struct {
	Dict *Dict
	Data []byte
}

// NewStream pairs dict with data and sets the Length entry.
func NewStream(dict *Dict, data []byte) *Stream {
	if dict == nil {
		dict = NewDict()
	}
	dict.Set("Length", Integer(len(data)))
	return &Stream{Dict: dict, Data: data}
}

func (s *Stream) encode(buf *bytes.Buffer) {
	s.Dict.encode(buf)
	buf.WriteString("\nstream\n")
	buf.Write(s.Data)
	buf.WriteString("\nendstream")
}
