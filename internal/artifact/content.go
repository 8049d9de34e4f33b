package artifact

import (
	"bytes"
	"fmt"
	"strconv"
)

// Label placement inside the button, relative to its lower-left corner.
const (
	labelFontSize = 36
	labelOffsetX  = 80
	labelOffsetY  = 35
)

// buttonContent draws the START button: a light-gray filled rectangle, a
// 2-unit black stroked border on the same rectangle, and the label in the
// page's F1 font.
func buttonContent(r Rect, label string) []byte {
	var buf bytes.Buffer
	w := r.URX - r.LLX
	h := r.URY - r.LLY

	buf.WriteString("q\n")
	buf.WriteString("0.9 g\n")
	fmt.Fprintf(&buf, "%s %s %s %s re\n", num(r.LLX), num(r.LLY), num(w), num(h))
	buf.WriteString("f\n")
	buf.WriteString("0 g\n")
	buf.WriteString("2 w\n")
	fmt.Fprintf(&buf, "%s %s %s %s re\n", num(r.LLX), num(r.LLY), num(w), num(h))
	buf.WriteString("S\n")
	buf.WriteString("BT\n")
	fmt.Fprintf(&buf, "/F1 %d Tf\n", labelFontSize)
	fmt.Fprintf(&buf, "%s %s Td\n", num(r.LLX+labelOffsetX), num(r.LLY+labelOffsetY))
	fmt.Fprintf(&buf, "(%s) Tj\n", label)
	buf.WriteString("ET\n")
	buf.WriteString("Q\n")
	return buf.Bytes()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
