package bitstream

import (
	"bytes"
	"testing"
)

func TestHeaderWireFormat(t *testing.T) {
	h := Header{Width: 160, Height: 120, FPSx100: FPSx100(29.97), FrameCount: 5}
	got := h.AppendBinary(nil)
	want := []byte{0xA0, 0x00, 0x78, 0x00, 0xB9, 0x0B, 0x05, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected % X, got % X", want, got)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Width: 320, Height: 240, FPSx100: 2400, FrameCount: 1234}
	parsed, err := ParseHeader(h.AppendBinary(nil))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != h {
		t.Fatalf("expected %+v, got %+v", h, parsed)
	}
	if parsed.FPS() != 24.0 {
		t.Fatalf("expected fps 24, got %v", parsed.FPS())
	}
	if parsed.FrameLen() != PackedLen(320*240) {
		t.Fatalf("unexpected frame length %d", parsed.FrameLen())
	}
}

func TestParseHeaderShortInput(t *testing.T) {
	if _, err := ParseHeader(make([]byte, 9)); err == nil {
		t.Fatal("expected error for short header")
	}
}

func TestFPSx100(t *testing.T) {
	cases := []struct {
		fps  float64
		want uint16
	}{
		{29.97, 2997},
		{30, 3000},
		{0.001, 1},       // clamp low
		{1000, 65535},    // clamp high
		{0, 3000},        // default applied before conversion
		{-5, 3000},       // default applied before conversion
		{23.976, 2398},   // round to nearest
		{59.94, 5994},
	}
	for _, tc := range cases {
		if got := FPSx100(tc.fps); got != tc.want {
			t.Fatalf("fps %v: expected %d, got %d", tc.fps, tc.want, got)
		}
	}
}
