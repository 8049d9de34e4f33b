package framesource

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestReaderSourceFrames(t *testing.T) {
	src := FromReader(bytes.NewReader([]byte("AAAABBBB")))
	buf := make([]byte, 4)

	ok, err := src.ReadFrame(buf)
	if err != nil || !ok {
		t.Fatalf("expected first frame, got ok=%v err=%v", ok, err)
	}
	if string(buf) != "AAAA" {
		t.Fatalf("unexpected frame %q", buf)
	}
	ok, err = src.ReadFrame(buf)
	if err != nil || !ok {
		t.Fatalf("expected second frame, got ok=%v err=%v", ok, err)
	}
	ok, err = src.ReadFrame(buf)
	if err != nil || ok {
		t.Fatalf("expected clean end of stream, got ok=%v err=%v", ok, err)
	}
	if err := src.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestReaderSourceDropsPartialFrame(t *testing.T) {
	// Two full frames plus a short trailing one: the partial frame is
	// discarded without raising an error.
	src := FromReader(bytes.NewReader([]byte("AAAABBBBCC")))
	buf := make([]byte, 4)
	for i := 0; i < 2; i++ {
		ok, err := src.ReadFrame(buf)
		if err != nil || !ok {
			t.Fatalf("frame %d: ok=%v err=%v", i, ok, err)
		}
	}
	ok, err := src.ReadFrame(buf)
	if err != nil {
		t.Fatalf("expected silent truncation, got %v", err)
	}
	if ok {
		t.Fatal("expected end of stream after partial frame")
	}
}

func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestProcessDrainThenVerify(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\nprintf 'AAAABBBBCC'\nexit 0\n")
	proc, err := Start(context.Background(), stub, "in.mp4", 2, 2, 30)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer proc.Close()

	buf := make([]byte, 4)
	frames := 0
	for {
		ok, err := proc.ReadFrame(buf)
		if err != nil {
			t.Fatalf("read frame: %v", err)
		}
		if !ok {
			break
		}
		frames++
	}
	if frames != 2 {
		t.Fatalf("expected 2 full frames, got %d", frames)
	}
	if err := proc.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestProcessVerifyReportsExitAfterDrain(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\nprintf 'AAAA'\nexit 3\n")
	proc, err := Start(context.Background(), stub, "in.mp4", 2, 2, 30)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer proc.Close()

	buf := make([]byte, 4)
	ok, err := proc.ReadFrame(buf)
	if err != nil || !ok {
		t.Fatalf("expected drained frame before failure surfaces, got ok=%v err=%v", ok, err)
	}
	if ok, _ := proc.ReadFrame(buf); ok {
		t.Fatal("expected end of stream")
	}
	if err := proc.Verify(); err == nil {
		t.Fatal("expected verify to report non-zero exit")
	}
}

func TestStartRejectsBadInputs(t *testing.T) {
	if _, err := Start(context.Background(), "ffmpeg", "", 2, 2, 30); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := Start(context.Background(), "ffmpeg", "in.mp4", 0, 2, 30); err == nil {
		t.Fatal("expected error for zero width")
	}
}
