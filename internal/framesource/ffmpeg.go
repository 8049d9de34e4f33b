package framesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// Process is a Source backed by a running ffmpeg child. Frames arrive on the
// child's stdout as an unframed raw byte stream; its stderr is passed through
// for operator visibility and never parsed.
type Process struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser

	mu     sync.Mutex
	waited bool
	werr   error
}

// Start spawns ffmpeg decoding path into raw gray frames at the requested
// rate and geometry. A non-positive fps falls back to 30.
func Start(ctx context.Context, binary, path string, width, height int, fps float64) (*Process, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("frame source: empty input path")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame source: invalid geometry %dx%d", width, height)
	}

	fpsArg := "30"
	if fps > 0 {
		fpsArg = strconv.FormatFloat(fps, 'f', -1, 64)
	}
	vf := fmt.Sprintf("fps=%s,scale=%d:%d,format=gray", fpsArg, width, height)

	cmd := exec.CommandContext(ctx, binary,
		"-hide_banner",
		"-loglevel", "error",
		"-i", path,
		"-vf", vf,
		"-f", "rawvideo",
		"-pix_fmt", "gray",
		"pipe:1",
	)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("frame source: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("frame source: spawn %s: %w", binary, err)
	}
	return &Process{cmd: cmd, stdout: stdout}, nil
}

// ReadFrame blocks until a full frame is available. The producer provides
// natural backpressure; at most one frame is buffered here.
func (p *Process) ReadFrame(buf []byte) (bool, error) {
	return readFull(p.stdout, buf)
}

// Verify reaps the child and reports a non-zero exit. Call after draining
// the stream so that every already-produced frame has been consumed first.
func (p *Process) Verify() error {
	if err := p.wait(); err != nil {
		return fmt.Errorf("frame source: %w", err)
	}
	return nil
}

// Close reaps the child, ignoring its exit status. On an early break the
// consumer closes the pipe deliberately, so the resulting exit code carries
// no signal.
func (p *Process) Close() error {
	_ = p.wait()
	return nil
}

func (p *Process) wait() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.waited {
		return p.werr
	}
	p.waited = true
	_ = p.stdout.Close()
	p.werr = p.cmd.Wait()
	return p.werr
}
