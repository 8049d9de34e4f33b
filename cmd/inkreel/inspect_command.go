package main

import (
	"fmt"
	"math/bits"
	"os"

	"github.com/spf13/cobra"

	"inkreel/internal/bitstream"
	"inkreel/internal/config"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "inspect BLOB",
		Short:       "Summarize an encoded bitstream blob",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read blob: %w", err)
			}

			stats, err := inspectBlob(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Field", "Value"},
				stats.rows(),
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}

type blobStats struct {
	header    bitstream.Header
	blobBytes int
	// Fraction of on bits across all reconstructed frames, 0 when empty.
	meanInk float64
	// Bits flipped per diff frame, averaged over frames 1..n-1.
	meanChanged float64
}

// inspectBlob validates a blob end to end: header, exact body length, and a
// full delta replay so a corrupt diff stream cannot pass quietly.
func inspectBlob(data []byte) (blobStats, error) {
	header, err := bitstream.ParseHeader(data)
	if err != nil {
		return blobStats{}, err
	}

	frameLen := header.FrameLen()
	body := data[bitstream.HeaderLen:]
	want := frameLen * int(header.FrameCount)
	if len(body) != want {
		return blobStats{}, fmt.Errorf("blob body: %d bytes, want %d (%d frames of %d bytes)",
			len(body), want, header.FrameCount, frameLen)
	}

	stats := blobStats{header: header, blobBytes: len(data)}
	if header.FrameCount == 0 {
		return stats, nil
	}

	totalBits := int(header.Width) * int(header.Height) * int(header.FrameCount)
	var acc bitstream.Accumulator
	var onBits, changedBits int
	for i := 0; i < int(header.FrameCount); i++ {
		diff := body[i*frameLen : (i+1)*frameLen]
		if i > 0 {
			for _, b := range diff {
				changedBits += bits.OnesCount8(b)
			}
		}
		raw, err := acc.Apply(diff)
		if err != nil {
			return blobStats{}, fmt.Errorf("replay frame %d: %w", i, err)
		}
		for _, b := range raw {
			onBits += bits.OnesCount8(b)
		}
	}

	stats.meanInk = float64(onBits) / float64(totalBits)
	if header.FrameCount > 1 {
		stats.meanChanged = float64(changedBits) / float64(header.FrameCount-1)
	}
	return stats, nil
}

func (s blobStats) rows() [][]string {
	h := s.header
	duration := 0.0
	if fps := h.FPS(); fps > 0 {
		duration = float64(h.FrameCount) / fps
	}
	return [][]string{
		{"Resolution", fmt.Sprintf("%dx%d", h.Width, h.Height)},
		{"Frame rate", fmt.Sprintf("%.2f fps", h.FPS())},
		{"Frames", fmt.Sprintf("%d", h.FrameCount)},
		{"Duration", fmt.Sprintf("%.2fs", duration)},
		{"Frame bytes", fmt.Sprintf("%d", h.FrameLen())},
		{"Blob bytes", fmt.Sprintf("%d", s.blobBytes)},
		{"Mean ink coverage", fmt.Sprintf("%.1f%%", s.meanInk*100)},
		{"Mean bits changed/frame", fmt.Sprintf("%.1f", s.meanChanged)},
	}
}
