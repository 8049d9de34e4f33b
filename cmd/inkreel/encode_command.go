package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"inkreel/internal/artifact"
	"inkreel/internal/bitstream"
	"inkreel/internal/config"
	"inkreel/internal/encoder"
	"inkreel/internal/framesource"
	"inkreel/internal/history"
)

type encodeArgs struct {
	videoPath  string
	audioPath  string
	outputPath string
	width      int
	height     int
	fps        float64
	threshold  uint8
	maxFrames  int
	url        string
}

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode VIDEO AUDIO OUTPUT WIDTH HEIGHT FPS THRESHOLD MAX_FRAMES URL",
		Short: "Encode a video and audio pair into a PDF artifact",
		Long: `Encode decodes VIDEO through ffmpeg into grayscale frames, thresholds and
delta-packs them into a 1-bit bitstream, then writes OUTPUT: a PDF embedding
the bitstream and the untouched AUDIO file, with a START button linking URL.

THRESHOLD (0-255) selects which samples become ink; MAX_FRAMES of 0 encodes
the whole video.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 9 {
				return fmt.Errorf("expected 9 arguments, got %d\n\n%s", len(args), cmd.UsageString())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseEncodeArgs(args)
			if err != nil {
				return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runEncode(cmd.Context(), cfg, ctx.ensureLogger(), parsed, cmd.OutOrStdout())
		},
	}
	return cmd
}

func parseEncodeArgs(args []string) (encodeArgs, error) {
	parsed := encodeArgs{
		videoPath:  args[0],
		audioPath:  args[1],
		outputPath: args[2],
		url:        args[8],
	}

	width, err := strconv.Atoi(args[3])
	if err != nil {
		return encodeArgs{}, fmt.Errorf("invalid width %q", args[3])
	}
	height, err := strconv.Atoi(args[4])
	if err != nil {
		return encodeArgs{}, fmt.Errorf("invalid height %q", args[4])
	}
	fps, err := strconv.ParseFloat(args[5], 64)
	if err != nil {
		return encodeArgs{}, fmt.Errorf("invalid frame rate %q", args[5])
	}
	threshold, err := strconv.ParseUint(args[6], 10, 8)
	if err != nil {
		return encodeArgs{}, fmt.Errorf("invalid threshold %q (must be 0-255)", args[6])
	}
	maxFrames, err := strconv.Atoi(args[7])
	if err != nil || maxFrames < 0 {
		return encodeArgs{}, fmt.Errorf("invalid max frame count %q", args[7])
	}

	parsed.width = width
	parsed.height = height
	parsed.fps = fps
	parsed.threshold = uint8(threshold)
	parsed.maxFrames = maxFrames
	return parsed, nil
}

func runEncode(parent context.Context, cfg *config.Config, logger *slog.Logger, args encodeArgs, out io.Writer) error {
	runCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	videoPath, err := config.ExpandPath(args.videoPath)
	if err != nil {
		return err
	}
	audioPath, err := config.ExpandPath(args.audioPath)
	if err != nil {
		return err
	}
	outputPath, err := config.ExpandPath(args.outputPath)
	if err != nil {
		return err
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire encode lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another inkreel encode is already running (lock at %s)", cfg.LockPath())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release encode lock", slog.String("error", err.Error()))
		}
	}()

	start := time.Now()
	logger.Info("starting encode",
		slog.String("video", videoPath),
		slog.String("audio", audioPath),
		slog.String("output", outputPath),
		slog.Int("width", args.width),
		slog.Int("height", args.height),
		slog.Float64("fps", args.fps))

	src, err := framesource.Start(runCtx, cfg.FFmpeg.Binary, videoPath, args.width, args.height, args.fps)
	if err != nil {
		return fmt.Errorf("start frame source: %w", err)
	}
	defer src.Close()

	result, err := encoder.Encode(src, encoder.Options{
		Width:     args.width,
		Height:    args.height,
		FPS:       args.fps,
		Threshold: args.threshold,
		MaxFrames: args.maxFrames,
	}, logger)
	if err != nil {
		return fmt.Errorf("encode bitstream: %w", err)
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return fmt.Errorf("read audio: %w", err)
	}

	art, err := artifact.Build(args.url, result.Blob, audio)
	if err != nil {
		return fmt.Errorf("build artifact: %w", err)
	}
	if err := art.Save(outputPath); err != nil {
		return err
	}

	logger.Info("encode complete",
		slog.String("output", outputPath),
		slog.Int("frames", result.FrameCount),
		slog.Int("blob_bytes", len(result.Blob)),
		slog.Int("audio_bytes", len(audio)),
		slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)))

	recordEncode(runCtx, cfg, logger, args, result, outputPath, int64(len(audio)))

	fmt.Fprintf(out, "Wrote %s (%d frames, %d byte bitstream, %d byte audio)\n",
		outputPath, result.FrameCount, len(result.Blob), len(audio))
	return nil
}

// recordEncode persists the run to the history store. History problems are
// logged and swallowed; the artifact on disk is already good.
func recordEncode(ctx context.Context, cfg *config.Config, logger *slog.Logger, args encodeArgs, result encoder.Result, outputPath string, audioBytes int64) {
	if !cfg.History.Enabled {
		return
	}

	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("open history store", slog.String("error", err.Error()))
		return
	}
	defer store.Close()

	_, err = store.Add(ctx, history.Record{
		VideoPath:  args.videoPath,
		AudioPath:  args.audioPath,
		OutputPath: outputPath,
		Width:      args.width,
		Height:     args.height,
		FPSx100:    int(bitstream.FPSx100(args.fps)),
		FrameCount: result.FrameCount,
		BlobBytes:  int64(len(result.Blob)),
		AudioBytes: audioBytes,
		TriggerURL: args.url,
	})
	if err != nil {
		logger.Warn("record encode history", slog.String("error", err.Error()))
	}
}
