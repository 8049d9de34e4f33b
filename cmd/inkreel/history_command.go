package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"inkreel/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past encodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No encodes recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, historyRow(rec))
			}
			headers := []string{"ID", "Created", "Output", "Size", "FPS", "Frames", "Blob", "URL"}
			if stdoutIsTerminal() {
				fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{
					alignRight, alignLeft, alignLeft, alignLeft,
					alignRight, alignRight, alignRight, alignLeft,
				}))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintln(out, strings.Join(row, "\t"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show (0 for all)")
	return cmd
}

func historyRow(rec history.Record) []string {
	created := ""
	if !rec.CreatedAt.IsZero() {
		created = rec.CreatedAt.Local().Format(time.DateTime)
	}
	return []string{
		fmt.Sprintf("%d", rec.ID),
		created,
		rec.OutputPath,
		fmt.Sprintf("%dx%d", rec.Width, rec.Height),
		fmt.Sprintf("%.2f", float64(rec.FPSx100)/100),
		fmt.Sprintf("%d", rec.FrameCount),
		formatBytes(rec.BlobBytes),
		rec.TriggerURL,
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	suffixes := []string{"KiB", "MiB", "GiB", "TiB"}
	for _, suffix := range suffixes {
		value /= unit
		if value < unit || suffix == suffixes[len(suffixes)-1] {
			return fmt.Sprintf("%.1f %s", value, suffix)
		}
	}
	return fmt.Sprintf("%d B", n)
}
