package main

import (
	"testing"
	"time"

	"inkreel/internal/history"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{1229770, "1.2 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tc := range cases {
		if got := formatBytes(tc.in); got != tc.want {
			t.Fatalf("formatBytes(%d): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestHistoryRow(t *testing.T) {
	rec := history.Record{
		ID:         7,
		CreatedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		OutputPath: "/out/reel.pdf",
		Width:      160,
		Height:     120,
		FPSx100:    2997,
		FrameCount: 512,
		BlobBytes:  1229770,
		TriggerURL: "https://example.com/play",
	}
	row := historyRow(rec)
	if row[0] != "7" || row[2] != "/out/reel.pdf" {
		t.Fatalf("unexpected row %v", row)
	}
	if row[3] != "160x120" || row[4] != "29.97" || row[5] != "512" {
		t.Fatalf("unexpected measurements in row %v", row)
	}
	if row[6] != "1.2 MiB" {
		t.Fatalf("unexpected blob size %q", row[6])
	}
}

func TestHistoryRowZeroTime(t *testing.T) {
	row := historyRow(history.Record{ID: 1})
	if row[1] != "" {
		t.Fatalf("expected empty created column, got %q", row[1])
	}
}
