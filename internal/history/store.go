package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"inkreel/internal/config"
)

// Record describes one completed encode.
type Record struct {
	ID         int64
	CreatedAt  time.Time
	VideoPath  string
	AudioPath  string
	OutputPath string
	Width      int
	Height     int
	FPSx100    int
	FrameCount int
	BlobBytes  int64
	AudioBytes int64
	TriggerURL string
}

// Store manages encode history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS encodes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	video_path TEXT NOT NULL,
	audio_path TEXT NOT NULL,
	output_path TEXT NOT NULL,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	fps_x100 INTEGER NOT NULL,
	frame_count INTEGER NOT NULL,
	blob_bytes INTEGER NOT NULL,
	audio_bytes INTEGER NOT NULL,
	trigger_url TEXT NOT NULL
);
`

// Open initializes or connects to the history database under the log dir.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Add inserts a completed encode and returns its assigned ID.
func (s *Store) Add(ctx context.Context, rec Record) (int64, error) {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO encodes (
			created_at, video_path, audio_path, output_path,
			width, height, fps_x100, frame_count,
			blob_bytes, audio_bytes, trigger_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt.Format(time.RFC3339),
		rec.VideoPath, rec.AudioPath, rec.OutputPath,
		rec.Width, rec.Height, rec.FPSx100, rec.FrameCount,
		rec.BlobBytes, rec.AudioBytes, rec.TriggerURL,
	)
	if err != nil {
		return 0, fmt.Errorf("insert encode record: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent encodes, newest first. A non-positive limit
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, created_at, video_path, audio_path, output_path,
			width, height, fps_x100, frame_count,
			blob_bytes, audio_bytes, trigger_url
		FROM encodes ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list encodes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var created string
		if err := rows.Scan(
			&rec.ID, &created, &rec.VideoPath, &rec.AudioPath, &rec.OutputPath,
			&rec.Width, &rec.Height, &rec.FPSx100, &rec.FrameCount,
			&rec.BlobBytes, &rec.AudioBytes, &rec.TriggerURL,
		); err != nil {
			return nil, fmt.Errorf("scan encode record: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339, created); parseErr == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
