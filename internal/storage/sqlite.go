// Package storage keeps the scoreboard of the current session in an in-memory
// SQLite database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// MemoryDSN names a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the SQLite connection holding the session's games.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID         int64
	Difficulty config.Difficulty
	Score      int
	Playtime   time.Duration
	CreatedAt  time.Time
}

// Open opens the database described by dsn and runs migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: gets its own empty database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// OpenMemory opens an empty session scoreboard.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			playtime_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The session's games are gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished game and returns the ID of the inserted record.
func (s *Store) SaveRun(d config.Difficulty, score int, playtime time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (difficulty, score, playtime_ms) VALUES (?, ?, ?)",
		d.ID(), score, playtime.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// HighScore returns the best score at the given difficulty and whether any
// game was played at it. Scores can be negative, so zero is not a sentinel.
func (s *Store) HighScore(d config.Difficulty) (int, bool, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE difficulty = ?",
		d.ID(),
	).Scan(&score)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, false, nil
	}
	return int(score.Int64), true, nil
}

// RecordGame saves a run and returns the session best for its difficulty.
func (s *Store) RecordGame(d config.Difficulty, score int, playtime time.Duration) (int, error) {
	if _, err := s.SaveRun(d, score, playtime); err != nil {
		return 0, err
	}
	best, _, err := s.HighScore(d)
	return best, err
}

var _ snake.Recorder = (*Store)(nil)

// TopRuns retrieves the best runs at the given difficulty, highest score first.
// Ties go to the shorter game.
func (s *Store) TopRuns(d config.Difficulty, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, playtime_ms, created_at
		 FROM runs
		 WHERE difficulty = ?
		 ORDER BY score DESC, playtime_ms ASC
		 LIMIT ?`,
		d.ID(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			diffID    string
			playMs    int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &diffID, &r.Score, &playMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Difficulty, _ = config.ParseDifficulty(diffID)
		r.Playtime = time.Duration(playMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DifficultyStats aggregates the session's games at one difficulty.
type DifficultyStats struct {
	Difficulty    config.Difficulty
	GamesCount    int
	HighScore     int
	AvgScore      float64
	TotalPlaytime time.Duration
}

// SessionStats returns statistics for every difficulty played this session,
// ordered from Easy to the hardest level.
func (s *Store) SessionStats() ([]DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), SUM(playtime_ms)
		 FROM runs
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	defer rows.Close()

	byDifficulty := make(map[config.Difficulty]DifficultyStats)
	for rows.Next() {
		var (
			st     DifficultyStats
			diffID string
			playMs int64
		)
		if err := rows.Scan(&diffID, &st.GamesCount, &st.HighScore, &st.AvgScore, &playMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		d, err := config.ParseDifficulty(diffID)
		if err != nil {
			continue
		}
		st.Difficulty = d
		st.TotalPlaytime = time.Duration(playMs) * time.Millisecond
		byDifficulty[d] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	var stats []DifficultyStats
	for _, d := range config.All() {
		if st, ok := byDifficulty[d]; ok {
			stats = append(stats, st)
		}
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
