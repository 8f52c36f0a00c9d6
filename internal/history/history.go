// Package history persists finished analysis reports to a local sqlite
// database. The engine itself never touches storage; the CLI records here
// after each run and failure to persist never fails an analysis.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"textmetrics/internal/engine"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS analyses (
    id INTEGER PRIMARY KEY,
    created_at TEXT NOT NULL,
    source TEXT NOT NULL,
    word_count INTEGER NOT NULL,
    sentence_count INTEGER NOT NULL,
    flesch_reading_ease REAL NOT NULL,
    flesch_kincaid_grade REAL NOT NULL,
    passive_ratio REAL NOT NULL,
    sentiment_polarity REAL NOT NULL,
    lexical_diversity REAL NOT NULL,
    reading_minutes REAL NOT NULL,
    report TEXT NOT NULL
);
`

type Entry struct {
	ID        int64
	CreatedAt time.Time
	Source    string
	Report    engine.Report
}

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// Record inserts one analysis into the history database. The frequently
// queried metrics get their own columns; the full report rides along as
// JSON so new fields survive without migrations.
func Record(dbPath, source string, rep engine.Report) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	raw, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if _, err := conn.Exec(
		`INSERT INTO analyses(created_at, source, word_count, sentence_count,
		    flesch_reading_ease, flesch_kincaid_grade, passive_ratio,
		    sentiment_polarity, lexical_diversity, reading_minutes, report)
		 VALUES(?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().UTC().Format(time.RFC3339),
		source,
		rep.WordCount,
		rep.SentenceCount,
		rep.FleschReadingEase,
		rep.FleschKincaidGrade,
		rep.PassiveRatio,
		rep.SentimentPolarity,
		rep.LexicalDiversityTTR,
		rep.EstimatedReadingMinutes,
		string(raw),
	); err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

// Recent returns the most recent analyses, newest first.
func Recent(dbPath string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(
		`SELECT id, created_at, source, report FROM analyses ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var createdAt, raw string
		if err := rows.Scan(&e.ID, &createdAt, &e.Source, &raw); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = ts
		}
		if err := json.Unmarshal([]byte(raw), &e.Report); err != nil {
			return nil, fmt.Errorf("parse stored report: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}
	return out, nil
}

// Count reports the number of stored analyses.
func Count(dbPath string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return n, nil
}
