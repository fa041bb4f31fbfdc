package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// HistoryLimit is the number of titles kept in the play history.
const HistoryLimit = 10

// HistoryEntry is one played title.
type HistoryEntry struct {
	ID       int64
	Title    string
	PlayedAt time.Time
}

// AppendHistory adds title to the play history. A title equal to the most
// recent entry is ignored, and only the newest HistoryLimit entries are kept.
func (s *Store) AppendHistory(title string) error {
	if title == "" {
		return errors.New("storage: empty history title")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin history update: %w", err)
	}
	defer tx.Rollback()

	var last string
	err = tx.QueryRow("SELECT title FROM play_history ORDER BY id DESC LIMIT 1").Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("storage: cannot read history: %w", err)
	case last == title:
		return nil
	}

	if _, err := tx.Exec("INSERT INTO play_history (title) VALUES (?)", title); err != nil {
		return fmt.Errorf("storage: cannot append history: %w", err)
	}
	if _, err := tx.Exec(
		`DELETE FROM play_history
		 WHERE id NOT IN (SELECT id FROM play_history ORDER BY id DESC LIMIT ?)`,
		HistoryLimit,
	); err != nil {
		return fmt.Errorf("storage: cannot trim history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit history: %w", err)
	}
	return nil
}

// History returns up to limit entries, newest first. A non-positive limit
// returns the whole history.
func (s *Store) History(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = HistoryLimit
	}

	rows, err := s.db.Query(
		"SELECT id, title, played_at FROM play_history ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var playedAt any
		if err := rows.Scan(&e.ID, &e.Title, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.PlayedAt = parseTime(playedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearHistory deletes the play history.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM play_history"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}
