// Package store persists one high score per game name and an append-only run
// history. The SQL backend is gorm over pure-Go sqlite; Memory serves tests and
// the no-persistence mode.
package store

import (
	"context"
	"time"
)

// Run is one finished run, kept for history only
type Run struct {
	ID        string `gorm:"primaryKey;size:36"`
	Game      string `gorm:"index;size:32"`
	Score     int
	Reason    string
	StartedAt time.Time
	EndedAt   time.Time
}

// HighScore is the persisted scalar per game
type HighScore struct {
	Game      string `gorm:"primaryKey;size:32"`
	Score     int
	UpdatedAt time.Time
}

// Store is the persisted high-score contract
type Store interface {
	HighScore(ctx context.Context, game string) (int, error)
	SetHighScore(ctx context.Context, game string, score int) error
	RecordRun(ctx context.Context, run Run) error
	Close() error
}
