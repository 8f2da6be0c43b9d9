package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SQLStore keeps scores in a sqlite file through gorm
type SQLStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// OpenSQLite opens or creates the database at path and migrates the schema
func OpenSQLite(path string, log zerolog.Logger) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}

	if err := prepare(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}

	log.Info().Str("path", path).Msg("Score store ready")
	return &SQLStore{db: db, log: log}, nil
}

// prepare applies connection pragmas and migrates the schema
func prepare(db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	if err := db.AutoMigrate(&HighScore{}, &Run{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// HighScore returns the stored score, 0 when the game has none yet
func (s *SQLStore) HighScore(ctx context.Context, game string) (int, error) {
	var hs HighScore
	err := s.db.WithContext(ctx).First(&hs, "game = ?", game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading high score for %s: %w", game, err)
	}
	return hs.Score, nil
}

// SetHighScore upserts the scalar for game
func (s *SQLStore) SetHighScore(ctx context.Context, game string, score int) error {
	hs := HighScore{Game: game, Score: score, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&hs).Error
	if err != nil {
		return fmt.Errorf("writing high score for %s: %w", game, err)
	}
	s.log.Debug().Str("game", game).Int("score", score).Msg("High score stored")
	return nil
}

// RecordRun appends a run row, assigning an ID when missing
func (s *SQLStore) RecordRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("recording run %s: %w", run.ID, err)
	}
	return nil
}

// Runs returns the most recent runs for a game, newest first
func (s *SQLStore) Runs(ctx context.Context, game string, limit int) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Where("game = ?", game).
		Order("ended_at desc").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("listing runs for %s: %w", game, err)
	}
	return runs, nil
}

// Close releases the underlying connection
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("accessing sql interface: %w", err)
	}
	return sqlDB.Close()
}
