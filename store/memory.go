package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is a process-local Store
type Memory struct {
	mu     sync.Mutex
	scores map[string]int
	runs   []Run
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{scores: make(map[string]int)}
}

func (m *Memory) HighScore(_ context.Context, game string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[game], nil
}

func (m *Memory) SetHighScore(_ context.Context, game string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[game] = score
	return nil
}

func (m *Memory) RecordRun(_ context.Context, run Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	m.runs = append(m.runs, run)
	return nil
}

// Runs returns a copy of recorded runs in insertion order
func (m *Memory) Runs() []Run {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Run(nil), m.runs...)
}

func (m *Memory) Close() error { return nil }
