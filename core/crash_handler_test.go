package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// captureCrash swaps the exit and output hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1

	prevOut, prevExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		RegisterScreen(nil)
	})
	return &buf, &code
}

func TestHandleCrashNil(t *testing.T) {
	buf, code := captureCrash(t)
	HandleCrash(nil)
	if buf.Len() != 0 || *code != -1 {
		t.Error("Expected nil recover value to be ignored")
	}
}

func TestHandleCrashRestoresScreen(t *testing.T) {
	buf, code := captureCrash(t)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	RegisterScreen(screen)

	HandleCrash("boom")

	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Stack Trace") {
		t.Error("Expected stack trace in output")
	}
}

func TestGoRecoversPanic(t *testing.T) {
	_, code := captureCrash(t)

	var wg sync.WaitGroup
	wg.Add(1)
	crashExit = func(c int) {
		*code = c
		wg.Done()
	}

	Go(func() { panic("worker failed") })
	wg.Wait()

	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
}
