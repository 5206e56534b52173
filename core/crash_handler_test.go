package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHandleCrashNilIsNoop(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()

	RegisterScreen(screen)
	defer RegisterScreen(nil)

	// Returns without exiting or finalizing
	HandleCrash(nil)

	crashMu.Lock()
	registered := crashScreen
	crashMu.Unlock()
	if registered != screen {
		t.Error("Expected screen to stay registered after nil recovery")
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan int, 1)
	Go(func() { done <- 42 })

	if got := <-done; got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}
}
