package state

import (
	"testing"

	"mastermind/pkg/game/code"
)

var secret = code.Code{'B', 'G', 'O', 'R'}

func playing(t *testing.T, maxAttempts int) *Game {
	t.Helper()
	g := NewGame(secret, maxAttempts)
	g.Begin()
	if g.Phase != PhaseAwaitingGuess {
		t.Fatalf("Phase after Begin = %v, want %v", g.Phase, PhaseAwaitingGuess)
	}
	return g
}

func TestNewGame_DefaultMaxAttempts(t *testing.T) {
	g := NewGame(secret, 0)
	if g.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("MaxAttempts = %d, want %d", g.MaxAttempts, DefaultMaxAttempts)
	}
	if g.Phase != PhaseStart {
		t.Errorf("Phase = %v, want %v", g.Phase, PhaseStart)
	}
}

func TestRecord_Win(t *testing.T) {
	g := playing(t, 10)
	g.Evaluate()
	g.Record(secret, code.Feedback{Exact: code.Length})

	if g.Phase != PhaseWon || !g.Won {
		t.Errorf("Phase = %v, Won = %v, want won", g.Phase, g.Won)
	}
	if g.AttemptsUsed != 1 {
		t.Errorf("AttemptsUsed = %d, want 1", g.AttemptsUsed)
	}
	if !g.Terminal() {
		t.Error("Terminal() = false, want true")
	}
}

func TestRecord_LoseAfterMaxAttempts(t *testing.T) {
	g := playing(t, 3)
	miss := code.Feedback{Exact: 1, Partial: 1}
	guess := code.Code{'B', 'B', 'B', 'B'}

	for i := 1; i <= 3; i++ {
		if g.Terminal() {
			t.Fatalf("terminal after %d attempts", i-1)
		}
		g.Evaluate()
		g.Record(guess, miss)
	}

	if g.Phase != PhaseLost || g.Won {
		t.Errorf("Phase = %v, Won = %v, want lost", g.Phase, g.Won)
	}
	if g.AttemptsLeft() != 0 {
		t.Errorf("AttemptsLeft() = %d, want 0", g.AttemptsLeft())
	}
	if len(g.History) != 3 {
		t.Errorf("len(History) = %d, want 3", len(g.History))
	}
}

func TestAbandon_DoesNotConsumeAttempt(t *testing.T) {
	g := playing(t, 10)
	g.Abandon()
	if g.Phase != PhaseLost {
		t.Errorf("Phase = %v, want %v", g.Phase, PhaseLost)
	}
	if g.AttemptsUsed != 0 {
		t.Errorf("AttemptsUsed = %d, want 0", g.AttemptsUsed)
	}
}

func TestAbandon_KeepsWin(t *testing.T) {
	g := playing(t, 10)
	g.Evaluate()
	g.Record(secret, code.Feedback{Exact: code.Length})
	g.Abandon()
	if g.Phase != PhaseWon {
		t.Errorf("Phase = %v, want %v", g.Phase, PhaseWon)
	}
}

func TestRecord_PanicsWhenTerminal(t *testing.T) {
	g := playing(t, 1)
	g.Evaluate()
	g.Record(secret, code.Feedback{})

	defer func() {
		if recover() == nil {
			t.Error("Record after loss did not panic")
		}
	}()
	g.Record(secret, code.Feedback{})
}

func TestPhase_String(t *testing.T) {
	if got := PhaseAwaitingGuess.String(); got != "awaiting_guess" {
		t.Errorf("String() = %q", got)
	}
	if got := Phase(99).String(); got != "phase(99)" {
		t.Errorf("String() = %q", got)
	}
}
