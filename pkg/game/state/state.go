package state

import (
	"fmt"

	"mastermind/pkg/game/code"
)

// DefaultMaxAttempts is the number of guesses a player gets.
const DefaultMaxAttempts = 10

// Phase represents where the game is in its turn cycle
type Phase int

// Phases
const (
	PhaseStart Phase = iota
	PhaseAwaitingGuess
	PhaseEvaluating
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseAwaitingGuess:
		return "awaiting_guess"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Game represents the state of a single game
type Game struct {
	Secret code.Code

	AttemptsUsed int
	MaxAttempts  int

	Won bool

	Phase Phase

	// Guesses made so far, in order
	History []Turn
}

// Turn is one scored guess
type Turn struct {
	Guess    code.Code
	Feedback code.Feedback
}

// NewGame creates a new game for the given secret.
// A non-positive maxAttempts selects DefaultMaxAttempts.
func NewGame(secret code.Code, maxAttempts int) *Game {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Game{
		Secret:      secret,
		MaxAttempts: maxAttempts,
		Phase:       PhaseStart,
	}
}

// Begin moves a fresh game to the awaiting-guess phase
func (g *Game) Begin() {
	if g.Phase != PhaseStart {
		panic(fmt.Sprintf("state: Begin called in phase %v", g.Phase))
	}
	g.Phase = PhaseAwaitingGuess
}

// Evaluate marks a valid guess as being scored
func (g *Game) Evaluate() {
	if g.Phase != PhaseAwaitingGuess {
		panic(fmt.Sprintf("state: Evaluate called in phase %v", g.Phase))
	}
	g.Phase = PhaseEvaluating
}

// Record consumes an attempt for a scored guess and moves to the next phase.
func (g *Game) Record(guess code.Code, fb code.Feedback) {
	if g.Phase != PhaseEvaluating {
		panic(fmt.Sprintf("state: Record called in phase %v", g.Phase))
	}

	g.AttemptsUsed++
	g.History = append(g.History, Turn{Guess: guess, Feedback: fb})

	switch {
	case fb.Solved():
		g.Won = true
		g.Phase = PhaseWon
	case g.AttemptsUsed >= g.MaxAttempts:
		g.Phase = PhaseLost
	default:
		g.Phase = PhaseAwaitingGuess
	}
}

// Abandon ends the game as a loss without consuming an attempt,
// e.g. when the player's input runs out.
func (g *Game) Abandon() {
	if g.Terminal() {
		return
	}
	g.Phase = PhaseLost
}

// Terminal reports whether the game has been won or lost
func (g *Game) Terminal() bool {
	return g.Phase == PhaseWon || g.Phase == PhaseLost
}

// AttemptsLeft returns the number of guesses the player still has
func (g *Game) AttemptsLeft() int {
	return g.MaxAttempts - g.AttemptsUsed
}
