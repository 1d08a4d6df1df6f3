// Package gameplay drives a game of Mastermind from the first banner to
// the final win or loss message.
package gameplay

import (
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mastermind/pkg/game/code"
	"mastermind/pkg/game/renderer"
	"mastermind/pkg/game/state"
	"mastermind/pkg/game/text"
)

// LineReader is the source of player input.
type LineReader interface {
	// ReadLine shows prompt and blocks until a line is available.
	// It returns an error once the input is exhausted.
	ReadLine(prompt string) (string, error)
}

// Config carries everything a Loop would otherwise take from globals.
type Config struct {
	// Rand draws the secret code; nil seeds a new source from the clock.
	Rand *rand.Rand

	// Debug enables diagnostics on Logger.
	Debug  bool
	Logger zerolog.Logger

	// MaxAttempts defaults to state.DefaultMaxAttempts.
	MaxAttempts int

	// Palette defaults to code.Colors.
	Palette *code.Palette
}

// Result summarises a finished game.
type Result struct {
	Won         bool
	Attempts    int
	Secret      code.Code
	InputClosed bool

	// Turns lists every scored guess in order.
	Turns []state.Turn
}

// Loop owns the secret code and runs turns until the game ends.
type Loop struct {
	in      LineReader
	out     renderer.Renderer
	rng     *rand.Rand
	palette *code.Palette
	log     zerolog.Logger

	maxAttempts int
	inputClosed bool

	game *state.Game
}

// New creates a game loop reading guesses from in and writing to out.
func New(cfg Config, in LineReader, out renderer.Renderer) *Loop {
	l := &Loop{
		in:          in,
		out:         out,
		rng:         cfg.Rand,
		palette:     cfg.Palette,
		log:         zerolog.Nop(),
		maxAttempts: cfg.MaxAttempts,
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if l.palette == nil {
		l.palette = code.Colors
	}
	if cfg.Debug {
		l.log = cfg.Logger
	}
	return l
}

// Run plays one full game and returns its outcome.
// No input is read after the game is won or lost.
func (l *Loop) Run() Result {
	l.log.Debug().Msg(text.Get(text.DebugOn))

	l.game = state.NewGame(code.Random(l.palette, l.rng), l.maxAttempts)
	l.showBanner()
	l.log.Debug().
		Str("secret", l.game.Secret.String()).
		Int("max_attempts", l.game.MaxAttempts).
		Msg("secret code generated")

	l.game.Begin()
	for !l.game.Terminal() {
		l.turn()
	}

	l.showOutcome()
	l.log.Debug().
		Stringer("phase", l.game.Phase).
		Int("attempts", l.game.AttemptsUsed).
		Int("attempts_left", l.game.AttemptsLeft()).
		Int("turns", len(l.game.History)).
		Msg("game over")

	return Result{
		Won:         l.game.Won,
		Attempts:    l.game.AttemptsUsed,
		Secret:      l.game.Secret,
		InputClosed: l.inputClosed,
		Turns:       l.game.History,
	}
}

func (l *Loop) showBanner() {
	welcome := text.Get(text.Welcome)
	rule := len(welcome)
	if w := l.out.Width(); w > 0 && w < rule {
		rule = w
	}

	l.out.ShowMessage(l.out.StyleText(welcome, renderer.StyleTitle))
	l.out.ShowMessage(strings.Repeat("-", rule))
	l.out.ShowMessage("")
	l.out.ShowMessage(text.Format(text.Palette, l.palette.String()))
	l.out.ShowMessage(text.Format(text.CodeLength, code.Length))
	l.out.ShowMessage("")
}

func (l *Loop) showOutcome() {
	if l.game.Won {
		l.out.ShowMessage(l.out.StyleText(text.Get(text.Won), renderer.StyleSuccess))
		return
	}

	l.out.ShowMessage(l.out.StyleText(text.Get(text.Lost), renderer.StyleDenied))
	l.out.ShowMessage(l.out.StyleText(text.Format(text.SecretWas, l.game.Secret.String()), renderer.StyleSubtle))
}
