package gameplay

import (
	"strings"

	"mastermind/pkg/game/code"
	"mastermind/pkg/game/feedback"
	"mastermind/pkg/game/renderer"
	"mastermind/pkg/game/text"
)

// Peg markers, exact first
const (
	ExactPeg   = "(R)"
	PartialPeg = "(W)"
)

// turn reads one line and applies it to the game.
// Malformed input is reported and costs nothing.
func (l *Loop) turn() {
	l.out.ShowMessage("")

	line, err := l.in.ReadLine(text.Get(text.Prompt))
	if err != nil {
		l.log.Debug().Err(err).Int("attempts", l.game.AttemptsUsed).Msg("input closed")
		l.inputClosed = true
		l.out.ShowMessage("")
		l.out.ShowMessage(l.out.StyleText(text.Get(text.InputClosed), renderer.StyleDenied))
		l.game.Abandon()
		return
	}

	guess, err := code.Parse(l.palette, line)
	if err != nil {
		l.log.Debug().Err(err).Str("input", line).Msg("guess rejected")
		l.out.ShowMessage(l.out.StyleText(text.Get(text.Invalid), renderer.StyleDenied))
		return
	}

	l.game.Evaluate()
	fb := feedback.Evaluate(guess, l.game.Secret)
	l.game.Record(guess, fb)

	l.log.Debug().
		Str("guess", guess.Compact()).
		Int("exact", fb.Exact).
		Int("partial", fb.Partial).
		Int("attempts", l.game.AttemptsUsed).
		Int("attempts_left", l.game.AttemptsLeft()).
		Stringer("phase", l.game.Phase).
		Msg("guess evaluated")

	if !fb.Solved() {
		l.out.ShowMessage(text.Get(text.Incorrect) + l.pegs(fb))
	}
}

// pegs renders the exact markers followed by the partial markers.
func (l *Loop) pegs(fb code.Feedback) string {
	var b strings.Builder
	if fb.Exact > 0 {
		b.WriteString(l.out.StyleText(strings.Repeat(ExactPeg, fb.Exact), renderer.StyleExact))
	}
	if fb.Partial > 0 {
		b.WriteString(l.out.StyleText(strings.Repeat(PartialPeg, fb.Partial), renderer.StylePartial))
	}
	return b.String()
}
