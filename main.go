package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"mastermind/pkg/engine/input"
	"mastermind/pkg/engine/terminal"
	"mastermind/pkg/game/gameplay"
	"mastermind/pkg/game/renderer/tui"
)

// newLogger returns the diagnostic logger; it is silent unless debug is set.
func newLogger(debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !terminal.IsTerminal(os.Stderr),
		TimeFormat: time.TimeOnly,
	}).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

func main() {
	debug := flag.Bool("debug", false, "print the secret code and other diagnostics to stderr")
	flag.Parse()

	interactive := terminal.IsTerminal(os.Stdout)
	out := tui.New(os.Stdout, interactive, terminal.GetWidth(os.Stdout))
	in := input.NewLineReader(os.Stdin, os.Stdout)

	log := newLogger(*debug)
	loop := gameplay.New(gameplay.Config{
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Debug:  *debug,
		Logger: log,
	}, in, out)

	res := loop.Run()
	log.Debug().
		Bool("won", res.Won).
		Int("attempts", res.Attempts).
		Bool("input_closed", res.InputClosed).
		Str("secret", res.Secret.String()).
		Msg("session finished")
}
