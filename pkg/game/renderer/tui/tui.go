package tui

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"mastermind/pkg/game/renderer"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	colored bool
	width   int

	colorTitle   color.Style
	colorExact   color.Style
	colorPartial color.Style
	colorDenied  color.Style
	colorSuccess color.Style
	colorSubtle  color.Style
}

// New creates a TUI renderer writing to out.
// Styles are only applied when colored is set; width is the terminal width.
func New(out io.Writer, colored bool, width int) *TUIRenderer {
	t := &TUIRenderer{
		out:     out,
		colored: colored,
		width:   width,
	}
	t.Init()
	return t
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorExact = color.Style{color.FgRed, color.OpBold}
	t.colorPartial = color.Style{color.FgWhite, color.OpBold}
	t.colorDenied = color.Style{color.FgRed}
	t.colorSuccess = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if !t.colored {
		return text
	}

	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleExact:
		return t.colorExact.Sprint(text)
	case renderer.StylePartial:
		return t.colorPartial.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// Width returns the terminal width given at construction
func (t *TUIRenderer) Width() int {
	return t.width
}
