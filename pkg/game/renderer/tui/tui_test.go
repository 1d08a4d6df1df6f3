package tui

import (
	"bytes"
	"strings"
	"testing"

	"mastermind/pkg/game/renderer"
)

func TestStyleText_Plain(t *testing.T) {
	r := New(&bytes.Buffer{}, false, 80)
	for _, style := range []renderer.TextStyle{
		renderer.StyleNormal,
		renderer.StyleExact,
		renderer.StylePartial,
		renderer.StyleSuccess,
	} {
		if got := r.StyleText("(R)", style); got != "(R)" {
			t.Errorf("StyleText(%v) = %q, want unstyled", style, got)
		}
	}
}

func TestStyleText_NormalNeverStyled(t *testing.T) {
	r := New(&bytes.Buffer{}, true, 80)
	if got := r.StyleText("plain", renderer.StyleNormal); got != "plain" {
		t.Errorf("StyleText(StyleNormal) = %q, want %q", got, "plain")
	}
}

func TestStyleText_KeepsText(t *testing.T) {
	r := New(&bytes.Buffer{}, true, 80)
	if got := r.StyleText("(W)", renderer.StylePartial); !strings.Contains(got, "(W)") {
		t.Errorf("StyleText(StylePartial) = %q, want it to contain text", got)
	}
}

func TestShowMessage(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, false, 80)
	r.ShowMessage("one")
	r.ShowMessage("")
	r.ShowMessage("two")
	if got, want := out.String(), "one\n\ntwo\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if r.Width() != 80 {
		t.Errorf("Width() = %d, want 80", r.Width())
	}
}
