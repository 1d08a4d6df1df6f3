package terminal

import (
	"os"
	"testing"
)

func TestIsTerminal_Nil(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) = true, want false")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("IsTerminal(file) = true, want false")
	}
}

func TestGetWidth_FallsBack(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if got := GetWidth(f); got != DefaultWidth {
		t.Errorf("GetWidth(file) = %d, want %d", got, DefaultWidth)
	}
	if got := GetWidth(nil); got != DefaultWidth {
		t.Errorf("GetWidth(nil) = %d, want %d", got, DefaultWidth)
	}
}
