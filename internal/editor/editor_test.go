package editor

import (
	"slices"
	"testing"
)

func TestCommandPrefersVisual(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "nano")

	if got := Command(); !slices.Equal(got, []string{"code", "--wait"}) {
		t.Fatalf("expected VISUAL with args, got %q", got)
	}
}

func TestCommandFallsBack(t *testing.T) {
	t.Setenv("VISUAL", "  ")
	t.Setenv("EDITOR", "nano")
	if got := Command(); !slices.Equal(got, []string{"nano"}) {
		t.Fatalf("expected EDITOR, got %q", got)
	}

	t.Setenv("EDITOR", "")
	if got := Command(); !slices.Equal(got, []string{"vi"}) {
		t.Fatalf("expected vi fallback, got %q", got)
	}
}
