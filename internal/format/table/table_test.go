package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"indent", "tab", "x"},
		{"pick-command", "meta+k", "ok"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft})
	want := []string{
		"indent           tab  x ",
		"pick-command  meta+k  ok",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatIgnoresEscapeSequences(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mbold\x1b[0m", "x"},
		{"plain", "y"},
	}
	got := Format(rows, nil)
	if got[0] != "\x1b[1mbold\x1b[0m   x" {
		t.Fatalf("expected styled cell padded by visible width, got %q", got[0])
	}
	if got[1] != "plain  y" {
		t.Fatalf("expected plain row unchanged, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
