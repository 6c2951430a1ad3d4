package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"abc123", "alice", "initial commit"},
		{"f00", "bob", "fix"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignLeft})
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0] != "abc123  alice  initial commit" {
		t.Fatalf("unexpected row: %q", out[0])
	}
	if out[1] != "f00     bob    fix" {
		t.Fatalf("unexpected row: %q", out[1])
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"10", "x"},
		{"5", "y"},
	}
	out := Format(rows, []Alignment{AlignRight, AlignLeft})
	if out[1] != " 5  y" {
		t.Fatalf("unexpected row: %q", out[1])
	}
}

func TestFormatWidthTruncatesLastColumn(t *testing.T) {
	rows := [][]string{
		{"abc123", "a very long commit subject that overflows"},
	}
	out := FormatWidth(rows, []Alignment{AlignLeft, AlignLeft}, 20)
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if got := len([]rune(out[0])); got > 20 {
		t.Fatalf("row exceeds width cap: %d cells (%q)", got, out[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if out := Format(nil, nil); out != nil {
		t.Fatalf("expected nil for empty input, got %v", out)
	}
}
