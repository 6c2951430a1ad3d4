package git

import "testing"

func TestSidebandWriterParsesPercentAndCounts(t *testing.T) {
	var last Progress
	w := newSidebandWriter(func(p Progress) { last = p })

	w.Write([]byte("Counting objects:  40% (4/10)\r"))
	if last.Phase != "Counting objects" {
		t.Fatalf("unexpected phase: %q", last.Phase)
	}
	if last.Percent != 40 || last.Objects != 4 || last.Total != 10 {
		t.Fatalf("unexpected snapshot: %+v", last)
	}

	w.Write([]byte("Counting objects: 100% (10/10), done.\n"))
	if last.Percent != 100 || last.Objects != 10 {
		t.Fatalf("unexpected snapshot: %+v", last)
	}
}

func TestSidebandWriterPercentNeverDecreases(t *testing.T) {
	var last Progress
	w := newSidebandWriter(func(p Progress) { last = p })

	w.Write([]byte("Compressing objects: 90% (9/10)\r"))
	w.Write([]byte("Writing objects: 10% (1/10)\r"))
	if last.Percent != 90 {
		t.Fatalf("percent regressed: %+v", last)
	}
	if last.Phase != "Writing objects" {
		t.Fatalf("phase should advance: %q", last.Phase)
	}
	w.Write([]byte("Writing objects: 95% (10/10)\r"))
	if last.Percent != 95 {
		t.Fatalf("expected percent 95, got %d", last.Percent)
	}
}

func TestSidebandWriterHandlesSplitLines(t *testing.T) {
	var last Progress
	w := newSidebandWriter(func(p Progress) { last = p })

	w.Write([]byte("Receiving obj"))
	w.Write([]byte("ects: 55% (11/20)\r"))
	if last.Percent != 55 || last.Total != 20 {
		t.Fatalf("unexpected snapshot: %+v", last)
	}
}

func TestSidebandWriterCountsBytes(t *testing.T) {
	w := newSidebandWriter(nil)
	w.Write([]byte("abc"))
	w.Write([]byte("defgh\n"))
	if got := w.Snapshot().Bytes; got != 9 {
		t.Fatalf("expected 9 bytes, got %d", got)
	}
}
