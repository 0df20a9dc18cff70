package model

import "testing"

func TestLogBuffer_AppendPreservesOrder(t *testing.T) {
	buf := NewLogBuffer(0)

	input := []string{
		"[youtube] Extracting URL",
		"[download] Destination: /tmp/out/video.mp4",
		"[download]  42.0% of 10.00MiB at 2.50MiB/s ETA 00:05",
		"[Merger] Merging formats into \"/tmp/out/video.mp4\"",
		"Download complete.",
	}

	for _, line := range input {
		buf.Append(line)
	}

	if buf.Len() != len(input) {
		t.Fatalf("Expected %d lines, got %d", len(input), buf.Len())
	}

	lines := buf.Lines()
	for i, expected := range input {
		if lines[i] != expected {
			t.Errorf("Line %d = '%s', expected '%s'", i, lines[i], expected)
		}
		if buf.Line(i) != expected {
			t.Errorf("Line(%d) = '%s', expected '%s'", i, buf.Line(i), expected)
		}
	}
}

func TestLogBuffer_CapacityEvictsOldest(t *testing.T) {
	buf := NewLogBuffer(3)

	buf.Append("a")
	buf.Append("b")
	buf.Append("c")
	buf.Append("d")

	if buf.Len() != 3 {
		t.Fatalf("Expected 3 lines after eviction, got %d", buf.Len())
	}

	expected := []string{"b", "c", "d"}
	for i, want := range expected {
		if buf.Line(i) != want {
			t.Errorf("Line(%d) = '%s', expected '%s'", i, buf.Line(i), want)
		}
	}
}

func TestLogBuffer_Clear(t *testing.T) {
	buf := NewLogBuffer(0)
	buf.Append("a")
	buf.Append("b")

	buf.Clear()

	if buf.Len() != 0 {
		t.Errorf("Expected empty buffer after Clear, got %d lines", buf.Len())
	}
	if buf.Line(0) != "" {
		t.Errorf("Expected '' for out-of-range line, got '%s'", buf.Line(0))
	}
}

func TestLogBuffer_LinesReturnsCopy(t *testing.T) {
	buf := NewLogBuffer(0)
	buf.Append("a")

	lines := buf.Lines()
	lines[0] = "mutated"

	if buf.Line(0) != "a" {
		t.Error("Lines() must return a copy, buffer was mutated")
	}
}
