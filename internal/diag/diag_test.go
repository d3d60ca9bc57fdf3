package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestNopDiscardsNotes(t *testing.T) {
	var n Nop
	n.Skip("f.v", 1, "unmatched end")
	n.Transition("f.v", 1, "push module")
}

func TestVerboseSkipWritesCaretBlock(t *testing.T) {
	var buf bytes.Buffer
	src := []byte("module m;\n  wire clk;\nendmodule\n")
	v := NewVerbose(&buf, src, false)

	v.Skip("f.v", 2, "unmatched end")

	out := buf.String()
	if !strings.Contains(out, "[skip] f.v:2: unmatched end") {
		t.Errorf("missing header line: %q", out)
	}
	if !strings.Contains(out, "wire clk;") {
		t.Errorf("missing source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret: %q", out)
	}
}

func TestVerboseTransitionWithoutSource(t *testing.T) {
	var buf bytes.Buffer
	v := NewVerbose(&buf, nil, false)
	v.Transition("f.v", 1, "push module m")
	if !strings.Contains(buf.String(), "[scope] f.v:1: push module m") {
		t.Errorf("got %q", buf.String())
	}
}
