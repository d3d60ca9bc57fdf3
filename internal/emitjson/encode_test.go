package emitjson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/ljwgithub/svtags/pkg/tag"
)

func sampleTags() []tag.Tag {
	return []tag.Tag{
		{Name: "m", Kind: tag.KindModule, File: "a.v", Pos: tag.Position{Line: 1}},
		{Name: "N", Kind: tag.KindConstant, File: "a.v", Pos: tag.Position{Line: 1},
			ScopeName: "m", ScopeKind: tag.KindModule, Parameter: true},
		{Name: "a", Kind: tag.KindPort, File: "a.v", Pos: tag.Position{Line: 1}, ScopeName: "m", ScopeKind: tag.KindModule},
	}
}

func TestWriteTagsFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTags(&buf, sampleTags()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "m\ta.v\t1;\"\tkind:module") {
		t.Errorf("missing module line: %q", out)
	}
	if !strings.Contains(out, "scope:module:m") {
		t.Errorf("missing scope field: %q", out)
	}
	if !strings.Contains(out, "parameter:overridable") {
		t.Errorf("missing parameter attribute: %q", out)
	}
}

func TestWriteLinesFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, sampleTags()); err != nil {
		t.Fatal(err)
	}
	want := "m module a.v:1\n"
	if !strings.HasPrefix(buf.String(), want) {
		t.Errorf("got %q, want prefix %q", buf.String(), want)
	}
}

func TestWriteJSONLinesFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONLines(&buf, sampleTags()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	result := gjson.Parse(lines[1])
	if result.Get("name").String() != "N" {
		t.Errorf("name = %q, want N", result.Get("name").String())
	}
	if !result.Get("parameter").Bool() {
		t.Errorf("parameter flag missing in %q", lines[1])
	}
	if result.Get("scope").String() != "m" {
		t.Errorf("scope = %q, want m", result.Get("scope").String())
	}
}

func TestSortNaturalOrdersByName(t *testing.T) {
	tags := []tag.Tag{
		{Name: "item10"},
		{Name: "item2"},
		{Name: "item1"},
	}
	SortNatural(tags)
	got := []string{tags[0].Name, tags[1].Name, tags[2].Name}
	want := []string{"item1", "item2", "item10"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got order %v, want %v", got, want)
			break
		}
	}
}
