// Package emitjson renders a scanned tag stream into one of svtags' three
// output encodings: ctags-compatible tab-separated lines, JSON lines, and a
// plain "name kind file:line" format (spec.md §12's supplemented output
// formats). Grounded on tidwall/sjson for building JSON records field by
// field without a struct-tag marshal pass, and maruel/natural for the
// --sort natural-order comparator.
package emitjson

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/maruel/natural"
	"github.com/tidwall/sjson"

	"github.com/ljwgithub/svtags/pkg/tag"
)

// SortNatural orders tags by name using natural (human) ordering, so
// "task2" sorts before "task10" the way traditional sorted ctags files do.
func SortNatural(tags []tag.Tag) {
	sort.SliceStable(tags, func(i, j int) bool {
		return natural.Less(tags[i].Name, tags[j].Name)
	})
}

// WriteTags writes the ctags-compatible tab-separated form: one line per
// tag, "name\tfile\tline;\"\tkind:k[\tscope:scopekind:parent][\tinherits:base]
// [\tparameter:overridable][\tqualified:true]".
func WriteTags(w io.Writer, tags []tag.Tag) error {
	bw := bufio.NewWriter(w)
	for _, t := range tags {
		fmt.Fprintf(bw, "%s\t%s\t%d;\"\tkind:%s", t.Name, t.File, t.Pos.Line, t.Kind)
		if t.ScopeName != "" {
			fmt.Fprintf(bw, "\tscope:%s:%s", t.ScopeKind, t.ScopeName)
		}
		if t.Inheritance != "" {
			fmt.Fprintf(bw, "\tinherits:%s", t.Inheritance)
		}
		if t.Parameter {
			bw.WriteString("\tparameter:overridable")
		}
		if t.Qualified {
			bw.WriteString("\tqualified:true")
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// WriteLines writes the plain "name kind file:line" form.
func WriteLines(w io.Writer, tags []tag.Tag) error {
	bw := bufio.NewWriter(w)
	for _, t := range tags {
		fmt.Fprintf(bw, "%s %s %s:%d\n", t.Name, t.Kind, t.File, t.Pos.Line)
	}
	return bw.Flush()
}

// WriteJSONLines writes one JSON object per line, built incrementally with
// sjson so adding a field never requires a struct/tag round-trip.
func WriteJSONLines(w io.Writer, tags []tag.Tag) error {
	bw := bufio.NewWriter(w)
	for _, t := range tags {
		line, err := encodeJSON(t)
		if err != nil {
			return fmt.Errorf("emitjson: encode %q: %w", t.Name, err)
		}
		bw.WriteString(line)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func encodeJSON(t tag.Tag) (string, error) {
	js := "{}"
	var err error
	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		js, err = sjson.Set(js, path, value)
	}

	set("name", t.Name)
	set("kind", string(t.Kind))
	set("file", t.File)
	set("line", t.Pos.Line)
	set("pos", t.Pos.FilePos)
	if t.ScopeName != "" {
		set("scope", t.ScopeName)
		set("scopeKind", string(t.ScopeKind))
	}
	if t.Inheritance != "" {
		set("inherits", t.Inheritance)
	}
	if t.Parameter {
		set("parameter", true)
	}
	if t.Qualified {
		set("qualified", true)
	}
	return js, err
}
