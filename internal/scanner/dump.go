package scanner

import (
	"fmt"
	"io"

	"github.com/ljwgithub/svtags/internal/charstream"
	"github.com/ljwgithub/svtags/pkg/keyword"
)

// DumpTokens walks src the same way ScanFile's top-level loop does, but
// instead of driving the twelve declaration recognizers it prints every
// classified word it reads. It exists purely for debugging the scanner
// (the `svtags lex` command), grounded directly on the teacher's
// cmd/dwscript/cmd/lex.go token-dump loop.
func DumpTokens(w io.Writer, src []byte, lang keyword.Language, registry *keyword.Registry, showPos bool) error {
	if registry == nil {
		registry = keyword.Default
	}
	s := &scanner{
		stream:   charstream.New(src),
		lang:     lang,
		registry: registry,
		ctx:      newRoot(),
	}

	for {
		c := s.stream.Next()
		if c == 0 {
			return nil
		}
		if isSpace(c) {
			continue
		}
		if c == '#' || c == ':' || c == ';' {
			fmt.Fprintf(w, "[PUNCT     ] %q\n", string(c))
			continue
		}

		var tok Token
		if !s.readClassifiedWord(c, &tok) {
			continue
		}
		if showPos {
			fmt.Fprintf(w, "[%-10s] %q @%d\n", tok.Kind, tok.Name, tok.Line)
		} else {
			fmt.Fprintf(w, "[%-10s] %q\n", tok.Kind, tok.Name)
		}
	}
}
