package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// kindKeywordText returns the keyword spelling of a design-element kind,
// used to synthesize its "end<kind>" closing word (spec.md §4.4 rule 3).
// Kinds with an irregular closer (covergroup/endgroup) are handled as a
// special case in dropEndContext instead.
func kindKeywordText(k keyword.ParserKind) string {
	switch k {
	case keyword.Module:
		return "module"
	case keyword.Interface:
		return "interface"
	case keyword.Package:
		return "package"
	case keyword.Program:
		return "program"
	case keyword.Property:
		return "property"
	case keyword.Class:
		return "class"
	case keyword.Function:
		return "function"
	case keyword.Task:
		return "task"
	}
	return ""
}

// dropEndContext is the end-of-container sink (spec.md §4.4). It is called
// by the top-level loop whenever an END or END_DE word is seen inside a
// non-root scope.
func (s *scanner) dropEndContext(word *Token) {
	if s.ctx.Scope == nil {
		return
	}

	if s.ctx.Kind == keyword.Block && word.Kind == keyword.End {
		if s.ctx.NestLevel > 0 {
			// Closes a nested unnamed begin, not this block's own begin;
			// the block itself stays open.
			s.ctx.NestLevel--
			return
		}
	} else if word.Kind == keyword.End {
		s.ctx.NestLevel--
	}

	switch {
	case s.ctx.Kind == keyword.Covergroup && word.Name == "endgroup":
		closed := s.ctx.Name
		s.ctx = dropContext(s.ctx)
		s.captureBlockLabel()
		s.logger.Transition(s.file, word.Line, "pop covergroup "+closed)

	case s.ctx.Kind == keyword.Block && word.Kind == keyword.End:
		closed := s.ctx.Name
		s.ctx = dropContext(s.ctx)
		s.captureBlockLabel()
		s.logger.Transition(s.file, word.Line, "pop block "+closed)

	default:
		want := kindKeywordText(s.ctx.Kind)
		if want != "" && word.Name == "end"+want {
			closed := s.ctx.Name
			s.ctx = dropContext(s.ctx)
			s.captureBlockLabel()
			if s.ctx.ClassScope {
				s.ctx = dropContext(s.ctx)
			}
			s.logger.Transition(s.file, word.Line, "pop "+want+" "+closed)
		} else {
			s.logger.Skip(s.file, word.Line, "unmatched "+word.Name+" in "+kindKeywordText(s.ctx.Kind)+" scope")
		}
	}
}

// captureBlockLabel peeks past a trailing ": name" after an end* keyword
// (spec.md §4.5). The label itself is read for stream-position symmetry
// only; this scanner emits no tag for it.
func (s *scanner) captureBlockLabel() {
	c := s.skipWhite(s.stream.Next())
	if c != ':' {
		if c != 0 {
			s.stream.Unget(c)
		}
		return
	}
	c = s.skipWhite(s.stream.Next())
	var tmp Token
	if isIdentStart(c) {
		s.readWord(c, &tmp)
		return
	}
	if c != 0 {
		s.stream.Unget(c)
	}
}
