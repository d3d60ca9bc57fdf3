package scanner

import (
	"github.com/ljwgithub/svtags/pkg/keyword"
	"github.com/ljwgithub/svtags/pkg/tag"
)

// tagKindOf maps a tag-range ParserKind to its tag.Kind. LOCALPARAM and
// PARAMETER are resolved by the caller before this lookup (spec.md §4.8
// step 1).
func tagKindOf(k keyword.ParserKind) (tag.Kind, bool) {
	switch k {
	case keyword.Constant:
		return tag.KindConstant, true
	case keyword.Event:
		return tag.KindEvent, true
	case keyword.Function:
		return tag.KindFunction, true
	case keyword.Module:
		return tag.KindModule, true
	case keyword.Net:
		return tag.KindNet, true
	case keyword.Port:
		return tag.KindPort, true
	case keyword.Register:
		return tag.KindRegister, true
	case keyword.Task:
		return tag.KindTask, true
	case keyword.Block:
		return tag.KindBlock, true
	case keyword.Assertion:
		return tag.KindAssertion, true
	case keyword.Class:
		return tag.KindClass, true
	case keyword.Covergroup:
		return tag.KindCovergroup, true
	case keyword.Enum:
		return tag.KindEnum, true
	case keyword.Interface:
		return tag.KindInterface, true
	case keyword.Modport:
		return tag.KindModport, true
	case keyword.Package:
		return tag.KindPackage, true
	case keyword.Program:
		return tag.KindProgram, true
	case keyword.Prototype:
		return tag.KindPrototype, true
	case keyword.Property:
		return tag.KindProperty, true
	case keyword.Struct:
		return tag.KindStruct, true
	case keyword.Typedef:
		return tag.KindTypedef, true
	}
	return "", false
}

// paramOverridable decides whether a parameter/localparam token gets the
// "parameter" (overridable) attribute. class/package scopes never get it;
// a design element's own #(...) header always does (headerParam=true,
// spec.md §9's documented resolution of the first Open Question); anywhere
// else it is gated on the enclosing context not already having consumed
// its own header (ctx.HasParamList).
func paramOverridable(ctx *Token, headerParam bool) bool {
	if ctx.Kind == keyword.Class || ctx.Kind == keyword.Package {
		return false
	}
	if headerParam {
		return true
	}
	return !ctx.HasParamList
}

// emit applies the kind rewrites, attaches scope, writes the tag(s), and
// manages the scope stack for containers (spec.md §4.8).
func (s *scanner) emit(tok *Token, kind keyword.ParserKind) {
	s.emitParam(tok, kind, false)
}

// emitParam is emit with explicit control over whether a PARAMETER token
// counts as a design element's own header parameter.
func (s *scanner) emitParam(tok *Token, kind keyword.ParserKind, headerParam bool) {
	overridable := false
	switch kind {
	case keyword.Localparam:
		kind = keyword.Constant
	case keyword.Parameter:
		kind = keyword.Constant
		overridable = paramOverridable(s.ctx, headerParam)
	}
	tok.Parameter = overridable

	if s.ctx.Prototype {
		kind = keyword.Prototype
	}

	tagKind, ok := tagKindOf(kind)
	if !ok || tok.Name == "" || !s.policy.IsKindEnabled(s.lang, tagKind) {
		tok.Inheritance = ""
		return
	}

	rec := tag.Tag{
		Name:        tok.Name,
		Kind:        tagKind,
		Pos:         tag.Position{Line: tok.Line, FilePos: tok.FilePos},
		File:        s.file,
		Inheritance: tok.Inheritance,
		Parameter:   overridable,
	}
	if s.ctx.Scope != nil {
		rec.ScopeName = s.ctx.Name
		if sk, ok := tagKindOf(s.ctx.Kind); ok {
			rec.ScopeKind = sk
		}
	}
	s.sink.EmitTag(rec)
	s.ctx.LastKind = kind

	if s.policy.IsQualifiedTagsEnabled() && s.ctx.Scope != nil {
		qrec := rec
		qrec.Name = rec.QualifiedName()
		qrec.Qualified = true
		s.sink.EmitTag(qrec)
	}

	if tagKind.IsContainer() {
		s.ctx = createContext(s.ctx, kind, tok.Name)
		s.logger.Transition(s.file, tok.Line, "push "+string(tagKind)+" "+s.ctx.Name)
		s.drainTagContents()
		if tagKind.IsTemporaryContainer() {
			s.ctx = dropContext(s.ctx)
		}
	}

	tok.Inheritance = ""
}

// queueTagContent appends tok to the tagContents queue, reusing the Scope
// link as a plain "next" pointer (spec.md §9 "Transient lists via the same
// link").
func (s *scanner) queueTagContent(tok *Token) {
	s.tagContents = appendToken(s.tagContents, tok)
}

// drainTagContents emits every queued member (enum members, most recently)
// as a child of the context just created by emit, then empties the queue
// (spec.md §4.8 step 6).
func (s *scanner) drainTagContents() {
	for cur := s.tagContents; cur != nil; {
		next := cur.Scope
		cur.Scope = nil
		s.emit(cur, cur.Kind)
		cur = next
	}
	s.tagContents = nil
}
