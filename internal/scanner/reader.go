package scanner

import (
	"strings"
	"unicode"

	"github.com/ljwgithub/svtags/pkg/keyword"
)

// isIdentStart reports whether r can start an identifier, a directive, or
// a macro reference (spec.md §4.3 "First-char class").
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '`'
}

// isIdentContinue reports whether r can continue a word already begun by
// isIdentStart (spec.md §4.3 "Continuation").
func isIdentContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '`' || r == '$'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\v'
}

// readWord reads the maximal identifier-shaped run starting at c into
// tok.Name, records tok.Line/FilePos at the starting rune, and ungets the
// first character that does not continue the word. It reports whether c
// started a word at all (spec.md §4.3 readWord).
func (s *scanner) readWord(c rune, tok *Token) bool {
	if !isIdentStart(c) {
		return false
	}
	clearToken(tok)
	tok.Line = s.stream.Line()
	// c has already been read, so it sits one byte before the stream's
	// current position.
	tok.FilePos = s.stream.Pos().Offset - 1

	var b strings.Builder
	b.WriteRune(c)
	for {
		next := s.stream.Next()
		if next == 0 || !isIdentContinue(next) {
			if next != 0 {
				s.stream.Unget(next)
			}
			break
		}
		b.WriteRune(next)
	}
	tok.Name = b.String()
	return true
}

// updateKind classifies tok.Name via the active language's keyword table
// (spec.md §4.3 updateKind).
func (s *scanner) updateKind(tok *Token) {
	kind := s.registry.LookupKeyword(tok.Name, s.lang)
	if kind != keyword.Undefined {
		tok.Kind = kind
		return
	}
	if len(tok.Name) > 0 && isIdentStart(rune(tok.Name[0])) && tok.Name[0] != '`' {
		tok.Kind = keyword.Identifier
		return
	}
	tok.Kind = keyword.Undefined
}

// readClassifiedWord reads a word starting at c and classifies it in one
// step; it reports ok=false if c does not start a word.
func (s *scanner) readClassifiedWord(c rune, tok *Token) bool {
	if !s.readWord(c, tok) {
		return false
	}
	s.updateKind(tok)
	return true
}
