// Package scanner implements the hand-written, lookahead-bounded state
// machine that recognizes Verilog/SystemVerilog declarations and emits
// tags over the sanitized stream of internal/charstream: skip primitives,
// token reader, keyword dispatch, scope stack, the twelve declaration
// recognizers, and the tag
// emitter described across the design document's component design
// section, wired together by the top-level loop in this file.
package scanner

import (
	"fmt"

	"github.com/ljwgithub/svtags/internal/charstream"
	"github.com/ljwgithub/svtags/internal/diag"
	"github.com/ljwgithub/svtags/pkg/keyword"
	"github.com/ljwgithub/svtags/pkg/tag"
)

// KindPolicy answers the enablement questions the scanner must consult
// before emitting a tag: which kinds are active for a language, and
// whether the qualified-tags extra is on. internal/config.Options
// implements this.
type KindPolicy interface {
	IsKindEnabled(lang keyword.Language, kind tag.Kind) bool
	IsQualifiedTagsEnabled() bool
}

// allEnabled is the zero-configuration default: every kind enabled,
// qualified tags off, matching conventional ctags behavior.
type allEnabled struct{}

func (allEnabled) IsKindEnabled(keyword.Language, tag.Kind) bool { return true }
func (allEnabled) IsQualifiedTagsEnabled() bool                  { return false }

// DefaultPolicy is the library-level default used when no config.Options
// is supplied.
var DefaultPolicy KindPolicy = allEnabled{}

// ScanError wraps a panic recovered mid-scan (an internal assertion
// failure such as double-unget) so a multi-file caller can report one bad
// file without aborting the batch (spec.md §7 "Internal assertion").
type ScanError struct {
	File  string
	Cause error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("svtags: scan %s: %v", e.File, e.Cause)
}

func (e *ScanError) Unwrap() error { return e.Cause }

// scanner holds all per-file state (spec.md §5: reentrant, single-pass,
// torn down per invocation).
type scanner struct {
	stream   *charstream.Stream
	lang     keyword.Language
	registry *keyword.Registry
	sink     tag.Sink
	policy   KindPolicy
	file     string

	ctx         *Token // current context; sentinel root initially
	tagContents *Token // queue of members awaiting emission, see emit.go

	// lastTokenName is the name of the most recently read word, used by
	// ':' handling (spec.md §4.7) to capture a label into the enclosing
	// context's BlockName.
	lastTokenName string

	logger diag.Logger
}

// ScanFile scans src (already read into memory) as lang, emitting tags
// into sink. registry and policy may be nil to use the package defaults;
// logger may be nil to discard diagnostics. Internal assertion panics are
// recovered into a *ScanError.
func ScanFile(file string, src []byte, lang keyword.Language, sink tag.Sink, registry *keyword.Registry, policy KindPolicy, logger diag.Logger) (err error) {
	if registry == nil {
		registry = keyword.Default
	}
	if policy == nil {
		policy = DefaultPolicy
	}
	if logger == nil {
		logger = diag.Nop{}
	}
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = &ScanError{File: file, Cause: cause}
		}
	}()

	s := &scanner{
		stream:   charstream.New(src),
		lang:     lang,
		registry: registry,
		sink:     sink,
		policy:   policy,
		file:     file,
		ctx:      newRoot(),
		logger:   logger,
	}
	s.run()
	return nil
}

// run is the top-level loop (spec.md §4.7).
func (s *scanner) run() {
	defer prune(s.ctx)

	for {
		c := s.stream.Next()
		if c == 0 {
			return
		}

		switch {
		case isSpace(c):
			continue

		case c == ':':
			s.ctx.BlockName = s.lastTokenName

		case c == ';':
			// spec.md §3 invariant 4: a prototype hint set on the current
			// context (typedef forward declaration, extern method, ...)
			// only ever rewrites the next emitted container kind within
			// the same statement; it never survives past this ';'.
			s.ctx.Prototype = false
			s.tagContents = nil

		case c == '#':
			s.stream.Unget(s.skipDelay())

		case c == '`':
			s.stream.Unget(s.skipMacro(c))

		default:
			s.dispatchWord(c)
		}
	}
}

// dispatchWord reads one word starting at c and routes it to the matching
// recognizer based on its parser kind (spec.md §4.7's "otherwise" branch).
func (s *scanner) dispatchWord(c rune) {
	var word Token
	if !s.readClassifiedWord(c, &word) {
		return
	}
	s.lastTokenName = word.Name

	switch word.Kind {
	case keyword.Ignore, keyword.Undefined, keyword.Directive:
		return

	case keyword.ExternHint:
		// spec.md §3 invariant 4 / §8: marks the current context so the
		// next emitted method rewrites to a prototype tag and pushes no
		// scope; cleared at the next top-level ';' along with every other
		// prototype hint.
		s.ctx.Prototype = true

	case keyword.End, keyword.EndDE:
		s.dropEndContext(&word)

	case keyword.Begin:
		s.recognizeBegin(&word)

	case keyword.Define:
		s.recognizeDefine()

	case keyword.Module, keyword.Interface, keyword.Package, keyword.Program,
		keyword.Property, keyword.Covergroup, keyword.Modport:
		s.recognizeDesignElement(&word)

	case keyword.Function, keyword.Task:
		s.recognizeFunctionOrTask(&word)

	case keyword.Class:
		s.recognizeClass(&word)

	case keyword.Typedef:
		s.recognizeTypedef(&word)

	case keyword.Enum:
		s.recognizeEnum(&word, word.Kind)

	case keyword.Struct:
		s.recognizeStruct(&word, word.Kind)

	case keyword.Assertion:
		s.recognizeAssertion(&word)

	case keyword.Net, keyword.Register, keyword.Port, keyword.Event,
		keyword.Localparam, keyword.Parameter, keyword.Identifier:
		s.recognizeNameList(&word)

	default:
		// Any other tag-kind word reaching here has no dedicated
		// recognizer wired yet; ignore it rather than misclassify.
	}
}
