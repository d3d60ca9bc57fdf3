package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// Token is the unit pushed on the scope stack and passed between
// recognizers (spec.md §3 "Token"). The same type serves both roles: a
// scope frame (via Scope/NestLevel/BlockName/...) and a working token read
// from the input (via Kind/Name/Line/FilePos).
type Token struct {
	Kind    keyword.ParserKind
	Name    string
	Line    int
	FilePos int

	// Scope is the owning link to the parent frame. It forms the scope
	// stack (child -> root) and, for the unrelated tagContents queue, is
	// reused as a plain "next" pointer (spec.md §9 "Transient lists via
	// the same link").
	Scope *Token

	// NestLevel counts unnamed begin/end depth; only meaningful on BLOCK
	// frames.
	NestLevel int

	// LastKind is the tag kind of the most recently emitted child, kept
	// for advisory/debugging purposes.
	LastKind keyword.ParserKind

	// BlockName is the most recently seen ": label" in this frame's scope,
	// consumed by the next labeled assertion.
	BlockName string

	// Inheritance is the class base name, set only while building a class
	// tag with an `extends` clause.
	Inheritance string

	// Prototype is true between an extern/pure/typedef-forward hint and
	// the next top-level ';'; while true it rewrites the next emitted
	// container kind to prototype.
	Prototype bool

	// ClassScope marks a synthetic out-of-body "Class::method" context
	// that must be popped once more after its method body closes.
	ClassScope bool

	// Parameter is true when this frame/token represents an overridable
	// `parameter` (as opposed to `localparam`).
	Parameter bool

	// HasParamList is true once a design element has consumed its own
	// #(...) header; later `parameter` declarations inside are not
	// overridable by the generic rule (spec.md §9 first Open Question).
	HasParamList bool
}

// clearToken resets every field of t to its zero value, mirroring spec.md
// §4.3's clearToken side effect of readWord.
func clearToken(t *Token) {
	*t = Token{}
}

// newRoot returns the sentinel root scope frame (spec.md §3 invariant 1):
// kind UNDEFINED, no parent, always present.
func newRoot() *Token {
	return &Token{Kind: keyword.Undefined}
}

// qualifiedName is the dot-joined full path used to name a freshly created
// context (spec.md §4.4 createContext): parent.Name + "." + local, or just
// local at the root.
func qualifiedName(parent *Token, local string) string {
	if parent == nil || parent.Name == "" {
		return local
	}
	return parent.Name + "." + local
}

// push links newTok under parent and returns it as the new current
// context (spec.md §4.4 push(scope, newToken)).
func push(parent *Token, newTok *Token) *Token {
	newTok.Scope = parent
	return newTok
}

// pop detaches and returns the parent of cur, discarding cur (spec.md §4.4
// pop(scope) -> parent).
func pop(cur *Token) *Token {
	if cur == nil {
		return nil
	}
	return cur.Scope
}

// prune pops every frame up to, but not including, the sentinel root, used at
// EOF (spec.md §4.7 "At EOF, prune the scope stack to free all frames").
func prune(cur *Token) {
	for cur != nil && cur.Scope != nil {
		cur = pop(cur)
	}
}

// createContext builds a new frame of kind/name under parent with a
// dot-joined qualified name and returns it as the new current context
// (spec.md §4.4 createContext(kind, name)).
func createContext(parent *Token, kind keyword.ParserKind, local string) *Token {
	child := &Token{Kind: kind, Name: qualifiedName(parent, local)}
	return push(parent, child)
}

// dropContext pops and discards the current context (spec.md §4.4
// dropContext()).
func dropContext(cur *Token) *Token {
	return pop(cur)
}

// appendToken attaches tok as the new tail of a singly linked list rooted
// at head, reusing the Scope link as a "next" pointer (spec.md §4.4
// appendToken; here used only for the tagContents queue). It returns the
// (possibly unchanged) head.
func appendToken(head *Token, tok *Token) *Token {
	if head == nil {
		return tok
	}
	tail := head
	for tail.Scope != nil {
		tail = tail.Scope
	}
	tail.Scope = tok
	return head
}
