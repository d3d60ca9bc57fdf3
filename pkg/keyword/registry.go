package keyword

import "sync"

// Group bundles a set of keywords that all resolve to the same ParserKind
// when registered together, mirroring spec.md §6's
// registerKeywordGroup(group, langId) where a group has
// {value, addUnlessExisting, keywords[]}.
type Group struct {
	Value             ParserKind
	AddUnlessExisting bool
	Keywords          []string
}

// Registry maps (word, language) pairs to a ParserKind. It is populated
// once per language at process start (see tables.go's init) and is read
// concurrently thereafter; mutation after startup is not part of the
// supported contract (spec.md §9 "Global state").
type Registry struct {
	mu    sync.RWMutex
	byLang map[Language]map[string]ParserKind
}

// NewRegistry returns an empty Registry with no languages registered.
func NewRegistry() *Registry {
	return &Registry{byLang: make(map[Language]map[string]ParserKind)}
}

// RegisterKeyword associates text with kind for the given language.
// Registering the same text again for the same language overwrites the
// previous association.
func (r *Registry) RegisterKeyword(text string, lang Language, kind ParserKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	table, ok := r.byLang[lang]
	if !ok {
		table = make(map[string]ParserKind)
		r.byLang[lang] = table
	}
	table[text] = kind
}

// RegisterKeywordGroup registers every keyword in group for lang. When
// group.AddUnlessExisting is true, a keyword already registered for lang
// (by an earlier group, typically a language-specific override) is left
// untouched instead of being overwritten.
func (r *Registry) RegisterKeywordGroup(group Group, lang Language) {
	for _, kw := range group.Keywords {
		if group.AddUnlessExisting {
			if _, ok := r.lookup(kw, lang); ok {
				continue
			}
		}
		r.RegisterKeyword(kw, lang, group.Value)
	}
}

func (r *Registry) lookup(text string, lang Language) (ParserKind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.byLang[lang]
	if !ok {
		return Undefined, false
	}
	kind, ok := table[text]
	return kind, ok
}

// LookupKeyword returns the ParserKind registered for text under lang, or
// Undefined if text is not a recognized keyword for that language.
func (r *Registry) LookupKeyword(text string, lang Language) ParserKind {
	kind, ok := r.lookup(text, lang)
	if !ok {
		return Undefined
	}
	return kind
}

// IsLanguage reports whether lang is one of the two grammars this registry
// can serve. It exists to mirror spec.md §6's isLanguage(langId) predicate;
// with only two languages it is equivalent to a bounds check.
func (r *Registry) IsLanguage(lang Language) bool {
	return lang == Verilog || lang == SystemVerilog
}
