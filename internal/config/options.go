// Package config holds per-run options for svtags: which tag kinds to
// emit, whether to emit qualified duplicates, output format, file
// discovery patterns, worker count, and the cache directory. Options
// implements internal/scanner.KindPolicy directly so it can be handed to
// scanner.ScanFile without an adapter.
//
// Grounded on the teacher's cobra flag conventions in cmd/dwscript/cmd
// (root.go's PersistentFlags style), generalized to also load from a
// svtags.yaml file via goccy/go-yaml.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ljwgithub/svtags/pkg/keyword"
	"github.com/ljwgithub/svtags/pkg/tag"
)

// Format selects a tag-stream encoding (internal/emitjson).
type Format string

const (
	FormatTags  Format = "tags"  // ctags-compatible tab-separated lines
	FormatJSON  Format = "json"  // one JSON object per line
	FormatLines Format = "lines" // "name kind file:line"
)

// Options is the resolved configuration for one svtags run.
type Options struct {
	// Kinds lists the tag kinds to emit. A nil or empty slice means every
	// kind is enabled (the zero-configuration default).
	Kinds []tag.Kind `yaml:"kinds"`

	// Qualified turns on the second, fully-qualified emission of every
	// contained tag (spec.md invariant 5).
	Qualified bool `yaml:"qualified"`

	// Format selects the output encoding. Empty means FormatTags.
	Format Format `yaml:"format"`

	// Sort requests natural-order sorting of the tag stream by name
	// before it is written out.
	Sort bool `yaml:"sort"`

	// Include/Exclude are doublestar glob patterns (internal/discover)
	// matched against paths relative to each scan root.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// Jobs bounds the discovery worker pool's concurrency. Zero means
	// the discoverer picks a default (GOMAXPROCS).
	Jobs int `yaml:"jobs"`

	// CacheDir, if non-empty, enables internal/discover's content-hash
	// cache under this directory.
	CacheDir string `yaml:"cache_dir"`

	enabled map[tag.Kind]bool
}

// Default returns the zero-configuration Options: every kind enabled,
// qualified tags off, ctags-style output, no cache.
func Default() *Options {
	return &Options{Format: FormatTags}
}

// Load reads YAML config from path and returns the resolved Options. A
// missing file is not an error; it yields Default().
func Load(path string) (*Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if opts.Format == "" {
		opts.Format = FormatTags
	}
	return opts, nil
}

// finalize builds the enabled-kind lookup set. Called lazily by
// IsKindEnabled so callers that set Kinds directly (as the CLI's --kinds
// flag parsing does) need no separate init step.
func (o *Options) finalize() {
	if o.enabled != nil {
		return
	}
	o.enabled = make(map[tag.Kind]bool, len(o.Kinds))
	for _, k := range o.Kinds {
		o.enabled[k] = true
	}
}

// IsKindEnabled implements internal/scanner.KindPolicy. lang is accepted
// for interface compatibility; kind enablement is not currently
// per-language.
func (o *Options) IsKindEnabled(_ keyword.Language, kind tag.Kind) bool {
	o.finalize()
	if len(o.enabled) == 0 {
		return true
	}
	return o.enabled[kind]
}

// IsQualifiedTagsEnabled implements internal/scanner.KindPolicy.
func (o *Options) IsQualifiedTagsEnabled() bool {
	return o.Qualified
}
