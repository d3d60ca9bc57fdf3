package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljwgithub/svtags/pkg/keyword"
	"github.com/ljwgithub/svtags/pkg/tag"
)

func TestDefaultEnablesEveryKind(t *testing.T) {
	opts := Default()
	assert.True(t, opts.IsKindEnabled(keyword.Verilog, tag.KindModule))
	assert.True(t, opts.IsKindEnabled(keyword.SystemVerilog, tag.KindClass))
	assert.False(t, opts.IsQualifiedTagsEnabled())
	assert.Equal(t, FormatTags, opts.Format)
}

func TestIsKindEnabledRespectsAllowlist(t *testing.T) {
	opts := &Options{Kinds: []tag.Kind{tag.KindModule, tag.KindPort}}
	assert.True(t, opts.IsKindEnabled(keyword.Verilog, tag.KindModule))
	assert.True(t, opts.IsKindEnabled(keyword.Verilog, tag.KindPort))
	assert.False(t, opts.IsKindEnabled(keyword.Verilog, tag.KindClass))
}

func TestLoadMissingFileYieldsDefault(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, FormatTags, opts.Format)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "svtags.yaml")
	yamlSrc := "qualified: true\nformat: json\nkinds:\n  - module\n  - task\njobs: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlSrc), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.True(t, opts.Qualified)
	assert.Equal(t, FormatJSON, opts.Format)
	assert.Equal(t, 4, opts.Jobs)
	assert.True(t, opts.IsKindEnabled(keyword.Verilog, tag.KindTask))
	assert.False(t, opts.IsKindEnabled(keyword.Verilog, tag.KindClass))
}
