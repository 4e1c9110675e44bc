package manifest_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemlint/cemlint/internal/adapters/outbound/manifest"
	"github.com/cemlint/cemlint/internal/domain"
)

func TestLoader_LoadsFixture(t *testing.T) {
	m, err := manifest.New().Load("../../../../testdata/cem/valid/custom-elements.json")
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", m.SchemaVersion)
	require.Len(t, m.Modules, 2)

	button := m.Modules[0]
	require.Len(t, button.Declarations, 1)
	decl := button.Declarations[0]
	assert.True(t, decl.IsComponent())
	assert.Equal(t, "acme-button", decl.TagName)
	assert.Len(t, decl.PublicProperties(), 3)
	assert.Len(t, decl.Events, 2)
	assert.Equal(t, []string{"AcmeButton", "ButtonSize"}, button.ExportedNames())

	def := m.Modules[1].Exports[0]
	assert.Equal(t, domain.ExportKindDefinition, def.Kind)
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	m, err := manifest.Decode([]byte(`{"schemaVersion":"2.1.0","deprecated":true,"modules":[{"kind":"javascript-module","path":"a.js","summary":"x"}]}`))
	require.NoError(t, err)
	require.Len(t, m.Modules, 1)
	assert.Equal(t, "a.js", m.Modules[0].Path)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := manifest.Decode([]byte(`{"modules": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing manifest")
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := manifest.New().Load("does-not-exist.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
