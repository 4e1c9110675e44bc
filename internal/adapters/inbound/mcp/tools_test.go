package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemlint/cemlint/internal/domain"
)

const fixtures = "../../../../testdata/cem"

func callTool(t *testing.T, handler func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleValidate_ValidProject(t *testing.T) {
	res := callTool(t, handleValidate(filepath.Join(fixtures, "valid")), nil)
	assert.False(t, res.IsError)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &report))
	assert.Equal(t, domain.StatusPass, report.Status)
}

func TestHandleValidate_BlockingFindings(t *testing.T) {
	res := callTool(t, handleValidate(filepath.Join(fixtures, "invalid")), nil)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "3 error(s) found.")
}

func TestHandleValidate_LogErrors(t *testing.T) {
	res := callTool(t, handleValidate(filepath.Join(fixtures, "invalid")), map[string]any{"log_errors": true})
	assert.False(t, res.IsError)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &report))
	assert.Equal(t, 3, report.Errors)
}

func TestHandleValidate_ExplicitManifest(t *testing.T) {
	manifest, err := filepath.Abs(filepath.Join(fixtures, "invalid", "custom-elements.json"))
	require.NoError(t, err)

	res := callTool(t, handleValidate(filepath.Join(fixtures, "valid")), map[string]any{"manifest": manifest})
	assert.True(t, res.IsError)
}

func TestHandleValidate_MissingManifest(t *testing.T) {
	res := callTool(t, handleValidate(t.TempDir()), nil)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "reading manifest")
}

func TestHandleRules(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cemlint.yaml"), []byte("rules:\n  packageJson:\n    main: off\n"), 0644))

	res := callTool(t, handleRules(dir), nil)
	assert.False(t, res.IsError)

	var rules domain.RuleConfig
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &rules))
	assert.Equal(t, domain.SeverityOff, rules.PackageJSON.Main)
	assert.Equal(t, domain.SeverityError, rules.Manifest.TagName)
}
