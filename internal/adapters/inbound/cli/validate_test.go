package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemlint/cemlint/internal/adapters/inbound/cli"
	"github.com/cemlint/cemlint/internal/domain"
)

// copyFixture copies testdata/cem/<name> into a temp dir so runs can write
// history and config files.
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	src := filepath.Join("..", "..", "..", "..", "testdata", "cem", name)
	dst := t.TempDir()
	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(src, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dst, e.Name()), data, 0644))
	}
	return dst
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateCmd_ValidProject(t *testing.T) {
	dir := copyFixture(t, "valid")

	_, stderr, err := run(t, "validate", "--path", dir)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "error(s) found")
}

func TestValidateCmd_InvalidProjectFails(t *testing.T) {
	dir := copyFixture(t, "invalid")

	_, stderr, err := run(t, "validate", "--path", dir)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Findings, 3)
	assert.Contains(t, stderr, "7 warning(s) found.")
	assert.Contains(t, stderr, "3 error(s) found.")
	assert.Contains(t, stderr, "@tagName my-widget")
}

func TestValidateCmd_LogErrorsSucceeds(t *testing.T) {
	dir := copyFixture(t, "invalid")

	_, stderr, err := run(t, "validate", "--path", dir, "--log-errors")
	require.NoError(t, err)
	assert.Contains(t, stderr, "3 error(s) found.")
}

func TestValidateCmd_JSONReport(t *testing.T) {
	dir := copyFixture(t, "invalid")

	stdout, _, err := run(t, "validate", "--path", dir, "--log-errors", "--json")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, domain.StatusFail, report.Status)
	assert.Equal(t, 7, report.Warnings)
	assert.Equal(t, 3, report.Errors)
	assert.Equal(t, "1.0.0", report.SchemaVersion)
	require.Len(t, report.Findings, 10)
	assert.Equal(t, domain.RulePackageType, report.Findings[0].Rule)
}

func TestValidateCmd_RuleOverrides(t *testing.T) {
	dir := copyFixture(t, "invalid")

	stdout, _, err := run(t, "validate", "--path", dir, "--json",
		"--rule", "packageJson.customElementsProperty=warning",
		"--rule", "manifest.tagName=off",
		"--rule", "manifest.exportTypes = warning",
	)
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Zero(t, report.Errors)
	assert.Equal(t, 9, report.Warnings)
}

func TestValidateCmd_InvalidRuleFlag(t *testing.T) {
	dir := copyFixture(t, "valid")

	_, _, err := run(t, "validate", "--path", dir, "--rule", "manifest.tagName")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --rule")

	_, _, err = run(t, "validate", "--path", dir, "--rule", "manifest.nothing=off")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownRule))
}

func TestValidateCmd_ConfigFileIsApplied(t *testing.T) {
	dir := copyFixture(t, "invalid")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cemlint.yaml"), []byte(`
log_errors: true
exclude:
  - MyWidget
`), 0644))

	stdout, _, err := run(t, "validate", "--path", dir, "--json")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 1, report.Errors, "only customElementsProperty remains")
}

func TestValidateCmd_FlagOverridesConfig(t *testing.T) {
	dir := copyFixture(t, "invalid")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cemlint.yaml"), []byte("log_errors: true\n"), 0644))

	_, _, err := run(t, "validate", "--path", dir, "--log-errors=false")
	require.Error(t, err)
}

func TestValidateCmd_Skip(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := run(t, "validate", "--path", dir, "--skip")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Skipped")
}

func TestValidateCmd_ExplicitManifestArgument(t *testing.T) {
	dir := copyFixture(t, "valid")
	invalid := copyFixture(t, "invalid")

	_, _, err := run(t, "validate", filepath.Join(invalid, "custom-elements.json"), "--path", dir)
	require.Error(t, err, "components of the invalid manifest are checked")
}

func TestValidateCmd_MissingManifest(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "validate", "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest")
}

func TestValidateCmd_RecordAndHistory(t *testing.T) {
	dir := copyFixture(t, "invalid")

	_, _, err := run(t, "validate", "--path", dir, "--log-errors", "--record")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, ".cemlint", "history", "runs.json"))

	stdout, _, err := run(t, "validate", "--path", dir, "--history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation History")
	assert.Contains(t, stdout, "3 errors")
}

func TestValidateCmd_HasFlags(t *testing.T) {
	root := cli.NewRootCmdForTest()
	cmd, _, err := root.Find([]string{"validate"})
	require.NoError(t, err)

	for _, name := range []string{"path", "package", "cem-file-name", "log-errors", "exclude", "debug", "skip", "rule", "json", "record", "history"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
}
