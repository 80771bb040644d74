package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bricker/pbxproj-formatter/pkg/logging"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	application, err := New("test", "none", "today", "go test", WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return application
}

func writeSample(t *testing.T) string {
	t.Helper()
	src := strings.Join([]string{
		"\t\t1A /* Sources */ = {",
		"\t\t\tfiles = (",
		"\t\t\t\tBB /* banana.m in Sources */,",
		"\t\t\t\tAA /* apple.m in Sources */,",
		"\t\t\t);",
		"\t\t};",
		"\t\t\tbuildSettings = {",
		"\t\t\t\tCURRENT_PROJECT_VERSION = 3;",
		"\t\t\t\tCURRENT_PROJECT_VERSION = 12;",
		"\t\t\t};",
		"",
	}, "\n")
	path := filepath.Join(t.TempDir(), "project.pbxproj")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestNewApp(t *testing.T) {
	application := newTestApp(t)
	assert.Equal(t, "test", application.Version())
	assert.NotNil(t, application.Config())
	assert.NotNil(t, application.Logger())
}

func TestFormatCommand(t *testing.T) {
	application := newTestApp(t)
	path := writeSample(t)

	var out bytes.Buffer
	cmd := application.NewFormatCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "normalized "+path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	apple := bytes.Index(content, []byte("apple.m"))
	banana := bytes.Index(content, []byte("banana.m"))
	assert.Less(t, apple, banana)
	assert.NotContains(t, string(content), "CURRENT_PROJECT_VERSION = 3;")
}

func TestFormatCommandCheck(t *testing.T) {
	application := newTestApp(t)
	path := writeSample(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := application.NewFormatCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--check", path})

	err = cmd.Execute()
	require.Error(t, err, "check mode must fail when formatting is needed")
	assert.Contains(t, out.String(), path)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "check mode must not modify the file")
}

func TestFormatCommandStdout(t *testing.T) {
	application := newTestApp(t)
	path := writeSample(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := application.NewFormatCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--stdout", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "apple.m")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "--stdout must leave the file alone")
}

func TestFormatCommandBadPolicy(t *testing.T) {
	application := newTestApp(t)
	path := writeSample(t)

	cmd := application.NewFormatCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--policy", "sideways", path})
	require.Error(t, cmd.Execute())
}

func TestScanCommand(t *testing.T) {
	application := newTestApp(t)
	path := writeSample(t)

	var out bytes.Buffer
	cmd := application.NewScanCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "highest: \"12\"")
	assert.Contains(t, out.String(), "lowest: \"3\"")
}

func TestVersionCommand(t *testing.T) {
	application := newTestApp(t)

	var out bytes.Buffer
	cmd := application.NewVersionCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "pbxfmt test")
}
