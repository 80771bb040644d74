package pbxproj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportYAML(t *testing.T) {
	r := &Report{
		SectionsSorted:      2,
		DuplicatesRemoved:   1,
		VersionLinesDropped: 2,
		VersionTokens:       []string{"3", "12", "7"},
		ResolvedVersion:     "12",
		Changed:             true,
	}

	out, err := r.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "sections_sorted: 2")
	assert.Contains(t, out, "duplicates_removed: 1")
	assert.Contains(t, out, "resolved_version: \"12\"")
	assert.Contains(t, out, "changed: true")
}

func TestScanReportYAML(t *testing.T) {
	r := &ScanReport{
		Path:    "project.pbxproj",
		Tokens:  []string{"3", "12"},
		Highest: "12",
		Lowest:  "3",
	}

	out, err := r.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "path: project.pbxproj")
	assert.Contains(t, out, "highest: \"12\"")
	assert.Contains(t, out, "lowest: \"3\"")
}

func TestReportYAMLOmitsEmpty(t *testing.T) {
	out, err := (&Report{}).YAML()
	require.NoError(t, err)
	assert.NotContains(t, out, "version_tokens")
	assert.NotContains(t, out, "resolved_version")
}
