package pbxproj

import (
	"github.com/goccy/go-yaml"

	"github.com/bricker/pbxproj-formatter/pkg/errors"
)

// Report summarizes what one normalization run did to a descriptor.
type Report struct {
	// SectionsSorted counts the list sections that were normalized.
	SectionsSorted int `yaml:"sections_sorted"`

	// DuplicatesRemoved counts member lines dropped as exact duplicates.
	DuplicatesRemoved int `yaml:"duplicates_removed"`

	// VersionLinesDropped counts version declarations removed from
	// settings blocks.
	VersionLinesDropped int `yaml:"version_lines_dropped"`

	// VersionTokens are the build-version tokens found by the pre-scan,
	// in source order.
	VersionTokens []string `yaml:"version_tokens,omitempty"`

	// ResolvedVersion is the token the policy selected, if any.
	ResolvedVersion string `yaml:"resolved_version,omitempty"`

	// Changed reports whether the normalized output differs from the
	// source.
	Changed bool `yaml:"changed"`
}

// YAML renders the report for --report output.
func (r *Report) YAML() (string, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return "", errors.WrapParse("yaml", "report", err)
	}
	return string(b), nil
}

// ScanReport summarizes the version tokens of a descriptor without
// modifying it, including what each policy would resolve.
type ScanReport struct {
	Path    string   `yaml:"path"`
	Tokens  []string `yaml:"tokens,omitempty"`
	Highest string   `yaml:"highest,omitempty"`
	Lowest  string   `yaml:"lowest,omitempty"`
}

// YAML renders the scan report.
func (r *ScanReport) YAML() (string, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return "", errors.WrapParse("yaml", "scan report", err)
	}
	return string(b), nil
}
