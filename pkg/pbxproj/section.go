package pbxproj

import (
	"regexp"
	"strings"
)

// SectionKind identifies which normalization rules apply to a list section.
type SectionKind string

// Known list section kinds.
const (
	// KindFiles is a build-phase file list ("files = (").
	KindFiles SectionKind = "files"

	// KindChildren is a group member list ("children = (").
	KindChildren SectionKind = "children"
)

// Anchor patterns for the three constructs the transformer understands.
// The captured group is the opener's leading indentation; the matching
// closer is that indentation plus ");" for lists or "};" for settings
// blocks. Openers are tested in this order.
var (
	filesOpener    = regexp.MustCompile(`^(\s*)files = \(\s*$`)
	childrenOpener = regexp.MustCompile(`^(\s*)children = \(\s*$`)
	settingsOpener = regexp.MustCompile(`^(\s*)buildSettings = \{\s*$`)
)

// versionLine matches a build-version declaration inside a settings block.
// The captured group is the numeric version token.
var versionLine = regexp.MustCompile(`^\s*CURRENT_PROJECT_VERSION = (\d+);`)

// Entry-key extraction patterns. Every member line of a list section is
// assumed well formed; a line that fails its pattern aborts the run.
var (
	// filesKey pulls the human-readable name from the inline comment
	// preceding the build-phase marker, e.g.
	// "FA30 /* AppDelegate.m in Sources */,".
	filesKey = regexp.MustCompile(`/\* (.+) in `)

	// childrenKey pulls the name from the trailing inline comment, e.g.
	// "FA31 /* AppDelegate.m */,".
	childrenKey = regexp.MustCompile(`/\* (.+) \*/,?\s*$`)
)

// unifiedSourceKey matches a case-folded entry key belonging to a numbered
// unified-source group. The captured digits compare as strings, never as
// integers.
var unifiedSourceKey = regexp.MustCompile(`^unifiedsource(\d+)`)

// matchesCloser reports whether line is the closer for a section, ignoring
// incidental trailing whitespace. The raw line text is what gets re-emitted.
func matchesCloser(line, closer string) bool {
	return strings.TrimRight(line, " \t\r") == closer
}
