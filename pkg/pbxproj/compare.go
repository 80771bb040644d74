package pbxproj

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/bricker/pbxproj-formatter/pkg/errors"
)

// fold performs Unicode case folding so that entry keys compare
// case-insensitively.
var fold = cases.Fold()

// extensionlessFiles are names that count as file-like despite carrying no
// extension. Lookup is on the case-folded name.
var extensionlessFiles = map[string]struct{}{
	"makefile":   {},
	"readme":     {},
	"license":    {},
	"changelog":  {},
	"dockerfile": {},
}

// CompareFiles orders two raw member lines of a files section by their
// entry keys. Keys that both belong to a numbered unified-source group
// compare by their digit suffixes as strings, preserving the historical
// ordering where suffix "10" sorts before "2". All other keys compare
// lexically after case folding.
//
// Either line failing key extraction is fatal for the whole run.
func CompareFiles(a, b string) (int, error) {
	ka, err := memberKey(a, KindFiles)
	if err != nil {
		return 0, err
	}
	kb, err := memberKey(b, KindFiles)
	if err != nil {
		return 0, err
	}
	return compareFileKeys(ka, kb), nil
}

// CompareChildren orders two raw member lines of a children section.
// Directory-like entries sort strictly before file-like entries; within the
// same class keys compare lexically after case folding.
func CompareChildren(a, b string) (int, error) {
	ka, err := memberKey(a, KindChildren)
	if err != nil {
		return 0, err
	}
	kb, err := memberKey(b, KindChildren)
	if err != nil {
		return 0, err
	}
	return compareChildKeys(ka, kb), nil
}

// memberKey extracts the case-folded entry key for a member line of the
// given kind. The returned error wraps errors.ErrMalformedEntry.
func memberKey(line string, kind SectionKind) (string, error) {
	var pattern = filesKey
	if kind == KindChildren {
		pattern = childrenKey
	}
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return "", &errors.MalformedEntryError{Kind: string(kind), Line: line}
	}
	return fold.String(m[1]), nil
}

// compareFileKeys compares two case-folded files-section keys.
func compareFileKeys(ka, kb string) int {
	ma := unifiedSourceKey.FindStringSubmatch(ka)
	mb := unifiedSourceKey.FindStringSubmatch(kb)
	if ma != nil && mb != nil {
		// Suffixes are never zero-padded, so string order diverges from
		// numeric order once digit counts differ. That quirk is load-bearing
		// for stable merges and must not be "fixed".
		return strings.Compare(ma[1], mb[1])
	}
	return strings.Compare(ka, kb)
}

// compareChildKeys compares two case-folded children-section keys.
func compareChildKeys(ka, kb string) int {
	fa, fb := isFileLike(ka), isFileLike(kb)
	if fa != fb {
		if fa {
			return 1
		}
		return -1
	}
	return strings.Compare(ka, kb)
}

// isFileLike classifies a case-folded entry name. A name is file-like when
// it is a known extensionless filename or carries a non-empty, dot-free
// extension; everything else is directory-like.
func isFileLike(name string) bool {
	if _, ok := extensionlessFiles[name]; ok {
		return true
	}
	i := strings.LastIndex(name, ".")
	return i >= 0 && i < len(name)-1
}
