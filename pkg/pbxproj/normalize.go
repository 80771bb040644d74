package pbxproj

import (
	"sort"

	"github.com/bricker/pbxproj-formatter/pkg/errors"
)

// NormalizeSection canonicalizes the member lines of one list section:
// duplicates (by exact line text) collapse to a single copy, then the unique
// lines sort under the comparator for kind. The operation is idempotent.
//
// The dedup set is scoped to this call; no state survives across sections.
// Any member failing key extraction aborts with a malformed-entry error, and
// a kind other than KindFiles or KindChildren is a contract violation.
func NormalizeSection(members []string, kind SectionKind) ([]string, error) {
	if kind != KindFiles && kind != KindChildren {
		return nil, &errors.UnknownKindError{Kind: string(kind)}
	}

	seen := make(map[string]struct{}, len(members))
	unique := make([]string, 0, len(members))
	for _, m := range members {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		unique = append(unique, m)
	}

	// Extract every key up front so a malformed member fails loudly even in
	// a section too small for the comparator to ever see it.
	entries := make([]sectionEntry, len(unique))
	for i, line := range unique {
		key, err := memberKey(line, kind)
		if err != nil {
			return nil, err
		}
		entries[i] = sectionEntry{line: line, key: key}
	}

	compare := compareFileKeys
	if kind == KindChildren {
		compare = compareChildKeys
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return compare(entries[i].key, entries[j].key) < 0
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.line
	}
	return out, nil
}

// sectionEntry pairs a raw member line with its pre-extracted sort key.
type sectionEntry struct {
	line string
	key  string
}
