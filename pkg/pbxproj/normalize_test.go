package pbxproj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bricker/pbxproj-formatter/pkg/errors"
)

func TestNormalizeSectionSortsFiles(t *testing.T) {
	members := []string{
		fileLine("banana.m"),
		fileLine("apple.m"),
		fileLine("Cherry.m"),
	}

	got, err := NormalizeSection(members, KindFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{
		fileLine("apple.m"),
		fileLine("banana.m"),
		fileLine("Cherry.m"),
	}, got)
}

func TestNormalizeSectionDedup(t *testing.T) {
	// k physically identical copies collapse to one, wherever they sit.
	members := []string{
		fileLine("banana.m"),
		fileLine("apple.m"),
		fileLine("banana.m"),
		fileLine("cherry.m"),
		fileLine("banana.m"),
	}

	got, err := NormalizeSection(members, KindFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{
		fileLine("apple.m"),
		fileLine("banana.m"),
		fileLine("cherry.m"),
	}, got)
}

// Entries that denote the same file but differ in raw text do not collapse.
func TestNormalizeSectionDedupIsTextual(t *testing.T) {
	a := "\t\t\t\tAAAA /* apple.m in Sources */,"
	b := "\t\t\t\tBBBB /* apple.m in Sources */,"

	got, err := NormalizeSection([]string{a, b, a}, KindFiles)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNormalizeSectionIdempotent(t *testing.T) {
	members := []string{
		childLine("zzz.m"),
		childLine("Sources"),
		childLine("apple.m"),
		childLine("apple.m"),
	}

	once, err := NormalizeSection(members, KindChildren)
	require.NoError(t, err)
	twice, err := NormalizeSection(once, KindChildren)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeSectionChildrenClasses(t *testing.T) {
	members := []string{
		childLine("apple.m"),
		childLine("Zebra"),
		childLine("Makefile"),
		childLine("Alpha"),
	}

	got, err := NormalizeSection(members, KindChildren)
	require.NoError(t, err)
	assert.Equal(t, []string{
		childLine("Alpha"),
		childLine("Zebra"),
		childLine("Makefile"),
		childLine("apple.m"),
	}, got)
}

func TestNormalizeSectionEmpty(t *testing.T) {
	got, err := NormalizeSection(nil, KindFiles)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// A malformed member fails even when the section is too small to compare.
func TestNormalizeSectionSingleMalformed(t *testing.T) {
	_, err := NormalizeSection([]string{"\t\t\t\tgarbage"}, KindFiles)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedEntry(err))
}

func TestNormalizeSectionUnknownKind(t *testing.T) {
	_, err := NormalizeSection([]string{fileLine("apple.m")}, SectionKind("resources"))
	require.Error(t, err)
	assert.True(t, errors.IsUnknownSectionKind(err))
}
