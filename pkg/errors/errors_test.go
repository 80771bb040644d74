package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/bricker/pbxproj-formatter/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestMalformedEntryError(t *testing.T) {
	t.Run("message includes the offending line", func(t *testing.T) {
		err := &pkgerrors.MalformedEntryError{
			Kind: "files",
			Line: "\t\t\t\tgarbage line",
		}
		assert.Contains(t, err.Error(), "files")
		assert.Contains(t, err.Error(), "garbage line")
		assert.True(t, errors.Is(err, pkgerrors.ErrMalformedEntry))
	})

	t.Run("helper", func(t *testing.T) {
		err := &pkgerrors.MalformedEntryError{Kind: "children", Line: "x"}
		assert.True(t, pkgerrors.IsMalformedEntry(err))
		assert.False(t, pkgerrors.IsUnknownSectionKind(err))
	})
}

func TestUnknownKindError(t *testing.T) {
	err := &pkgerrors.UnknownKindError{Kind: "resources"}
	assert.Equal(t, `unknown section kind "resources"`, err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrUnknownSectionKind))
	assert.True(t, pkgerrors.IsUnknownSectionKind(err))
}

func TestUnterminatedSectionError(t *testing.T) {
	err := &pkgerrors.UnterminatedSectionError{Kind: "files", Closer: "\t\t);"}
	assert.Contains(t, err.Error(), "files")
	assert.Contains(t, err.Error(), ");")
	assert.True(t, pkgerrors.IsUnterminatedSection(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "policy",
			Value:   "middle",
			Message: `must be "highest" or "lowest"`,
		}
		assert.Contains(t, err.Error(), "policy")
		assert.Contains(t, err.Error(), "middle")
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("rename", "/tmp/project.pbxproj", base)

	assert.Contains(t, err.Error(), "rename")
	assert.Contains(t, err.Error(), "/tmp/project.pbxproj")
	assert.True(t, errors.Is(err, base))

	var ioErr *pkgerrors.IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "rename", ioErr.Operation)
}

func TestParseError(t *testing.T) {
	base := errors.New("bad indent")
	err := pkgerrors.WrapParse("pbxproj", "project.pbxproj", base)

	assert.Contains(t, err.Error(), "pbxproj")
	assert.Contains(t, err.Error(), "project.pbxproj")
	assert.True(t, errors.Is(err, base))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("yaml", "x", nil))
	assert.NoError(t, pkgerrors.WrapValidation("field", nil))
}
