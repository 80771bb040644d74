package pbxproj

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bricker/pbxproj-formatter/pkg/errors"
)

// Options configures a normalization run.
type Options struct {
	// Policy picks the surviving build-version token. Empty means
	// PolicyHighest.
	Policy Policy

	// Logger receives debug/info events. Nil disables logging.
	Logger *zerolog.Logger
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}

// Format normalizes a whole descriptor held in memory. The version pre-scan
// completes over src before the transformation pass begins; both passes run
// over the same buffered content, so no second read of the file is needed.
// The source is never modified; the canonical content is returned along with
// a report of what changed.
func Format(src []byte, opts Options) ([]byte, *Report, error) {
	policy, err := ParsePolicy(string(opts.Policy))
	if err != nil {
		return nil, nil, err
	}

	tokens, err := ScanVersions(bytes.NewReader(src))
	if err != nil {
		return nil, nil, err
	}
	resolved, found, err := ResolveVersion(tokens, policy)
	if err != nil {
		return nil, nil, err
	}

	log := opts.logger()
	report := &Report{VersionTokens: tokens, ResolvedVersion: resolved}

	var buf bytes.Buffer
	buf.Grow(len(src))
	t := newTransformer(bytes.NewReader(src), &buf, report, log)
	if found {
		if err := t.setResolved(resolved); err != nil {
			return nil, nil, err
		}
	}
	if err := t.run(); err != nil {
		return nil, nil, err
	}

	out := buf.Bytes()
	// The transformer emits newline-terminated lines; a source that did not
	// end in a newline keeps that shape.
	if len(src) > 0 && !bytes.HasSuffix(src, []byte("\n")) && bytes.HasSuffix(out, []byte("\n")) {
		out = out[:len(out)-1]
	}
	report.Changed = !bytes.Equal(src, out)

	log.Info().
		Int("sections", report.SectionsSorted).
		Int("duplicates", report.DuplicatesRemoved).
		Int("version_lines_dropped", report.VersionLinesDropped).
		Bool("changed", report.Changed).
		Msg("normalized descriptor")
	return out, report, nil
}

// FormatFile normalizes the descriptor at path in place. The result is
// written to a sibling temp file and renamed over the original, so the
// rename is the sole mutating operation against the real target: any fatal
// error leaves the original byte-for-byte intact. A temp file left behind
// by a failed run is an accepted leak.
//
// An already-normalized file is not rewritten.
func FormatFile(path string, opts Options) (*Report, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}

	out, report, err := Format(src, opts)
	if err != nil {
		return nil, err
	}
	if !report.Changed {
		return report, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(out); err != nil {
		_ = tmp.Close()
		return nil, errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.WrapIO("close", tmpPath, err)
	}
	// CreateTemp opens 0600; carry the original file's mode over.
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return nil, errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return nil, errors.WrapIO("rename", path, err)
	}
	return report, nil
}

// CheckFile reports whether the descriptor at path is already normalized
// without touching it.
func CheckFile(path string, opts Options) (*Report, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	_, report, err := Format(src, opts)
	return report, err
}

// ScanFile collects the version tokens of the descriptor at path and the
// value each policy would resolve.
func ScanFile(path string) (*ScanReport, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	tokens, err := ScanVersions(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	report := &ScanReport{Path: path, Tokens: tokens}
	if highest, found, err := ResolveVersion(tokens, PolicyHighest); err != nil {
		return nil, err
	} else if found {
		report.Highest = highest
	}
	if lowest, found, err := ResolveVersion(tokens, PolicyLowest); err != nil {
		return nil, err
	} else if found {
		report.Lowest = lowest
	}
	return report, nil
}
