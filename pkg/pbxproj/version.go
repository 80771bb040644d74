package pbxproj

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/bricker/pbxproj-formatter/pkg/errors"
)

// Policy selects which of several conflicting build-version tokens survives.
type Policy string

// Supported resolution policies.
const (
	// PolicyHighest keeps the numerically largest version. Default.
	PolicyHighest Policy = "highest"

	// PolicyLowest keeps the numerically smallest version.
	PolicyLowest Policy = "lowest"
)

// ParsePolicy validates a policy selector string. The empty string maps to
// PolicyHighest.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "":
		return PolicyHighest, nil
	case PolicyHighest, PolicyLowest:
		return Policy(s), nil
	default:
		return "", &errors.ValidationError{
			Field:   "policy",
			Value:   s,
			Message: `must be "highest" or "lowest"`,
		}
	}
}

// ResolveVersion picks one token from the full ordered set of build-version
// tokens found in the source. The token text is returned unmodified; only
// its base-10 value drives the choice. found is false when no tokens exist,
// in which case the transformer must pass every version line through
// unchanged rather than filter.
func ResolveVersion(tokens []string, policy Policy) (resolved string, found bool, err error) {
	if len(tokens) == 0 {
		return "", false, nil
	}
	if policy != PolicyHighest && policy != PolicyLowest {
		return "", false, &errors.ValidationError{
			Field:   "policy",
			Value:   string(policy),
			Message: `must be "highest" or "lowest"`,
		}
	}

	best := tokens[0]
	bestValue, err := versionValue(best)
	if err != nil {
		return "", false, err
	}
	for _, tok := range tokens[1:] {
		v, err := versionValue(tok)
		if err != nil {
			return "", false, err
		}
		if (policy == PolicyHighest && v > bestValue) ||
			(policy == PolicyLowest && v < bestValue) {
			best, bestValue = tok, v
		}
	}
	return best, true, nil
}

// ScanVersions collects every build-version token in source order. This is
// the pre-scan pass: it must run to completion before transformation starts,
// since the resolved token is a precondition for version filtering.
func ScanVersions(r io.Reader) ([]string, error) {
	var tokens []string
	sc := newLineScanner(r)
	for sc.Scan() {
		if m := versionLine.FindStringSubmatch(sc.Text()); m != nil {
			tokens = append(tokens, m[1])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WrapIO("scan", "source", err)
	}
	return tokens, nil
}

// versionValue parses a version token. Tokens come from the \d+ capture of
// the version pattern in normal operation, so a failure here means the
// caller fed hand-built input.
func versionValue(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &errors.ValidationError{
			Field:   "version",
			Value:   tok,
			Message: "not a base-10 integer",
		}
	}
	return v, nil
}

// newLineScanner builds a scanner sized for long generated lines. Unlike
// bufio.ScanLines it keeps a trailing carriage return as part of the line,
// so CRLF sources round-trip byte for byte.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(scanDescriptorLines)
	return sc
}

func scanDescriptorLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// maxLineBytes bounds a single descriptor line.
const maxLineBytes = 1024 * 1024
