package pbxproj

import (
	"bufio"
	"io"

	"github.com/rs/zerolog"

	"github.com/bricker/pbxproj-formatter/pkg/errors"
)

// transformer is a single-pass finite-state machine over the source lines.
// It holds exactly one forward cursor with no lookahead and no backtracking;
// every line outside a recognized section is emitted verbatim in its
// original relative order.
//
// States:
//
//	scanning           emit each line; opener matches enter a section mode
//	collecting list    buffer members until the closer, then normalize
//	filtering settings pass lines through, dropping losing version lines
//
// The list and settings modes are methods rather than enum values; each runs
// its section to the matching closer before the outer scan resumes, which
// keeps the closer-matching logic auditable in isolation.
type transformer struct {
	sc *bufio.Scanner
	w  *bufio.Writer

	// resolved build-version token, valid only when filter is true. When
	// filter is false every version line passes through unchanged; that is
	// a distinct mode, not filtering with an empty winner.
	resolved      string
	resolvedValue int64
	filter        bool

	report *Report
	log    zerolog.Logger
}

func newTransformer(src io.Reader, dst io.Writer, report *Report, log zerolog.Logger) *transformer {
	return &transformer{
		sc:     newLineScanner(src),
		w:      bufio.NewWriter(dst),
		report: report,
		log:    log,
	}
}

// setResolved arms version filtering with the winning token.
func (t *transformer) setResolved(token string) error {
	v, err := versionValue(token)
	if err != nil {
		return err
	}
	t.resolved, t.resolvedValue, t.filter = token, v, true
	return nil
}

// run drives the outer scanning state to EOF.
func (t *transformer) run() error {
	for t.sc.Scan() {
		line := t.sc.Text()
		t.emit(line)

		// Openers are tested in fixed priority order. The opener line
		// itself was already copied through above.
		if m := filesOpener.FindStringSubmatch(line); m != nil {
			if err := t.collectList(KindFiles, m[1]+");"); err != nil {
				return err
			}
			continue
		}
		if m := childrenOpener.FindStringSubmatch(line); m != nil {
			if err := t.collectList(KindChildren, m[1]+");"); err != nil {
				return err
			}
			continue
		}
		if m := settingsOpener.FindStringSubmatch(line); m != nil {
			if err := t.filterSettings(m[1] + "};"); err != nil {
				return err
			}
		}
	}
	if err := t.sc.Err(); err != nil {
		return errors.WrapIO("read", "source", err)
	}
	return t.w.Flush()
}

// collectList buffers member lines until the closer literal, emits the
// normalized members, then re-emits the closer exactly as read.
func (t *transformer) collectList(kind SectionKind, closer string) error {
	var members []string
	for t.sc.Scan() {
		line := t.sc.Text()
		if !matchesCloser(line, closer) {
			members = append(members, line)
			continue
		}

		canonical, err := NormalizeSection(members, kind)
		if err != nil {
			return err
		}
		for _, m := range canonical {
			t.emit(m)
		}
		t.emit(line)

		t.report.SectionsSorted++
		t.report.DuplicatesRemoved += len(members) - len(canonical)
		t.log.Debug().
			Str("kind", string(kind)).
			Int("members", len(members)).
			Int("duplicates", len(members)-len(canonical)).
			Msg("normalized section")
		return nil
	}
	if err := t.sc.Err(); err != nil {
		return errors.WrapIO("read", "source", err)
	}
	return &errors.UnterminatedSectionError{Kind: string(kind), Closer: closer}
}

// filterSettings passes a settings block through, keeping at most one
// version line: the first whose value equals the resolved token. With no
// resolved token armed, every version line survives. A block whose only
// version lines all mismatch the resolved token loses the field entirely;
// that is the documented last-resort dedup and a caller responsibility.
func (t *transformer) filterSettings(closer string) error {
	emitted := false
	for t.sc.Scan() {
		line := t.sc.Text()
		if matchesCloser(line, closer) {
			t.emit(line)
			return nil
		}
		if m := versionLine.FindStringSubmatch(line); m != nil && t.filter {
			v, err := versionValue(m[1])
			if err != nil {
				return err
			}
			if emitted || v != t.resolvedValue {
				t.report.VersionLinesDropped++
				t.log.Debug().Str("token", m[1]).Msg("dropped version line")
				continue
			}
			emitted = true
		}
		t.emit(line)
	}
	if err := t.sc.Err(); err != nil {
		return errors.WrapIO("read", "source", err)
	}
	return &errors.UnterminatedSectionError{Kind: "buildSettings", Closer: closer}
}

func (t *transformer) emit(line string) {
	// Write errors surface from the final Flush; bufio latches the first
	// one, so intermediate results can be ignored.
	_, _ = t.w.WriteString(line)
	_ = t.w.WriteByte('\n')
}
