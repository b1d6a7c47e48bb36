package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agentx-labs/stylescan/internal/glob"
)

// Sentinel errors for the four ways loading can fail.
var (
	// ErrConfigNotFound indicates the manifest path does not exist or cannot be read.
	ErrConfigNotFound = errors.New("manifest not found")

	// ErrConfigParse indicates the source is not valid in its notation.
	ErrConfigParse = errors.New("manifest is not valid in its notation")

	// ErrConfigShape indicates the decoded document has the wrong structure.
	ErrConfigShape = errors.New("manifest has an invalid shape")

	// ErrConfigGlob indicates a content entry is not a valid glob pattern.
	ErrConfigGlob = errors.New("manifest contains an invalid glob pattern")
)

// ShapeError lists every structural problem found in a manifest.
type ShapeError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString(ErrConfigShape.Error())
	if e.Path != "" {
		b.WriteString(" in ")
		b.WriteString(e.Path)
	}
	for i, issue := range e.Issues {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(issue.String())
	}
	return b.String()
}

func (e *ShapeError) Unwrap() error { return ErrConfigShape }

// GlobError names the content entry that failed glob validation.
type GlobError struct {
	Path    string
	Index   int
	Pattern string
	Offset  int
	Reason  string
	err     error
}

func (e *GlobError) Error() string {
	where := ""
	if e.Path != "" {
		where = " in " + e.Path
	}
	return fmt.Sprintf("%s%s: content[%d] %q at offset %d: %s",
		ErrConfigGlob, where, e.Index, e.Pattern, e.Offset, e.Reason)
}

// Unwrap exposes both ErrConfigGlob and the underlying *glob.SyntaxError.
func (e *GlobError) Unwrap() []error {
	if e.err == nil {
		return []error{ErrConfigGlob}
	}
	return []error{ErrConfigGlob, e.err}
}

func newGlobError(index int, pattern string, err error) *GlobError {
	ge := &GlobError{Index: index, Pattern: pattern, Reason: err.Error(), err: err}
	var se *glob.SyntaxError
	if errors.As(err, &se) {
		ge.Offset = se.Offset
		ge.Reason = se.Reason
	}
	return ge
}

// withPath attaches the manifest path to typed load errors.
func withPath(err error, path string) error {
	var se *ShapeError
	if errors.As(err, &se) {
		se.Path = path
		return se
	}
	var ge *GlobError
	if errors.As(err, &ge) {
		ge.Path = path
		return ge
	}
	return err
}
