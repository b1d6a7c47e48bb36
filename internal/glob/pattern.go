package glob

import (
	"fmt"
	"strings"

	gobwas "github.com/gobwas/glob"
)

// maxGlobstarVariants caps how many "**/" occurrences get a zero-directory
// variant. Patterns beyond the cap still match one or more directories.
const maxGlobstarVariants = 6

// Pattern is a compiled content pattern.
type Pattern struct {
	raw     string
	negated bool
	base    string
	globs   []gobwas.Glob
}

// Compile validates pattern and returns a matcher for slash-separated paths.
func Compile(pattern string) (*Pattern, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}

	var globs []gobwas.Glob
	for _, expr := range expand(p.chunks) {
		g, err := gobwas.Compile(expr, '/')
		if err != nil {
			return nil, fmt.Errorf("compiling glob %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}

	return &Pattern{
		raw:     pattern,
		negated: p.negated,
		base:    p.base,
		globs:   globs,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether name matches the pattern, ignoring negation.
// A leading "./" on name is ignored.
func (p *Pattern) Match(name string) bool {
	for strings.HasPrefix(name, "./") {
		name = name[2:]
	}
	for _, g := range p.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Negated reports whether the pattern was written with a leading '!'.
func (p *Pattern) Negated() bool { return p.negated }

// Base returns the static directory prefix that every match lives under.
// It is empty when the pattern starts with a wildcard.
func (p *Pattern) Base() string { return p.base }

// String returns the pattern as written.
func (p *Pattern) String() string { return p.raw }

// expand joins chunks with "**/" and, for each joint, also with nothing so
// that "a/**/b" matches "a/b".
func expand(chunks []string) []string {
	joints := len(chunks) - 1
	if joints == 0 {
		return chunks
	}
	if joints > maxGlobstarVariants {
		return []string{strings.Join(chunks, "**/")}
	}

	var out []string
	for mask := 0; mask < 1<<joints; mask++ {
		var b strings.Builder
		b.WriteString(chunks[0])
		for j := 1; j < len(chunks); j++ {
			if mask&(1<<(j-1)) == 0 {
				b.WriteString("**/")
			}
			b.WriteString(chunks[j])
		}
		out = append(out, b.String())
	}
	return out
}
