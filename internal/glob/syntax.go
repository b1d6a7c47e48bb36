package glob

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxClassSize bounds how many characters a class with several members may
// expand to. A class holding one range is passed to gobwas as a range.
const maxClassSize = 1024

// SyntaxError describes why a pattern was rejected. Offset is the byte
// position of the offending token within Pattern.
type SyntaxError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid glob %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

// Validate reports whether pattern is syntactically usable. It returns nil or
// a *SyntaxError.
func Validate(pattern string) error {
	_, err := parse(pattern)
	return err
}

// parsed is the normalized form of a pattern.
type parsed struct {
	negated bool
	// chunks are gobwas expressions separated by "**/" occurrences.
	chunks []string
	// base is the unescaped static directory prefix, "" when the pattern
	// starts with a wildcard.
	base string
}

type parser struct {
	pattern string
	src     string // pattern after "!" and "./" prefixes
	off     int    // offset of src within pattern

	chunks []string
	buf    strings.Builder

	inBrace    bool
	braceStart int
	segStart   int

	// static tracks the literal prefix until the first wildcard.
	static   strings.Builder
	sawMeta  bool
}

func parse(pattern string) (*parsed, error) {
	p := &parser{pattern: pattern, src: pattern}

	negated := false
	if strings.HasPrefix(p.src, "!") {
		negated = true
		p.src = p.src[1:]
		p.off = 1
	}
	for strings.HasPrefix(p.src, "./") {
		p.src = p.src[2:]
		p.off += 2
	}
	if p.src == "" {
		return nil, p.errorf(len(pattern), "empty pattern")
	}

	if err := p.run(); err != nil {
		return nil, err
	}

	return &parsed{
		negated: negated,
		chunks:  p.chunks,
		base:    p.base(),
	}, nil
}

func (p *parser) errorf(offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Pattern: p.pattern,
		Offset:  offset,
		Reason:  fmt.Sprintf(format, args...),
	}
}

func (p *parser) run() error {
	s := p.src
	for i := 0; i < len(s); {
		switch c := s[i]; c {
		case '\\':
			if i+1 >= len(s) {
				return p.errorf(p.off+i, "trailing escape character")
			}
			r, size := utf8.DecodeRuneInString(s[i+1:])
			p.literal(r)
			i += 1 + size

		case '*':
			if i+1 < len(s) && s[i+1] == '*' {
				if p.inBrace {
					return p.errorf(p.off+i, "'**' is not allowed inside alternation")
				}
				if i != p.segStart || (i+2 < len(s) && s[i+2] != '/') {
					return p.errorf(p.off+i, "'**' must be a whole path segment")
				}
				p.meta()
				if i+2 < len(s) {
					// "**/" splits chunks so it can also match zero directories.
					p.chunks = append(p.chunks, p.buf.String())
					p.buf.Reset()
					i += 3
					p.segStart = i
					continue
				}
				p.buf.WriteString("**")
				i += 2
				continue
			}
			p.meta()
			p.buf.WriteByte('*')
			i++

		case '?':
			p.meta()
			p.buf.WriteByte('?')
			i++

		case '[':
			n, err := p.class(i)
			if err != nil {
				return err
			}
			p.meta()
			i = n

		case '{':
			if p.inBrace {
				return p.errorf(p.off+i, "nested alternation is not supported")
			}
			p.meta()
			p.inBrace = true
			p.braceStart = i
			p.buf.WriteByte('{')
			i++

		case ',':
			if p.inBrace {
				p.buf.WriteByte(',')
			} else {
				p.literal(',')
			}
			i++

		case '}':
			if !p.inBrace {
				return p.errorf(p.off+i, "unmatched '}'")
			}
			if i == p.braceStart+1 {
				return p.errorf(p.off+p.braceStart, "empty alternation")
			}
			p.inBrace = false
			p.buf.WriteByte('}')
			i++

		case '/':
			p.literal('/')
			i++
			p.segStart = i

		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				return p.errorf(p.off+i, "invalid UTF-8")
			}
			p.literal(r)
			i += size
		}
	}

	if p.inBrace {
		return p.errorf(p.off+p.braceStart, "unterminated alternation")
	}
	p.chunks = append(p.chunks, p.buf.String())
	return nil
}

// class consumes a character class starting at s[start] == '[' and returns
// the index just past the closing bracket.
func (p *parser) class(start int) (int, error) {
	s := p.src
	i := start + 1
	negated := false
	if i < len(s) && (s[i] == '!' || s[i] == '^') {
		negated = true
		i++
	}

	// next decodes one (possibly escaped) class member.
	next := func(at int) (rune, int, error) {
		if s[at] == '\\' {
			if at+1 >= len(s) {
				return 0, 0, p.errorf(p.off+start, "unterminated character class")
			}
			r, size := utf8.DecodeRuneInString(s[at+1:])
			return r, at + 1 + size, nil
		}
		r, size := utf8.DecodeRuneInString(s[at:])
		return r, at + size, nil
	}

	var members [][2]rune
	closed := false
	for i < len(s) {
		if s[i] == ']' {
			closed = true
			break
		}
		lo, after, err := next(i)
		if err != nil {
			return 0, err
		}
		if after+1 < len(s) && s[after] == '-' && s[after+1] != ']' {
			hi, end, err := next(after + 1)
			if err != nil {
				return 0, err
			}
			if hi < lo {
				return 0, p.errorf(p.off+i, "invalid range %q-%q", lo, hi)
			}
			members = append(members, [2]rune{lo, hi})
			i = end
			continue
		}
		members = append(members, [2]rune{lo, lo})
		i = after
	}

	if !closed {
		return 0, p.errorf(p.off+start, "unterminated character class")
	}
	if len(members) == 0 {
		return 0, p.errorf(p.off+start, "empty character class")
	}

	// gobwas reads a lone "lo-hi" natively, so it is never expanded.
	if len(members) == 1 && members[0][0] < members[0][1] && plainRangeRune(members[0][0]) && plainRangeRune(members[0][1]) {
		p.buf.WriteString(rangeExpr(members[0][0], members[0][1], negated))
		return i + 1, nil
	}

	var set []rune
	seen := make(map[rune]bool)
	for _, m := range members {
		for r := m[0]; r <= m[1]; r++ {
			if seen[r] {
				continue
			}
			seen[r] = true
			set = append(set, r)
			if len(set) > maxClassSize {
				return 0, p.errorf(p.off+start, "character class is too large")
			}
		}
	}

	p.buf.WriteString(classExpr(set, negated))
	return i + 1, nil
}

// plainRangeRune reports whether r can appear unescaped as a gobwas range bound.
func plainRangeRune(r rune) bool {
	return !strings.ContainsRune(`\]![^-`, r)
}

func rangeExpr(lo, hi rune, negated bool) string {
	var b strings.Builder
	b.WriteByte('[')
	if negated {
		b.WriteByte('!')
	}
	b.WriteRune(lo)
	b.WriteByte('-')
	b.WriteRune(hi)
	b.WriteByte(']')
	return b.String()
}

// classExpr renders a set as a gobwas character list. A '-' member is placed
// first and unescaped because gobwas reads "[\-" as the start of a range.
func classExpr(set []rune, negated bool) string {
	var b strings.Builder
	b.WriteByte('[')
	if negated {
		b.WriteByte('!')
	}
	hasDash := false
	for _, r := range set {
		if r == '-' {
			hasDash = true
		}
	}
	if hasDash {
		b.WriteByte('-')
	}
	for _, r := range set {
		if r == '-' {
			continue
		}
		if strings.ContainsRune(`\]![^`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}

func (p *parser) literal(r rune) {
	if strings.ContainsRune(`*?[]{},\!-`, r) {
		p.buf.WriteByte('\\')
	}
	p.buf.WriteRune(r)
	if !p.sawMeta {
		p.static.WriteRune(r)
	}
}

func (p *parser) meta() {
	p.sawMeta = true
}

// base returns the directory part of the static prefix. A pattern with no
// wildcard at all is a literal path whose base is its parent directory.
func (p *parser) base() string {
	prefix := p.static.String()
	if !p.sawMeta {
		idx := strings.LastIndex(prefix, "/")
		if idx < 0 {
			return ""
		}
		return prefix[:idx]
	}
	idx := strings.LastIndex(prefix, "/")
	if idx < 0 {
		return ""
	}
	if idx == 0 {
		return "/"
	}
	return prefix[:idx]
}
