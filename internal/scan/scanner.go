package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/agentx-labs/stylescan/internal/glob"
	"github.com/agentx-labs/stylescan/internal/manifest"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pattern bases walked at once.
const DefaultConcurrency = 4

// DefaultIgnore lists directory names skipped during walks. A pattern whose
// base already sits inside one of them still sees its contents.
var DefaultIgnore = []string{".git", "node_modules"}

// Scanner walks a project root.
type Scanner struct {
	root        string
	concurrency int
	ignore      map[string]bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithConcurrency bounds how many pattern bases are walked in parallel.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithIgnore replaces the ignored directory names.
func WithIgnore(names ...string) Option {
	return func(s *Scanner) {
		s.ignore = make(map[string]bool, len(names))
		for _, n := range names {
			s.ignore[n] = true
		}
	}
}

// New returns a Scanner rooted at root.
func New(root string, opts ...Option) *Scanner {
	s := &Scanner{root: root, concurrency: DefaultConcurrency}
	WithIgnore(DefaultIgnore...)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the outcome of a scan.
type Result struct {
	// Files are slash-separated paths relative to the root, sorted and unique.
	Files []string
	// Matches counts the files each positive pattern contributed after
	// exclusions.
	Matches map[string]int
	// Unmatched lists positive patterns that matched no file, in content order.
	Unmatched []string
}

// Scan resolves every content pattern of m.
func (s *Scanner) Scan(ctx context.Context, m *manifest.Manifest) (*Result, error) {
	var positives, negatives []*glob.Pattern
	compiled := make(map[string]bool)
	for _, raw := range m.Content() {
		p, err := glob.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling content pattern: %w", err)
		}
		// A repeated pattern is walked and reported once.
		if compiled[p.String()] {
			continue
		}
		compiled[p.String()] = true
		if p.Negated() {
			negatives = append(negatives, p)
		} else {
			positives = append(positives, p)
		}
	}

	// Each walker writes only its own slot.
	found := make([][]string, len(positives))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, p := range positives {
		g.Go(func() error {
			files, err := s.walk(ctx, p)
			if err != nil {
				return err
			}
			found[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Matches: make(map[string]int, len(positives))}
	seen := make(map[string]bool)
	for i, p := range positives {
		count := 0
		for _, f := range found[i] {
			if excluded(f, negatives) {
				continue
			}
			count++
			if !seen[f] {
				seen[f] = true
				result.Files = append(result.Files, f)
			}
		}
		result.Matches[p.String()] = count
		if count == 0 {
			result.Unmatched = append(result.Unmatched, p.String())
		}
	}
	sort.Strings(result.Files)
	return result, nil
}

// walk returns the files under the pattern's base that match it.
func (s *Scanner) walk(ctx context.Context, p *glob.Pattern) ([]string, error) {
	base := p.Base()
	absolute := filepath.IsAbs(filepath.FromSlash(base))

	start := s.root
	if absolute {
		start = filepath.FromSlash(base)
	} else if base != "" {
		start = filepath.Join(s.root, filepath.FromSlash(base))
	}

	info, err := os.Stat(start)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if path != start && s.ignore[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		name := filepath.ToSlash(path)
		if !absolute {
			rel, err := filepath.Rel(s.root, path)
			if err != nil {
				return nil
			}
			name = filepath.ToSlash(rel)
		}
		if p.Match(name) {
			files = append(files, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", start, err)
	}
	return files, nil
}

func excluded(name string, negatives []*glob.Pattern) bool {
	for _, n := range negatives {
		if n.Match(name) {
			return true
		}
	}
	return false
}
