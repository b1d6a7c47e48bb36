package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// CandidateNames are the manifest file names Find looks for, in priority order.
var CandidateNames = []string{
	"stylescan.config.yaml",
	"stylescan.config.yml",
	"stylescan.config.json",
	"tailwind.config.js",
	"tailwind.config.cjs",
	"tailwind.config.mjs",
}

// Find walks from dir up to the filesystem root and returns the path of the
// first manifest found.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for cur := abs; ; {
		for _, name := range CandidateNames {
			candidate := filepath.Join(cur, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return "", fmt.Errorf("%w: no manifest in %s or any parent directory", ErrConfigNotFound, abs)
}
