// Package theme resolves a manifest's theme mapping against the built-in
// defaults. A top-level theme key replaces the default section of the same
// name; keys under theme.extend are deep-merged into it.
package theme
