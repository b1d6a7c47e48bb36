// Package scan resolves a manifest's content patterns against a project root
// and returns the set of candidate files a style purger should read.
package scan
