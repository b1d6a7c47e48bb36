// Package watch reloads a content manifest whenever its file changes. Each
// reload produces a fresh immutable manifest; nothing is patched in place.
package watch
