// Package scaffold writes a starter content manifest for a project. It
// powers the "stylescan init" command and seeds the content patterns from the
// directories it finds in the project.
package scaffold
