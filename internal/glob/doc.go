// Package glob validates and compiles the file patterns listed in a manifest's
// content section. Validation is purely syntactic and never touches the
// filesystem; compiled patterns match slash-separated paths relative to a
// project root.
//
// Supported syntax:
//
//	literal/segments   matched exactly
//	*                  any run of characters within one segment
//	**                 any number of segments (must be a whole segment)
//	?                  one character within a segment
//	[abc] [a-z] [!a]   character classes, '^' is accepted for negation
//	{a,b}              alternation (not nested)
//	\x                 escapes x
//	!pattern           excludes paths matched by pattern
package glob
