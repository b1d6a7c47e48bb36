// Package manifest loads and validates stylescan content manifests: the
// declarative record (content, theme, plugins) that tells a utility-CSS
// toolchain which template files to scan before purging unused styles.
//
// A manifest may be written as YAML, JSON, or a JavaScript object literal
// (the tailwind.config.js shape, decoded as JSON5):
//
//	module.exports = {
//	  content: ["./templates/**/*.html", "./**/*.py"],
//	  theme: { extend: {} },
//	  plugins: [require("@tailwindcss/forms")],
//	};
//
// Load returns an immutable *Manifest together with non-fatal warnings.
// Failures wrap one of ErrConfigNotFound, ErrConfigParse, ErrConfigShape or
// ErrConfigGlob so callers can branch with errors.Is.
package manifest
