// Package langdetect guards the rewriter against mis-resolved targets. It
// uses go-enry to verify that a file scheduled for migration actually looks
// like TypeScript or JavaScript before any pattern is applied.
package langdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// scriptLanguages are the languages the migration patterns are written for.
var scriptLanguages = map[string]bool{
	"TypeScript": true,
	"JavaScript": true,
	"TSX":        true,
	"JSX":        true,
}

// Detect returns the language go-enry identifies for the given file.
// Returns an empty string when detection is inconclusive.
func Detect(path string, content []byte) string {
	return enry.GetLanguage(filepath.Base(path), content)
}

// IsScriptSource reports whether the file is TypeScript or JavaScript. An
// inconclusive detection counts as a pass: the file extension already
// constrains the candidates, and the rewriter's patterns are no-ops on text
// they do not recognize.
func IsScriptSource(path string, content []byte) bool {
	lang := Detect(path, content)
	if lang == "" {
		return true
	}
	return scriptLanguages[lang]
}
