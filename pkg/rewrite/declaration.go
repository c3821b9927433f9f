package rewrite

import (
	"context"
	"regexp"
)

// canonicalDeclaration is the correct form of the logger declaration. The
// repair pattern below can never match it: the declaration body contains
// closing braces before the terminating "};", and the pattern's body class
// excludes braces entirely.
const canonicalDeclaration = `const logger = {
  info: (data: Record<string, unknown>, msg: string) =>
    console.log(JSON.stringify({ level: 'info', msg, ...data, timestamp: new Date().toISOString() })),
  warn: (data: Record<string, unknown>, msg: string) =>
    console.warn(JSON.stringify({ level: 'warn', msg, ...data, timestamp: new Date().toISOString() })),
  error: (data: Record<string, unknown>, msg: string) =>
    console.error(JSON.stringify({ level: 'error', msg, ...data, timestamp: new Date().toISOString() })),
};`

// brokenDeclarationPattern matches a single-level logger declaration, the
// malformed shape earlier migrations occasionally left behind. A body with
// nested braces (such as the canonical declaration) cannot match.
var brokenDeclarationPattern = regexp.MustCompile(`(?s)const logger = \{[^}]+\};`)

// DeclarationRepair replaces malformed logger declarations with the
// canonical three-level declaration. Idempotent by construction.
type DeclarationRepair struct{}

// Name implements Pass.
func (DeclarationRepair) Name() string { return "repair-declaration" }

// Apply rewrites every malformed declaration in the document.
func (DeclarationRepair) Apply(_ context.Context, doc *Document) (int, error) {
	rule := &Rule{
		Name:    "canonical-logger-declaration",
		Pattern: brokenDeclarationPattern,
		Rewrite: func([]string) string { return canonicalDeclaration },
	}
	text, n := rule.Apply(doc.Text())
	doc.SetText(text)
	return n, nil
}
