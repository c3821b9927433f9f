package rewrite

import (
	"context"
	"regexp"
)

// templatePattern matches a rewritten logger call whose message is a
// single-quoted literal that still carries a ${...} interpolation marker.
// Template-literal messages use backticks and therefore never match, which
// makes the normalizer idempotent.
var templatePattern = regexp.MustCompile(
	`(logger\.(?:info|warn|error)\([^,]+,\s*)'([^']*\$\{[^']*)'(\);)`)

// TemplateNormalizer repairs messages the call-site rewriter quoted with
// single quotes even though they contain interpolation. The message content
// is preserved byte for byte; only the quote characters change.
type TemplateNormalizer struct{}

// Name implements Pass.
func (TemplateNormalizer) Name() string { return "normalize-templates" }

// Apply converts every affected message to template-literal quoting.
func (TemplateNormalizer) Apply(_ context.Context, doc *Document) (int, error) {
	rule := &Rule{
		Name:    "single-quote-to-template",
		Pattern: templatePattern,
		Rewrite: func(g []string) string {
			return g[1] + "`" + g[2] + "`" + g[3]
		},
	}
	text, n := rule.Apply(doc.Text())
	doc.SetText(text)
	return n, nil
}
