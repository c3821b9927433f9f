package rewrite

import "regexp"

// Rule pairs a recognition pattern with a rewrite function. The rewrite
// receives the pattern's submatches (index 0 is the whole match) and returns
// the replacement text.
//
// Rules must be idempotent: the replacement must not match the rule's own
// pattern again. All rules in this package guarantee that by rewriting to a
// different call target (console.log -> logger.info) or a different quoting
// style, so re-running a rule yields zero substitutions.
type Rule struct {
	// Name identifies the rule in reports and debug output.
	Name string

	// Pattern recognizes one call-site or declaration shape.
	Pattern *regexp.Regexp

	// Rewrite produces the replacement for a match, parameterized by the
	// captured groups.
	Rewrite func(groups []string) string
}

// Apply rewrites every match of the rule in text and returns the new text
// along with the number of substitutions made. Zero matches is not an error;
// the text is returned unchanged.
func (r *Rule) Apply(text string) (string, int) {
	count := 0
	out := r.Pattern.ReplaceAllStringFunc(text, func(m string) string {
		// The patterns in this package are anchored by literal prefixes, so
		// re-matching against the matched span reproduces the same groups.
		groups := r.Pattern.FindStringSubmatch(m)
		count++
		return r.Rewrite(groups)
	})
	return out, count
}

// applyRules runs an ordered rule list against the document and returns the
// total substitution count. Order matters: earlier rules must not produce
// text that later rules would mangle, and vice versa.
func applyRules(doc *Document, rules []*Rule) int {
	text := doc.Text()
	total := 0
	for _, rule := range rules {
		var n int
		text, n = rule.Apply(text)
		total += n
	}
	doc.SetText(text)
	return total
}
