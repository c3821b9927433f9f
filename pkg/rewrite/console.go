package rewrite

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// ConsoleRewriter converts legacy console.log/warn/error calls into
// structured logger calls. Every pattern requires the literal "[<prefix>]"
// tag inside the message, so a rewriter built for one agent never touches
// call sites belonging to another.
//
// The rules are ordered and mutually exclusive on their trigger shapes:
// message-only calls end with a backtick directly followed by ");", while
// message-plus-argument calls require a comma after the message. Everything
// between that comma and the closing ");" becomes the data object, extra
// arguments included; only calls carrying parentheses nested more than one
// level deep are left untouched.
type ConsoleRewriter struct {
	prefix string
	rules  []*Rule
}

// NewConsoleRewriter builds the ordered call-site rule catalog for one
// agent prefix.
func NewConsoleRewriter(prefix string) *ConsoleRewriter {
	p := regexp.QuoteMeta(prefix)

	messageOnly := func(console, level string) *Rule {
		return &Rule{
			Name:    console + "-message",
			Pattern: regexp.MustCompile(console + `\(` + "`" + `\[` + p + `\] ([^` + "`" + `]+)` + "`" + `\);`),
			Rewrite: func(g []string) string {
				return fmt.Sprintf("logger.%s({}, '[%s] %s');", level, prefix, g[1])
			},
		}
	}

	rules := []*Rule{
		messageOnly(`console\.log`, "info"),
		{
			Name: "console.log-message-data",
			// The trailing expression may carry one level of balanced
			// parentheses (JSON.stringify(args)); deeper nesting is out of
			// reach for a textual rule and such calls are left untouched.
			Pattern: regexp.MustCompile(`console\.log\(` + "`" + `\[` + p + `\] ([^` + "`" + `]+)` + "`" + `,\s*((?:[^();\n]|\([^()\n]*\))+)\);`),
			Rewrite: func(g []string) string {
				expr := strings.TrimSpace(g[2])
				if strings.Contains(expr, "JSON.stringify") {
					// A serialized payload goes under a fixed "data" key
					// rather than becoming a shorthand property.
					return fmt.Sprintf("logger.info({ data: %s }, '[%s] %s');", expr, prefix, g[1])
				}
				return fmt.Sprintf("logger.info({ %s }, '[%s] %s');", expr, prefix, g[1])
			},
		},
		messageOnly(`console\.error`, "error"),
		{
			Name:    "console.error-error",
			Pattern: regexp.MustCompile(`console\.error\(` + "`" + `\[` + p + `\] ([^` + "`" + `]+)` + "`" + `,\s*error\);`),
			Rewrite: func(g []string) string {
				// The trailing colon belonged to the "message: value" style
				// of console output and is dropped in the structured form.
				msg := strings.TrimRight(g[1], ":")
				return fmt.Sprintf(
					"logger.error({ error: error instanceof Error ? error.message : String(error) }, '[%s] %s');",
					prefix, msg)
			},
		},
		messageOnly(`console\.warn`, "warn"),
	}

	return &ConsoleRewriter{prefix: prefix, rules: rules}
}

// Name implements Pass.
func (r *ConsoleRewriter) Name() string { return "rewrite-console" }

// Prefix returns the agent tag this rewriter was built for.
func (r *ConsoleRewriter) Prefix() string { return r.prefix }

// Rules returns the ordered rule catalog, for listing and inspection.
func (r *ConsoleRewriter) Rules() []*Rule { return r.rules }

// Apply runs the ordered call-site rules against the document.
func (r *ConsoleRewriter) Apply(_ context.Context, doc *Document) (int, error) {
	return applyRules(doc, r.rules), nil
}
