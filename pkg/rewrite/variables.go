package rewrite

import (
	"context"
	"regexp"
	"strings"
)

// Extraction describes one recognized interpolation reference: the regular
// expression for the ${...} body, the fixed field name it normalizes to, and
// the canonical binding expression for the data object. An empty Bind means
// "bind whatever the body matched", which is how several spellings of a
// session identifier all normalize to the sessionId field.
type Extraction struct {
	Field string
	Expr  string
	Bind  string
}

// ExtractorRule lifts one or two co-occurring interpolation references out
// of a structured call's message and into its data object. Rules only fire
// while the data object is empty ("{}"), so a rule can never re-match text
// another rule already claimed.
type ExtractorRule struct {
	// RuleName identifies the rule in reports and the rules listing.
	RuleName string

	// Levels is the severity alternation the rule applies to, e.g.
	// "info|warn|error" or just "error".
	Levels string

	// Refs holds the extractions, in message order. Compound rules carry
	// two fixed references and extract both fields in one rewrite.
	Refs []Extraction
}

// extractorCatalog is the ordered, closed registry of recognized
// interpolation references. Compound rules precede the single-field rules
// for the same references so that co-occurring pairs are extracted together.
// Adding support for a new variable name means adding one entry here.
var extractorCatalog = []ExtractorRule{
	{RuleName: "agent-and-session", Levels: "info|warn|error", Refs: []Extraction{
		{Field: "agentName", Expr: `agentName`, Bind: "agentName"},
		{Field: "sessionId", Expr: `\w*[sS]essionId`},
	}},
	{RuleName: "tenant-id", Levels: "info|warn|error", Refs: []Extraction{
		{Field: "tenantId", Expr: `tenantId`, Bind: "tenantId"},
	}},
	{RuleName: "agent-name", Levels: "info|warn|error", Refs: []Extraction{
		{Field: "agentName", Expr: `agentName`, Bind: "agentName"},
	}},
	{RuleName: "session-id", Levels: "info|warn|error", Refs: []Extraction{
		{Field: "sessionId", Expr: `\w*[sS]essionId`},
	}},
	{RuleName: "response-status", Levels: "error", Refs: []Extraction{
		{Field: "status", Expr: `response\.status`, Bind: "response.status"},
	}},
	{RuleName: "error-text", Levels: "error", Refs: []Extraction{
		{Field: "errorText", Expr: `errorText`, Bind: "errorText"},
	}},
	{RuleName: "section-and-page", Levels: "info", Refs: []Extraction{
		{Field: "sectionType", Expr: `params\.sectionType`, Bind: "params.sectionType"},
		{Field: "pageName", Expr: `params\.pageName`, Bind: "params.pageName"},
	}},
	{RuleName: "task", Levels: "info", Refs: []Extraction{
		{Field: "task", Expr: `params\.task`, Bind: "params.task"},
	}},
	{RuleName: "page-name", Levels: "info", Refs: []Extraction{
		{Field: "pageName", Expr: `params\.pageName`, Bind: "params.pageName"},
	}},
	{RuleName: "enabled", Levels: "info", Refs: []Extraction{
		{Field: "enabled", Expr: `params\.enabled`, Bind: "params.enabled"},
	}},
	{RuleName: "to-position", Levels: "info", Refs: []Extraction{
		{Field: "toPosition", Expr: `params\.toPosition`, Bind: "params.toPosition"},
	}},
	{RuleName: "section-id", Levels: "info", Refs: []Extraction{
		{Field: "sectionId", Expr: `params\.sectionId`, Bind: "params.sectionId"},
	}},
	{RuleName: "context", Levels: "info", Refs: []Extraction{
		{Field: "context", Expr: `params\.context`, Bind: "params.context"},
	}},
	{RuleName: "service-name", Levels: "info", Refs: []Extraction{
		{Field: "serviceName", Expr: `params\.serviceName`, Bind: "params.serviceName"},
	}},
	{RuleName: "copy-type", Levels: "info", Refs: []Extraction{
		{Field: "copyType", Expr: `params\.copyType`, Bind: "params.copyType"},
	}},
	{RuleName: "industry-and-location", Levels: "info", Refs: []Extraction{
		{Field: "industry", Expr: `params\.industry`, Bind: "params.industry"},
		{Field: "location", Expr: `params\.location`, Bind: "params.location"},
	}},
	{RuleName: "url", Levels: "info", Refs: []Extraction{
		{Field: "url", Expr: `params\.url`, Bind: "params.url"},
	}},
	{RuleName: "competitor-count", Levels: "info", Refs: []Extraction{
		{Field: "competitorCount", Expr: `params\.competitors\.length`, Bind: "params.competitors.length"},
	}},
	{RuleName: "service-id", Levels: "info", Refs: []Extraction{
		{Field: "serviceId", Expr: `params\.serviceId`, Bind: "params.serviceId"},
	}},
	{RuleName: "date-range", Levels: "info", Refs: []Extraction{
		{Field: "startDate", Expr: `params\.startDate`, Bind: "params.startDate"},
		{Field: "endDate", Expr: `params\.endDate`, Bind: "params.endDate"},
	}},
	{RuleName: "question", Levels: "info", Refs: []Extraction{
		{Field: "question", Expr: `params\.question\.substring\(0,\s*50\)`, Bind: "params.question.substring(0, 50)"},
	}},
	{RuleName: "scheduled-at", Levels: "info", Refs: []Extraction{
		{Field: "scheduledAt", Expr: `params\.scheduledAt`, Bind: "params.scheduledAt"},
	}},
}

// binding renders one data-object entry. When the bound expression is
// exactly the field name the shorthand property form is used.
func (e Extraction) binding(matched string) string {
	expr := e.Bind
	if expr == "" {
		expr = matched
	}
	if expr == e.Field {
		return e.Field
	}
	return e.Field + ": " + expr
}

// messageQuotes are the two quoting styles a rewritten message can carry by
// the time extraction runs: single quotes straight from the call-site
// rewriter, or backticks from the template normalizer. RE2 has no
// backreferences, so each rule is compiled once per quote style.
var messageQuotes = [2]string{"'", "`"}

// compile expands one catalog entry into concrete rules, one per quote
// style. The generated pattern only fires on an empty data object, and the
// replacement fills the data object and swaps each ${...} reference for its
// bracketed field tag in place.
func (er ExtractorRule) compile() []*Rule {
	rules := make([]*Rule, 0, len(messageQuotes))
	for _, q := range messageQuotes {
		body := `[^` + q + `]*`
		pat := `(logger\.(?:` + er.Levels + `)\()\{\}(,\s*)` + q + `(` + body + `)`
		for _, ref := range er.Refs {
			pat += `\$\{(` + ref.Expr + `)\}(` + body + `)`
		}
		pat += q + `(\);)`

		refs := er.Refs
		quote := q
		rules = append(rules, &Rule{
			Name:    er.RuleName,
			Pattern: regexp.MustCompile(pat),
			Rewrite: func(g []string) string {
				// Groups: 1 head, 2 separator, 3 leading text, then an
				// (expr, trailing text) pair per reference, final group is
				// the closing parenthesis.
				entries := make([]string, len(refs))
				var msg strings.Builder
				msg.WriteString(g[3])
				for i, ref := range refs {
					matched := g[4+2*i]
					entries[i] = ref.binding(matched)
					msg.WriteString("[" + ref.Field + "]")
					msg.WriteString(g[5+2*i])
				}
				data := "{ " + strings.Join(entries, ", ") + " }"
				return g[1] + data + g[2] + quote + msg.String() + quote + g[len(g)-1]
			},
		})
	}
	return rules
}

// VariableExtractor applies the extractor catalog to a document. The
// compiled rule set is immutable and shared across all documents in a run.
type VariableExtractor struct {
	rules []*Rule
}

// NewVariableExtractor compiles the full catalog.
func NewVariableExtractor() *VariableExtractor {
	var rules []*Rule
	for _, entry := range extractorCatalog {
		rules = append(rules, entry.compile()...)
	}
	return &VariableExtractor{rules: rules}
}

// Name implements Pass.
func (*VariableExtractor) Name() string { return "extract-variables" }

// Catalog returns the registry entries, for listing and inspection.
func (*VariableExtractor) Catalog() []ExtractorRule { return extractorCatalog }

// Apply runs the catalog in order against the document. Interpolation
// references with no matching rule are left in the message as literal
// interpolation syntax; that is an accepted gap, not an error.
func (v *VariableExtractor) Apply(_ context.Context, doc *Document) (int, error) {
	return applyRules(doc, v.rules), nil
}
