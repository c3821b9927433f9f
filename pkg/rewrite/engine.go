package rewrite

import (
	"context"
	"fmt"
)

// Pass is one transformation applied to a whole document. Passes run
// strictly in sequence; each consumes the previous pass's full output.
// Passes are stateless with respect to documents and may be shared across a
// run.
type Pass interface {
	// Name identifies the pass in reports and debug output.
	Name() string

	// Apply transforms the document in place and returns the number of
	// substitutions made. A pass that matches nothing returns zero, not an
	// error.
	Apply(ctx context.Context, doc *Document) (int, error)
}

// PassCount records the substitutions one pass made on one document.
type PassCount struct {
	Pass          string
	Substitutions int
}

// Report summarizes a full engine run over one document.
type Report struct {
	// Counts holds per-pass substitution counts in execution order.
	Counts []PassCount

	// Total is the sum of all substitutions.
	Total int

	// Warnings holds non-fatal diagnostics, such as a missing anchor.
	Warnings []string

	// Changed is true if any pass modified the document text.
	Changed bool
}

// sharedExtractor is compiled once and reused by every engine; the catalog
// is read-only.
var sharedExtractor = NewVariableExtractor()

// Engine runs the fixed pass sequence for one agent prefix:
// inject declaration, repair declaration, rewrite call sites, normalize
// template quoting, extract variables.
type Engine struct {
	passes []Pass
}

// NewEngine builds the pass sequence for the given agent prefix. Only the
// call-site rewriter depends on the prefix; the remaining passes are shared.
func NewEngine(prefix string) *Engine {
	return &Engine{
		passes: []Pass{
			Injector{},
			DeclarationRepair{},
			NewConsoleRewriter(prefix),
			TemplateNormalizer{},
			sharedExtractor,
		},
	}
}

// Passes returns the pass sequence in execution order.
func (e *Engine) Passes() []Pass { return e.passes }

// Run applies every pass to the document in order and returns the run
// report. The document buffer is mutated in place; the caller decides
// whether to persist it based on Document.Dirty.
func (e *Engine) Run(ctx context.Context, doc *Document) (*Report, error) {
	report := &Report{}

	for _, pass := range e.passes {
		select {
		case <-ctx.Done():
			return report, fmt.Errorf("rewrite cancelled: %w", ctx.Err())
		default:
		}

		n, err := pass.Apply(ctx, doc)
		if err != nil {
			return report, fmt.Errorf("pass %s: %w", pass.Name(), err)
		}
		report.Counts = append(report.Counts, PassCount{Pass: pass.Name(), Substitutions: n})
		report.Total += n
	}

	report.Warnings = doc.Warnings()
	report.Changed = doc.Dirty()
	return report, nil
}
