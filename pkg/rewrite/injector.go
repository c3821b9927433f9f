package rewrite

import (
	"context"
	"regexp"
	"strings"
)

// Sentinel is the marker comment that identifies an injected logger
// declaration. Its presence means the declaration must not be inserted again.
const Sentinel = "// STRUCTURED LOGGER"

// banner is the comment rule used by the agent sources to delimit sections.
const banner = "// ============================================================================="

// loggerDeclaration is the fixed logger utility block inserted into each
// agent file. It provides three severity-keyed entry points that serialize a
// structured record to the matching console stream.
const loggerDeclaration = `
` + banner + `
` + Sentinel + `
` + banner + `

/**
 * Lightweight structured logger for Cloud Run agents
 * Outputs JSON for easy parsing in Cloud Logging
 */
` + canonicalDeclaration + `
`

// anchorPattern locates the boundary between the import region and the
// ENVIRONMENT CONFIGURATION banner. The declaration is inserted between the
// two captured groups.
var anchorPattern = regexp.MustCompile(
	`(?s)(import.*?;\s*\n)(\n` + banner + `\n// ENVIRONMENT CONFIGURATION)`)

// Injector inserts the logger declaration into a document if it is absent.
// It is stateless and safe to share across documents.
type Injector struct{}

// Name implements Pass.
func (Injector) Name() string { return "inject-logger" }

// Apply inserts the logger declaration immediately before the environment
// configuration banner. The document is returned unchanged when the sentinel
// marker is already present. A missing anchor is recorded as a warning on
// the document, not an error.
func (Injector) Apply(_ context.Context, doc *Document) (int, error) {
	text := doc.Text()
	if strings.Contains(text, Sentinel) {
		return 0, nil
	}

	loc := anchorPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		doc.Warn("no insertion anchor found for logger declaration")
		return 0, nil
	}

	// Insert between the end of the import region (group 1) and the start
	// of the configuration banner (group 2).
	at := loc[3]
	doc.SetText(text[:at] + loggerDeclaration + text[at:])
	return 1, nil
}
