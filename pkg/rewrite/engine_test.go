package rewrite_test

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeyoung304/MAIS/pkg/rewrite"
)

const conciergeSource = `import { Hono } from 'hono';

// =============================================================================
// ENVIRONMENT CONFIGURATION
// =============================================================================
const PORT = process.env.PORT || '8080';

console.log(` + "`" + `[Concierge] Starting` + "`" + `);
console.log(` + "`" + `[Concierge] Session ${sessionId} ready` + "`" + `);
console.log(` + "`" + `[Concierge] Tool called` + "`" + `, JSON.stringify(args));
console.error(` + "`" + `[Concierge] Failed:` + "`" + `, error);
console.warn(` + "`" + `[Concierge] Budget ${remaining} low` + "`" + `);
`

func runEngine(t *testing.T, prefix, input string) (*rewrite.Document, *rewrite.Report) {
	t.Helper()
	doc := rewrite.NewDocument("agent.ts", []byte(input))
	report, err := rewrite.NewEngine(prefix).Run(context.Background(), doc)
	require.NoError(t, err)
	return doc, report
}

func TestEngine_FullRun(t *testing.T) {
	t.Parallel()

	doc, report := runEngine(t, "Concierge", conciergeSource)
	text := doc.Text()

	assert.True(t, report.Changed)
	assert.Empty(t, report.Warnings)

	// Declaration injected exactly once.
	assert.Equal(t, 1, strings.Count(text, rewrite.Sentinel))

	// Plain message.
	assert.Contains(t, text, "logger.info({}, '[Concierge] Starting');")

	// Serialized payload under the data key.
	assert.Contains(t, text, "logger.info({ data: JSON.stringify(args) }, '[Concierge] Tool called');")

	// Error call with colon stripped.
	assert.Contains(t, text,
		"logger.error({ error: error instanceof Error ? error.message : String(error) }, '[Concierge] Failed');")

	// Recognized interpolation lifted into the data object. The template
	// normalizer ran first, so the message carries template quoting.
	assert.Contains(t, text, "logger.info({ sessionId }, `[Concierge] Session [sessionId] ready`);")

	// Unrecognized interpolation stays in the message as-is.
	assert.Contains(t, text, "logger.warn({}, `[Concierge] Budget ${remaining} low`);")

	// No legacy calls remain.
	assert.NotContains(t, text, "console.log(`[Concierge]")
}

func TestEngine_IdempotentAcrossFullRuns(t *testing.T) {
	t.Parallel()

	doc, first := runEngine(t, "Concierge", conciergeSource)
	require.Positive(t, first.Total)

	again := rewrite.NewDocument("agent.ts", doc.Bytes())
	second, err := rewrite.NewEngine("Concierge").Run(context.Background(), again)
	require.NoError(t, err)

	assert.Zero(t, second.Total)
	assert.False(t, second.Changed)
	assert.Equal(t, doc.Text(), again.Text())
}

func TestEngine_NoCrossPrefixLeakage(t *testing.T) {
	t.Parallel()

	src := "console.log(`[Concierge] up`);\nconsole.log(`[BookingAgent] up`);\n"
	doc, _ := runEngine(t, "Concierge", src)

	assert.Contains(t, doc.Text(), "logger.info({}, '[Concierge] up');")
	assert.Contains(t, doc.Text(), "console.log(`[BookingAgent] up`);")
}

func TestEngine_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := rewrite.NewDocument("agent.ts", []byte(conciergeSource))
	_, err := rewrite.NewEngine("Concierge").Run(ctx, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// structuredCall matches a rewritten call and captures the data object body
// and the message body, for the field/tag pairing check.
var structuredCall = regexp.MustCompile(
	"logger\\.(?:info|warn|error)\\(\\{([^}]*)\\},\\s*['`]([^'`]*)['`]\\);")

var messageTag = regexp.MustCompile(`\[([a-zA-Z]+)\]`)

func TestEngine_FieldTagPairing(t *testing.T) {
	t.Parallel()

	src := `import { Hono } from 'hono';

// =============================================================================
// ENVIRONMENT CONFIGURATION
// =============================================================================
console.log(` + "`" + `[Research] Competitors ${params.competitors.length} found for ${params.url}` + "`" + `);
console.log(` + "`" + `[Research] Report ${params.startDate} to ${params.endDate}` + "`" + `);
console.error(` + "`" + `[Research] Hub returned ${response.status}` + "`" + `);
`
	doc, _ := runEngine(t, "Research", src)

	for _, m := range structuredCall.FindAllStringSubmatch(doc.Text(), -1) {
		dataBody, msg := m[1], m[2]
		if strings.Contains(msg, "${") {
			// Unextracted interpolation remains; pairing applies only to
			// fully extracted calls.
			continue
		}

		var fields []string
		for _, entry := range strings.Split(dataBody, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			name, _, _ := strings.Cut(entry, ":")
			fields = append(fields, strings.TrimSpace(name))
		}

		var tags []string
		for _, tag := range messageTag.FindAllStringSubmatch(msg, -1) {
			if tag[1] == "Research" {
				continue // agent prefix tag, not a field tag
			}
			tags = append(tags, tag[1])
		}

		sort.Strings(fields)
		sort.Strings(tags)
		assert.Equal(t, fields, tags, "call %q", m[0])
	}
}
