// Package rewrite implements the migration passes that convert console-style
// logging calls in agent source files into structured logger calls.
//
// The passes are textual: each one recognizes a fixed catalog of call-site
// shapes with regular expressions and rewrites matched spans in place. Text
// outside a matched span is never touched, and every rule rewrites to a form
// its own pattern no longer matches, so a full run is idempotent.
package rewrite

// Document holds the full text of one target file while it is being
// transformed. The orchestrator owns the buffer exclusively for the duration
// of a run; passes mutate it through SetText.
type Document struct {
	// Path is the file path the content was read from.
	Path string

	content  string
	dirty    bool
	warnings []string
}

// NewDocument creates a Document for the given path and content.
func NewDocument(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		content: string(content),
	}
}

// Text returns the current document text.
func (d *Document) Text() string {
	return d.content
}

// Bytes returns the current document text as a byte slice.
func (d *Document) Bytes() []byte {
	return []byte(d.content)
}

// SetText replaces the document text. The dirty flag is raised only when the
// new text differs from the current text.
func (d *Document) SetText(text string) {
	if text == d.content {
		return
	}
	d.content = text
	d.dirty = true
}

// Dirty reports whether any pass changed the document text.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Warn records a non-fatal diagnostic for this document, such as a missing
// insertion anchor. Warnings never abort processing.
func (d *Document) Warn(msg string) {
	d.warnings = append(d.warnings, msg)
}

// Warnings returns the diagnostics recorded during processing.
func (d *Document) Warnings() []string {
	return d.warnings
}
