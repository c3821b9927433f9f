package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mikeyoung304/MAIS/pkg/runner"
)

const (
	markSuccess = "+"
	markFailure = "x"
	markWarning = "!"
)

// FormatOutcome renders one per-agent progress line.
// Examples:
//
//	+ concierge: 12 substitutions
//	+ booking: no changes
//	x marketing: file not found
func (s *Styles) FormatOutcome(outcome runner.Outcome) string {
	name := s.AgentName.Render(outcome.Agent.Name)

	if outcome.Failed() {
		return fmt.Sprintf("%s %s: %s\n",
			s.Failure.Render(markFailure), name, outcome.Err)
	}

	var parts []string
	if outcome.Report != nil && outcome.Report.Total > 0 {
		word := "substitutions"
		if outcome.Report.Total == 1 {
			word = "substitution"
		}
		parts = append(parts, s.Count.Render(strconv.Itoa(outcome.Report.Total))+" "+word)
	} else {
		parts = append(parts, s.Dim.Render("no changes"))
	}
	if outcome.Written {
		parts = append(parts, s.Success.Render("written"))
	}
	if outcome.Report != nil {
		for _, warning := range outcome.Report.Warnings {
			parts = append(parts, s.Warning.Render(markWarning+" "+warning))
		}
	}
	if outcome.LanguageMismatch {
		parts = append(parts, s.Warning.Render(markWarning+" not a TypeScript source"))
	}

	return fmt.Sprintf("%s %s: %s\n",
		s.Success.Render(markSuccess), name, strings.Join(parts, ", "))
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "Processed 4/5 agents, 37 substitutions, 4 files written".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	processed := fmt.Sprintf("Processed %d/%d agents",
		stats.AgentsSucceeded, stats.AgentsTotal)
	if stats.AgentsFailed > 0 {
		processed = s.Failure.Render(processed)
	} else {
		processed = s.Success.Render(processed)
	}

	parts := []string{processed}
	parts = append(parts, fmt.Sprintf("%d substitutions", stats.SubstitutionsTotal))
	if stats.FilesModified > 0 {
		fileWord := "files"
		if stats.FilesModified == 1 {
			fileWord = "file"
		}
		parts = append(parts, fmt.Sprintf("%d %s written", stats.FilesModified, fileWord))
	}
	if stats.Warnings > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d warnings", stats.Warnings)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// WriteSummary renders the summary block to the writer.
func (s *Styles) WriteSummary(w io.Writer, stats runner.Stats) {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", dividerWidth(w)))
	builder.WriteString("\n")

	builder.WriteString("  Agents processed:  " +
		s.SummaryValue.Render(fmt.Sprintf("%d/%d", stats.AgentsSucceeded, stats.AgentsTotal)) + "\n")

	if stats.AgentsFailed > 0 {
		builder.WriteString("  Agents failed:     " +
			s.Failure.Render(strconv.Itoa(stats.AgentsFailed)) + "\n")
	}

	builder.WriteString("  Substitutions:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.SubstitutionsTotal)) + "\n")

	if stats.FilesModified > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}
	if stats.Warnings > 0 {
		builder.WriteString("  Warnings:          " +
			s.Warning.Render(strconv.Itoa(stats.Warnings)) + "\n")
	}

	fmt.Fprint(w, builder.String())
}
