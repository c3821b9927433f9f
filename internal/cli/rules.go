package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikeyoung304/MAIS/internal/logging"
	"github.com/mikeyoung304/MAIS/pkg/rewrite"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// extractionInfo represents one extraction rule in JSON output.
type extractionInfo struct {
	Name   string   `json:"name"`
	Levels string   `json:"levels"`
	Fields []string `json:"fields"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rewrite passes and variable extraction rules",
		Long: `List the pass sequence the migration applies to every agent source,
and the catalog of interpolation references the variable extractor
recognizes, in evaluation order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			catalog := rewrite.NewVariableExtractor().Catalog()

			if flags.format == formatJSON {
				return outputRulesJSON(catalog)
			}

			logger := logging.NewInteractive()

			logger.Info("pass sequence")
			for i, pass := range rewrite.NewEngine("<prefix>").Passes() {
				logger.Info(pass.Name(), "order", i+1)
			}

			logger.Info("extraction rules")
			for _, rule := range catalog {
				fields := make([]string, 0, len(rule.Refs))
				for _, ref := range rule.Refs {
					fields = append(fields, ref.Field)
				}
				logger.Info(rule.RuleName,
					"levels", rule.Levels,
					"fields", fields,
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON outputs the extraction catalog as a JSON array.
func outputRulesJSON(catalog []rewrite.ExtractorRule) error {
	infos := make([]extractionInfo, 0, len(catalog))
	for _, rule := range catalog {
		fields := make([]string, 0, len(rule.Refs))
		for _, ref := range rule.Refs {
			fields = append(fields, ref.Field)
		}
		infos = append(infos, extractionInfo{
			Name:   rule.RuleName,
			Levels: rule.Levels,
			Fields: fields,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
