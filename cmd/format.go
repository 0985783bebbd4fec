package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintsarif/lintsarif/internal/eslint"
	"github.com/lintsarif/lintsarif/internal/logger"
	"github.com/lintsarif/lintsarif/internal/sarif"
)

type FormatOptions struct {
	Input            string
	RulesMeta        string
	Output           string
	SourceFolder     string
	ToolVersion      string
	IgnoreSuppressed bool
	Pretty           bool
}

var allFormatOptions FormatOptions

var execExampleFormat = `  # Convert an ESLint JSON report to SARIF
  lintsarif format --input /tmp/juice-shop/eslint.json --output /tmp/juice-shop/eslint.sarif --source /tmp/juice-shop

  # Include rule documentation and drop suppressed findings
  lintsarif format -i eslint.json -r rules-meta.json --ignore-suppressed --pretty`

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:     "format -i /path/to/eslint-report.json [-o /path/to/report.sarif]",
	Short:   "Convert an ESLint JSON report into a SARIF document",
	Example: execExampleFormat,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logger.NewLogger(AppConfig, "core")
		logger.Debug("format called", "input", allFormatOptions.Input)

		opts := resolveFormatOptions()

		results, err := eslint.LoadReport(allFormatOptions.Input)
		if err != nil {
			return err
		}

		var rulesMeta map[string]*eslint.RuleMeta
		if allFormatOptions.RulesMeta != "" {
			rulesMeta, err = eslint.LoadRulesMeta(allFormatOptions.RulesMeta)
			if err != nil {
				return err
			}
		}

		doc := sarif.Build(results, rulesMeta, opts)

		var out io.Writer = os.Stdout
		if allFormatOptions.Output != "" {
			file, err := os.Create(allFormatOptions.Output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer file.Close()
			out = file
		}

		if allFormatOptions.Pretty || AppConfig.Format.Pretty {
			err = doc.PrettyWrite(out)
		} else {
			err = doc.Write(out)
		}
		if err != nil {
			return fmt.Errorf("failed to write SARIF document: %w", err)
		}

		logger.Info("SARIF document written",
			"results", len(doc.Runs[0].Results),
			"artifacts", len(doc.Runs[0].Artifacts),
			"output", allFormatOptions.Output)
		return nil
	},
}

// resolveFormatOptions merges command line flags with config file defaults;
// flags win.
func resolveFormatOptions() sarif.Options {
	opts := sarif.Options{
		IgnoreSuppressed: allFormatOptions.IgnoreSuppressed || AppConfig.Format.IgnoreSuppressed,
		ToolVersion:      allFormatOptions.ToolVersion,
		BaseFolderPath:   allFormatOptions.SourceFolder,
	}
	if opts.ToolVersion == "" {
		opts.ToolVersion = AppConfig.Format.ToolVersion
	}
	if opts.BaseFolderPath == "" {
		opts.BaseFolderPath = AppConfig.Format.BaseFolder
	}
	return opts
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVarP(&allFormatOptions.Input, "input", "i", "", "path to the ESLint JSON report")
	formatCmd.Flags().StringVarP(&allFormatOptions.RulesMeta, "rules", "r", "", "path to a rules metadata JSON file")
	formatCmd.Flags().StringVarP(&allFormatOptions.Output, "output", "o", "", "path of the SARIF output file (default is stdout)")
	formatCmd.Flags().StringVarP(&allFormatOptions.SourceFolder, "source", "s", "", "source folder artifact URIs are made relative to")
	formatCmd.Flags().StringVar(&allFormatOptions.ToolVersion, "tool-version", "", "ESLint version to record in the report")
	formatCmd.Flags().BoolVar(&allFormatOptions.IgnoreSuppressed, "ignore-suppressed", false, "exclude suppressed messages entirely")
	formatCmd.Flags().BoolVar(&allFormatOptions.Pretty, "pretty", false, "indent the SARIF output")

	if err := formatCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}
