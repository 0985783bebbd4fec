package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintsarif/lintsarif/cmd/version"
	"github.com/lintsarif/lintsarif/internal/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "lintsarif [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Lintsarif converts ESLint results into SARIF reports.",
		Long: `Lintsarif is a reporting pipeline around a pure ESLint-to-SARIF formatter:
	it reads an ESLint JSON report, optionally enriched with rules metadata,
	and emits a SARIF v2.1.0 document with stable artifact and rule indices,
	per-finding fingerprints and suppression annotations.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
}

func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
}
