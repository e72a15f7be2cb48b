// Package cmd implements the trivy2ignore command line
package cmd

import (
	"fmt"
	"os"

	"github.com/ortelius/trivy2ignore/config"
	"github.com/ortelius/trivy2ignore/convert"
	"github.com/ortelius/trivy2ignore/util"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command. Each call returns a command with fresh flag state.
func NewRootCmd() *cobra.Command {
	var (
		inputFile  string
		outputFile string
	)

	rootCmd := &cobra.Command{
		Use:   "trivy2ignore",
		Short: "Convert Trivy JSON output to a .trivyignore.yaml file",
		Long: `Reads a Trivy JSON report and writes a .trivyignore.yaml suppression list.
Findings are de-duplicated by vulnerability ID, package URLs are merged,
and every entry expires six months from today
(override with TRIVYIGNORE_EXPIRY_MONTHS).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(inputFile, outputFile)
		},
	}

	rootCmd.Flags().StringVar(&inputFile, "input", "", "Path to the Trivy JSON output file (required)")
	rootCmd.Flags().StringVar(&outputFile, "output", "", "Path to write the .trivyignore YAML file (required)")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runConvert(inputFile, outputFile string) error {
	cfg, err := config.Load(config.New())
	if err != nil {
		return err
	}

	logger, err := util.InitLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	converter := convert.NewConverter(logger)
	converter.ExpiryMonths = cfg.ExpiryMonths

	_, err = converter.Run(inputFile, outputFile)
	return err
}
