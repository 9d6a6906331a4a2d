// vqaprompt prints visual QA prompts for labeled report cases.
//
// Usage:
//
//	vqaprompt [--config=config/vqa.yaml] [--cases=<path>] [--language=chinese] [--index=0]
//	vqaprompt resolve <cid>...
//	vqaprompt templates
//
// With no flags it reads the configured case list, takes the first case and
// prints its prompt for the Chinese dataset.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"report_vqa/pkg/core/config"
	"report_vqa/pkg/core/dataset"
	"report_vqa/pkg/core/prompt"
)

var rootFlags struct {
	configPath string
	casesPath  string
	language   string
	index      int
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vqaprompt",
		Short: "Build visual QA prompts for labeled report metrics",
		Long:  "vqaprompt looks up a labeled case's metric in its report's metrics file\nand prints the instruction prompt for a visual QA model.",
		Args:  cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	f := rootCmd.Flags()
	f.StringVar(&rootFlags.configPath, "config", config.DefaultPath, "Dataset config file (YAML)")
	f.StringVar(&rootFlags.casesPath, "cases", "", "Case list JSON (overrides cases_path)")
	f.StringVar(&rootFlags.language, "language", "chinese", "Dataset language")
	f.IntVar(&rootFlags.index, "index", 0, "Index of the case to render")

	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newTemplatesCmd())
	return rootCmd
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		return err
	}
	if rootFlags.casesPath != "" {
		cfg.CasesPath = rootFlags.casesPath
	}
	if cfg.PromptDir != "" {
		if err := prompt.LoadFromDirectory(cfg.PromptDir); err != nil {
			return err
		}
	}

	loader := dataset.NewLoader(cfg, prompt.Default())
	cases, err := loader.LoadCases(cfg.CasesPath)
	if err != nil {
		return err
	}
	if rootFlags.index < 0 || rootFlags.index >= len(cases) {
		return fmt.Errorf("case index %d out of range: %s has %d cases", rootFlags.index, cfg.CasesPath, len(cases))
	}

	p, err := loader.LoadPrompt(rootFlags.language, cases[rootFlags.index])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), p)
	return nil
}

func main() {
	// Load environment variables
	godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
