package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"report_vqa/pkg/core/config"
	"report_vqa/pkg/core/prompt"
)

var templatesFlags struct {
	configPath string
}

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List prompt library entries",
		Args:  cobra.NoArgs,
		RunE:  runTemplates,
	}
	cmd.Flags().StringVar(&templatesFlags.configPath, "config", config.DefaultPath, "Dataset config file (YAML)")
	return cmd
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(templatesFlags.configPath)
	if err != nil {
		return err
	}
	if cfg.PromptDir != "" {
		if err := prompt.LoadFromDirectory(cfg.PromptDir); err != nil {
			return err
		}
	}

	registry := prompt.Get()
	out := cmd.OutOrStdout()
	for _, id := range registry.ListPrompts() {
		pt, err := registry.GetPrompt(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\tv%s\t%s\n", pt.ID, pt.Version, pt.Name)
	}
	return nil
}
