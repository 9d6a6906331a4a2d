package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"report_vqa/pkg/core/company"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <cid>...",
		Short: "Print the report display name for document codes",
		Long:  fmt.Sprintf("Known codes: %v", company.Codes()),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, cid := range args {
				name, err := company.Resolve(cid)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", cid, name)
			}
			return nil
		},
	}
}
