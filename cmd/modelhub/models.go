package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"modelhub/internal/manager"
	"modelhub/internal/models"
	_ "modelhub/internal/models/all"
)

func newModelsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List discovered models and whether the allowlist makes them available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())
			configureGenAI(cfg, logger)
			mgr := manager.New(models.Registered(), cfg.AvailableModels, logger)

			avail := make(map[string]bool)
			for _, n := range mgr.AvailableNames() {
				avail[n] = true
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tAVAILABLE")
			for _, d := range mgr.Discovered() {
				yes := "no"
				if avail[d.Name] {
					yes = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.Type, yes)
			}
			return tw.Flush()
		},
	}
}
