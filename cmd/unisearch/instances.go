package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "List the configured start instances",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		w, err := cfg.World()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "grid %dx%d\n", w.Rows, w.Cols)
		for _, in := range cfg.Instances {
			s, err := in.State(w)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %s\n", in.Name, w.Describe(s))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(instancesCmd)
}
