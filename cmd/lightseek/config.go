package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/lightseek/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := root.load()
			if err != nil {
				return err
			}
			sum, err := config.Fingerprint(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# fingerprint: %s\n", sum)
			return config.Encode(out, cfg, f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, toml)")
	return cmd
}
