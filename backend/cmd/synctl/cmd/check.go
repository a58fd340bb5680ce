package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate seed files and report store size",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths, _ := cmd.Flags().GetStringSlice("seed")
	if len(paths) == 0 {
		return fmt.Errorf("no seed files given; pass --seed")
	}

	store, n, err := loadStore(cmd)
	if err != nil {
		return err
	}

	stats := store.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d groups, %d words, %d relations\n", n, stats.Words, stats.Relations)
	return nil
}
