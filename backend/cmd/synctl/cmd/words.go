package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "List every word defined by the seed files",
		Args:  cobra.NoArgs,
		RunE:  runWords,
	}
}

func runWords(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, w := range store.Words() {
		fmt.Fprintln(out, w)
	}
	return nil
}
