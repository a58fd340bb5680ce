package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"synonym-search/backend/internal/seed"
	"synonym-search/backend/internal/synonym"
)

// NewRootCmd builds the synctl command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "synctl",
		Short:        "Offline tools for synonym seed files",
		Long:         "Validate synonym seed files and query the groups they produce without running the server.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringSlice("seed", nil, "seed file (YAML or JSON); repeat or comma separate for several")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newWordsCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadStore builds an in-memory store from the --seed files
func loadStore(cmd *cobra.Command) (*synonym.Store, int, error) {
	paths, err := cmd.Flags().GetStringSlice("seed")
	if err != nil {
		return nil, 0, err
	}

	store := synonym.NewStore(synonym.WithLogger(zap.NewNop()))
	n, err := seed.Load(cmd.Context(), store, paths)
	if err != nil {
		return nil, n, err
	}
	return store, n, nil
}
