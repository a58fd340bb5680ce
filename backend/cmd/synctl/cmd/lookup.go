package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"synonym-search/backend/internal/synonym"
)

func newLookupCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Print the synonyms of a word from the seed files",
		Args:  cobra.ExactArgs(1),
		RunE:  runLookup,
	}
	c.Flags().BoolP("transitive", "t", true, "include synonyms reachable through other synonyms")
	return c
}

func runLookup(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore(cmd)
	if err != nil {
		return err
	}

	transitive, _ := cmd.Flags().GetBool("transitive")

	var group *synonym.Group
	if transitive {
		group, err = store.ResolveTransitive(args[0])
	} else {
		group, err = store.Lookup(args[0])
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if group.IsEmpty() {
		fmt.Fprintf(out, "%s: no synonyms\n", group.Word())
		return nil
	}
	fmt.Fprintf(out, "%s: %s\n", group.Word(), strings.Join(group.Synonyms(), ", "))
	return nil
}
