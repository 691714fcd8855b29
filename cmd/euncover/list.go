package main

import (
	"github.com/euncover/euncover/internal/mep"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the selectable MEPs",
	RunE:  runList,
}

// ListResult is the response for the list command.
type ListResult struct {
	Placeholder string   `json:"placeholder"`
	MEPs        []string `json:"meps"`
}

func runList(cmd *cobra.Command, args []string) error {
	if humanOutput {
		for _, name := range mep.Roster {
			outputHuman("%s\n", name)
		}
		return nil
	}
	return outputJSON(ListResult{Placeholder: mep.Placeholder, MEPs: mep.Roster})
}
