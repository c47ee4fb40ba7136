package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Remove a reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoRoot := mustFindRepo()

		db := mustOpenDB(repoRoot)
		defer db.Close()

		// Confirm the record exists so a typo doesn't report success
		mustGetRecord(db, args[0])

		if err := db.Delete(args[0]); err != nil {
			exitWithError(ExitError, "%v", err)
		}

		if humanOutput {
			fmt.Printf("Removed %s\n", args[0])
		} else {
			outputJSON(StatusResponse{Status: "removed", Key: args[0]})
		}
		return nil
	},
}
