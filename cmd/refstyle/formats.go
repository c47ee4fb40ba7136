package main

import (
	"fmt"

	"github.com/mhoffert/refstyle/internal/markup"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(stylesCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available output formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := markup.Names()
		if humanOutput {
			for _, n := range names {
				fmt.Println(n)
			}
		} else {
			outputJSON(struct {
				Formats []string `json:"formats"`
			}{Formats: names})
		}
		return nil
	},
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List available citation styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		repoRoot := mustFindRepo()
		names := mustLoadStyles(repoRoot).StyleNames()
		if humanOutput {
			for _, n := range names {
				fmt.Println(n)
			}
		} else {
			outputJSON(struct {
				Styles []string `json:"styles"`
			}{Styles: names})
		}
		return nil
	},
}
