package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ftracker/internal/training"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the known workout codes and the values each one expects",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		for _, k := range training.Codes() {
			fmt.Fprintf(out, "%s  %s %s\n", yellow(k.Code), cyan(fmt.Sprintf("%-14s", k.Label)), strings.Join(k.Fields, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
