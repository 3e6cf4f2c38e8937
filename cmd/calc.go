package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/ftracker/internal/training"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc CODE VALUE...",
	Short: "Print the report for a single package given on the command line",
	Example: `  ftracker calc RUN 15000 1 75
  ftracker calc WLK 9000 1 75 180
  ftracker calc SWM 720 1 80 25 40`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := args[0]
		values := make([]float64, 0, len(args)-1)
		for _, arg := range args[1:] {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", training.ErrInvalidInput, arg)
			}
			values = append(values, v)
		}

		s, err := training.Build(code, values)
		if err != nil {
			return err
		}

		printReport(cmd.OutOrStdout(), training.Info(s))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
