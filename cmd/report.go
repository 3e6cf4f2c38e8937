package cmd

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/misterclayt0n/ftracker/internal/models"
	"github.com/misterclayt0n/ftracker/internal/training"
	"github.com/misterclayt0n/ftracker/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var reportTOML bool

// samplePackages are used when no packages file is given.
var samplePackages = []models.Package{
	{Code: training.CodeSwimming, Values: []float64{720, 1, 80, 25, 40}},
	{Code: training.CodeRunning, Values: []float64{15000, 1, 75}},
	{Code: training.CodeWalking, Values: []float64{9000, 1, 75, 180}},
}

type reportDump struct {
	Run     string            `toml:"run"`
	Reports []training.Report `toml:"report"`
}

var reportCmd = &cobra.Command{
	Use:   "report [packages-file]",
	Short: "Print a report for every package, in input order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Input.Packages
		if len(args) == 1 {
			path = args[0]
		}

		pkgs := samplePackages
		if path != "" {
			var err error
			pkgs, err = utils.ParsePackagesFromTOML(path)
			if err != nil {
				return fmt.Errorf("Failed to read packages: %w", err)
			}
		}

		runID := uuid.NewString()
		logger := log.With().Str("run", runID).Logger()
		logger.Debug().Str("file", path).Int("packages", len(pkgs)).Msg("report")

		var reports []training.Report
		failed := 0
		for i, pkg := range pkgs {
			s, err := training.Build(pkg.Code, pkg.Values)
			if err != nil {
				failed++
				logger.Error().Err(err).Int("package", i+1).Str("code", pkg.Code).Msg("skipping package")
				continue
			}
			reports = append(reports, training.Info(s))
		}

		out := cmd.OutOrStdout()
		if reportTOML {
			if err := toml.NewEncoder(out).Encode(reportDump{Run: runID, Reports: reports}); err != nil {
				return fmt.Errorf("Failed to encode reports: %w", err)
			}
		} else {
			for _, r := range reports {
				printReport(out, r)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d packages could not be processed", failed, len(pkgs))
		}
		return nil
	},
}

// printReport writes the report line with the workout label highlighted.
func printReport(w io.Writer, r training.Report) {
	label := color.New(color.FgCyan, color.Bold).SprintFunc()
	r.Type = label(r.Type)
	fmt.Fprintln(w, r.Message())
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportTOML, "toml", false, "Write the reports as a TOML document")
}
