package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/models"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/report"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/timesheet"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/xlsx"
)

var (
	convertRate     float64
	convertDetailed string
	convertOutput   string
	convertForce    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Detailed export into the formatted two-sheet report",
	Long: `Convert a Clockify Detailed export into a formatted Excel workbook.

The Summary sheet is generated by aggregating the Detailed data per project
and per description. When --detailed is not given, the newest export matching
the configured glob in the current directory is used. When the output file
already exists it is kept and a numbered variant is written instead, unless
--force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertRun(cmd)
	},
}

func init() {
	convertCmd.Flags().Float64Var(&convertRate, "rate", 0, "Billable rate per hour (default from config)")
	convertCmd.Flags().StringVar(&convertDetailed, "detailed", "", "Path to the Detailed export (auto-detected if not provided)")
	convertCmd.Flags().StringVar(&convertOutput, "output", "", "Path for the output workbook (derived from the input if not provided)")
	convertCmd.Flags().BoolVar(&convertForce, "force", false, "Overwrite the output file if it exists")
	rootCmd.AddCommand(convertCmd)
}

func convertRun(cmd *cobra.Command) error {
	rate := viper.GetFloat64("rate")
	if cmd.Flags().Changed("rate") {
		rate = convertRate
	}

	detailedFile, err := resolveDetailedFile(convertDetailed, ".")
	if err != nil {
		return err
	}

	entries, err := xlsx.ReadDetailed(detailedFile)
	if err != nil {
		return err
	}
	ui.Info("Loaded %d entries from %s", len(entries), detailedFile)
	ui.VerboseLog("Billable rate: %.2f %s/hour", rate, viper.GetString("currency"))

	rows := timesheet.Aggregate(entries)
	ui.VerboseLog("Summary rows generated: %d", len(rows))

	dateRange := timesheet.ParseDateRange(filepath.Base(detailedFile))

	cfg := report.DefaultConfig()
	cfg.Rate = rate
	cfg.Currency = viper.GetString("currency")

	summary, err := report.BuildSummary(rows, dateRange, cfg)
	if err != nil {
		return err
	}
	detailed, err := report.BuildDetailed(entries, cfg)
	if err != nil {
		return err
	}

	out := convertOutput
	if out == "" {
		out = generatedOutputPath(detailedFile, dateRange)
	}
	if _, err := os.Stat(out); err == nil {
		if convertForce {
			ui.Warning("Overwriting %s", out)
		} else {
			out = uniquePath(out)
			ui.Warning("Output exists, writing %s instead (use --force to overwrite)", out)
		}
	}

	if dryRun {
		ui.DryRunMsg("Would write %s (%d summary rows, %d entries)", out, len(rows), len(entries))
		return nil
	}

	if err := xlsx.WriteReport(out, summary, detailed); err != nil {
		return err
	}
	ui.Success("Report written to %s", out)
	return nil
}

// resolveDetailedFile returns the explicit path when given, otherwise the
// newest file in dir matching the configured export glob.
func resolveDetailedFile(explicit, dir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return findDetailedFile(dir)
}

func findDetailedFile(dir string) (string, error) {
	pattern := viper.GetString("detailed_glob")
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad detailed_glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no Detailed export found matching %s in %s", pattern, dir)
	}

	newest := matches[0]
	newestMod := modTime(newest)
	for _, m := range matches[1:] {
		if mt := modTime(m); mt.After(newestMod) {
			newest = m
			newestMod = mt
		}
	}
	return newest, nil
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// generatedOutputPath derives the output filename from the input's date
// range, next to the input file unless output_dir is configured.
func generatedOutputPath(detailedFile string, dateRange *models.DateRange) string {
	name := "Time_Report_Generated.xlsx"
	if dateRange != nil {
		name = fmt.Sprintf("Time_Report_Generated_%s-%s.xlsx",
			strings.ReplaceAll(dateRange.Start, "/", "_"),
			strings.ReplaceAll(dateRange.End, "/", "_"))
	}

	dir := viper.GetString("output_dir")
	if dir == "" {
		dir = filepath.Dir(detailedFile)
	}
	return filepath.Join(dir, name)
}

// uniquePath appends _1, _2, ... before the extension until the name is free.
func uniquePath(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
