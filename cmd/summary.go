package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/clock"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/models"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/output"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/timesheet"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/xlsx"
)

var (
	summaryFormat   string
	summaryDetailed string
	summaryRate     float64
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the aggregated summary without writing a file",
	Long:  "Aggregate a Detailed export and print the summary to the terminal in various formats.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return summaryRun(cmd)
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "table", "Output format: table, json, csv, markdown, yaml")
	summaryCmd.Flags().StringVar(&summaryDetailed, "detailed", "", "Path to the Detailed export (auto-detected if not provided)")
	summaryCmd.Flags().Float64Var(&summaryRate, "rate", 0, "Billable rate per hour (default from config)")
	rootCmd.AddCommand(summaryCmd)
}

// summaryDocument is the machine-readable shape of the aggregated summary.
type summaryDocument struct {
	Rows       []models.SummaryRow
	TotalHours float64
	TotalClock string
}

func summaryRun(cmd *cobra.Command) error {
	rate := viper.GetFloat64("rate")
	if cmd.Flags().Changed("rate") {
		rate = summaryRate
	}

	detailedFile, err := resolveDetailedFile(summaryDetailed, ".")
	if err != nil {
		return err
	}
	entries, err := xlsx.ReadDetailed(detailedFile)
	if err != nil {
		return err
	}

	rows := timesheet.Aggregate(entries)
	total := timesheet.GrandTotal(rows)
	doc := summaryDocument{
		Rows:       rows,
		TotalHours: total,
		TotalClock: clock.FormatClock(total),
	}

	switch summaryFormat {
	case "table":
		return renderSummaryTable(ui, doc, rate, viper.GetString("currency"))
	case "json":
		enc := json.NewEncoder(ui.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "csv":
		return renderSummaryCSV(ui.Out, doc)
	case "markdown":
		return renderSummaryMarkdown(ui.Out, doc)
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = ui.Out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format: %s (use: table, json, csv, markdown, yaml)", summaryFormat)
	}
}

func renderSummaryTable(u *output.UI, doc summaryDocument, rate float64, currency string) error {
	table := u.Table([]string{"Project", "Description", "Time (h)", "Time (decimal)", fmt.Sprintf("Amount (%s)", currency)})
	for _, r := range doc.Rows {
		amount := fmt.Sprintf("%.2f", r.Hours*rate)
		if r.Kind == models.ProjectTotal {
			table.Append([]string{output.Yellow(r.Label), "", r.Clock, fmt.Sprintf("%.2f", r.Hours), amount})
		} else {
			table.Append([]string{"", r.Label, r.Clock, fmt.Sprintf("%.2f", r.Hours), amount})
		}
	}
	table.Append([]string{output.Green("Total"), "", doc.TotalClock,
		fmt.Sprintf("%.2f", doc.TotalHours), fmt.Sprintf("%.2f", doc.TotalHours*rate)})
	return table.Render()
}

func renderSummaryCSV(out io.Writer, doc summaryDocument) error {
	w := csv.NewWriter(out)
	w.Write([]string{"Kind", "Label", "Time (h)", "Time (decimal)"})
	for _, r := range doc.Rows {
		w.Write([]string{string(r.Kind), r.Label, r.Clock, fmt.Sprintf("%.4f", r.Hours)})
	}
	w.Write([]string{"total", "Total", doc.TotalClock, fmt.Sprintf("%.4f", doc.TotalHours)})
	w.Flush()
	return w.Error()
}

func renderSummaryMarkdown(out io.Writer, doc summaryDocument) error {
	fmt.Fprintln(out, "# Summary report")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "| Project | Description | Time (h) | Time (decimal) |")
	fmt.Fprintln(out, "|---------|-------------|----------|----------------|")
	for _, r := range doc.Rows {
		if r.Kind == models.ProjectTotal {
			fmt.Fprintf(out, "| **%s** | | %s | %.2f |\n", r.Label, r.Clock, r.Hours)
		} else {
			fmt.Fprintf(out, "| | %s | %s | %.2f |\n", r.Label, r.Clock, r.Hours)
		}
	}
	fmt.Fprintf(out, "| **Total** | | %s | %.2f |\n", doc.TotalClock, doc.TotalHours)
	return nil
}
