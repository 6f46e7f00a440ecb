package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/menstrualmentor/backend/internal/analysis"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a JSON file of cycle records offline",
	Long: `Run the cycle analytics engine over a JSON array of records
({"date","cycle_length","mood","energy"}) and print the lightweight and
detailed analyses. Reads stdin when --file is "-" or omitted.`,
	RunE: runAnalyze,
}

var (
	analyzeFile string
	analyzeNow  string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "-", "Records file, or - for stdin")
	analyzeCmd.Flags().StringVar(&analyzeNow, "now", "", "Reference date for the phase estimate (YYYY-MM-DD, default today)")
}

// fileRecord accepts calendar dates where analysis.Record needs RFC 3339
type fileRecord struct {
	Date        models.CalendarDate `json:"date"`
	CycleLength int                 `json:"cycle_length"`
	Mood        analysis.Mood       `json:"mood"`
	Energy      analysis.Energy     `json:"energy"`
}

// analyzeReport is the analyze command's output document
type analyzeReport struct {
	TotalRecords int                        `json:"total_records"`
	Analysis     *analysis.CycleAnalysis    `json:"analysis,omitempty"`
	Detailed     *analysis.DetailedAnalysis `json:"detailed,omitempty"`
	Notes        []string                   `json:"notes,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if analyzeFile != "" && analyzeFile != "-" {
		f, err := os.Open(analyzeFile)
		if err != nil {
			return fmt.Errorf("failed to open records file: %w", err)
		}
		defer f.Close()
		in = f
	}

	now := time.Now().UTC()
	if analyzeNow != "" {
		d, err := models.ParseCalendarDate(analyzeNow)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		now = d.Time()
	}

	records, err := readRecords(in)
	if err != nil {
		return err
	}

	report, err := buildReport(records, now)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func readRecords(r io.Reader) ([]analysis.Record, error) {
	var rows []fileRecord
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	records := make([]analysis.Record, len(rows))
	for i, row := range rows {
		records[i] = analysis.Record{
			Date:        row.Date.Time(),
			CycleLength: row.CycleLength,
			Mood:        row.Mood,
			Energy:      row.Energy,
		}
	}
	return records, nil
}

// buildReport runs both analyses. Too few records is reported as a note
// rather than an error so the lightweight view still prints.
func buildReport(records []analysis.Record, now time.Time) (*analyzeReport, error) {
	report := &analyzeReport{TotalRecords: len(records)}

	light, err := analysis.Analyze(records, now)
	switch {
	case err == nil:
		report.Analysis = &light
	case errors.Is(err, analysis.ErrInsufficientData):
		report.Notes = append(report.Notes, err.Error())
	default:
		return nil, err
	}

	detailed, err := analysis.AnalyzeDetailed(records)
	switch {
	case err == nil:
		report.Detailed = &detailed
	case errors.Is(err, analysis.ErrInsufficientData):
		report.Notes = append(report.Notes, err.Error())
	default:
		return nil, err
	}

	return report, nil
}

var riskCmd = &cobra.Command{
	Use:   "risk <red-intensity>",
	Short: "Classify a sampled red intensity (0-255)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		intensity, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid intensity %q: %w", args[0], err)
		}

		assessment := analysis.ClassifyIntensity(intensity)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", assessment.Level, assessment.Analysis)
		return nil
	},
}
