package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/primeirocv/resume-builder/internal/score"
	"github.com/primeirocv/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score resume sections from a JSON file",
	Long:  "Read resume sections from a JSON file and print the 0-100 score, the per-section breakdown, and improvement suggestions. Useful for checking a resume without starting the server.",
	RunE:  runScore,
}

var (
	scoreInputFile string
	scoreAsJSON    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to resume sections JSON file (required)")
	scoreCmd.Flags().BoolVar(&scoreAsJSON, "json", false, "Print the full score report as JSON")
	_ = scoreCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	return scoreFile(scoreInputFile, scoreAsJSON, os.Stdout)
}

// scoreReport pairs the engine output with its feedback band for printing.
type scoreReport struct {
	types.ScoreDetails
	Classification score.Classification `json:"classification"`
}

func scoreFile(inputPath string, asJSON bool, out io.Writer) error {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var sections types.ResumeSections
	if err := json.Unmarshal(content, &sections); err != nil {
		return fmt.Errorf("failed to parse resume sections: %w", err)
	}

	details := score.CalculateResumeScore(sections)
	report := scoreReport{
		ScoreDetails:   details,
		Classification: score.Classify(details.Total),
	}

	if asJSON {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintf(out, "%s\n", jsonBytes)
		return nil
	}

	_, _ = fmt.Fprintf(out, "Score: %d/100 (%s)\n", report.Total, report.Classification.Label)
	_, _ = fmt.Fprintf(out, "%s\n\n", report.Classification.Description)
	_, _ = fmt.Fprintf(out, "Breakdown:\n")
	_, _ = fmt.Fprintf(out, "  Personal data:   %.1f\n", report.Breakdown.PersonalData)
	_, _ = fmt.Fprintf(out, "  Objective:       %.1f\n", report.Breakdown.Objective)
	_, _ = fmt.Fprintf(out, "  Education:       %.1f\n", report.Breakdown.Education)
	_, _ = fmt.Fprintf(out, "  Experience:      %.1f\n", report.Breakdown.Experience)
	_, _ = fmt.Fprintf(out, "  Skills:          %.1f\n", report.Breakdown.Skills)
	_, _ = fmt.Fprintf(out, "  Additional info: %.1f\n", report.Breakdown.AdditionalInfo)

	if len(report.Suggestions) > 0 {
		_, _ = fmt.Fprintf(out, "\nSuggestions:\n")
		for _, suggestion := range report.Suggestions {
			_, _ = fmt.Fprintf(out, "  - %s\n", suggestion)
		}
	}

	return nil
}
