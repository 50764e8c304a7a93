package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Muigai-Kiongo/resume-matcher/internal/document"
	"github.com/Muigai-Kiongo/resume-matcher/internal/logger"
	"github.com/Muigai-Kiongo/resume-matcher/internal/pipeline"
)

const (
	PromptShowReport   = "Show the full report"
	PromptReportToFile = "Dump the report to a file"
	PromptDone         = "Done"

	defaultReportFile = "match-report.json"
)

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptReportToFile, PromptDone},
}

var matchCmd = &cobra.Command{
	Use:   "match <resume-file>",
	Short: "Score a resume against job requirements",
	Run: func(cmd *cobra.Command, args []string) {
		match(cmd, args[0])
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("requirements", "r", "", "comma- or semicolon-separated job requirements, overriding the config")
	matchCmd.Flags().BoolP("auto-approve", "y", false, "print the summary and exit without prompting")
	matchCmd.Flags().String("report-file", defaultReportFile, "path used when dumping the report to a file")
}

// matchResult is the JSON shape emitted by the match command: the pipeline
// report plus the score.
type matchResult struct {
	*pipeline.Report
	JobTitle string  `json:"job_title,omitempty"`
	Score    float64 `json:"score"`
}

func match(cmd *cobra.Command, path string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// The scorer accepts both shapes directly: a separated string from the
	// flag or the string list from the config.
	var requirements any
	jobTitle := ""
	switch {
	case cmd.Flag("requirements").Value.String() != "":
		requirements = cmd.Flag("requirements").Value.String()
	case config != nil && config.Job != nil && len(config.Job.Requirements) > 0:
		requirements = config.Job.Requirements
		jobTitle = config.Job.Title
	default:
		logger.Fatal("job requirements are required",
			zap.String("hint", "set job.requirements in the configuration file or pass --requirements"),
		)
	}

	pipe, err := buildPipeline(logger, config)
	if err != nil {
		logger.Fatal("building the pipeline", zap.Error(err))
	}

	report := pipe.Run(document.FromFile(path, viper.GetString("ext")))
	score := pipe.Match(report, requirements)

	result := &matchResult{Report: report, JobTitle: jobTitle, Score: score}

	logger.Info("match summary",
		zap.String("resume", report.Source),
		zap.Float64("score", score),
		zap.Strings("skills", report.Skills),
		zap.Int("experience_entries", len(report.Experience)),
		zap.Bool("education_found", report.Education != ""),
	)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		switch action {
		case PromptShowReport:
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				logger.Fatal("encoding the report", zap.Error(err))
			}
			fmt.Println(string(out))
		case PromptReportToFile:
			reportFile := cmd.Flag("report-file").Value.String()
			if err := dumpResult(result, reportFile); err != nil {
				logger.Fatal("dumping the report", zap.Error(err))
			}
			logger.Info("report written", zap.String("path", reportFile))
		case PromptDone:
			return
		}
	}
}

func dumpResult(result *matchResult, path string) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding the report: %w", err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return nil
}
