package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Muigai-Kiongo/resume-matcher/internal/document"
	"github.com/Muigai-Kiongo/resume-matcher/internal/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Extract skills, experience and education from a resume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("output", "o", "", "write the JSON report to a file instead of stdout")
}

func analyze(cmd *cobra.Command, path string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	pipe, err := buildPipeline(logger, config)
	if err != nil {
		logger.Fatal("building the pipeline", zap.Error(err))
	}

	logger.Info("analyzing resume", zap.String("path", path), zap.String("version", version))

	report := pipe.Run(document.FromFile(path, viper.GetString("ext")))

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal("encoding the report", zap.Error(err))
	}

	output := cmd.Flag("output").Value.String()
	if output == "" {
		fmt.Println(string(out))
		return
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		logger.Fatal("writing the report", zap.Error(err))
	}

	logger.Info("report written", zap.String("path", output))
}
