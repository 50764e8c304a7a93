package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Muigai-Kiongo/resume-matcher/internal/document"
	"github.com/Muigai-Kiongo/resume-matcher/internal/pipeline"
	"github.com/Muigai-Kiongo/resume-matcher/internal/resume"
)

const (
	app = "resume-matcher"
)

type Config struct {
	Vocabulary      []string   `mapstructure:"vocabulary"`
	VocabularyFile  string     `mapstructure:"vocabulary-file"`
	ExperienceLimit int        `mapstructure:"experience-limit"`
	Job             *JobConfig `mapstructure:"job"`
}

type JobConfig struct {
	Title        string   `mapstructure:"title"`
	Requirements []string `mapstructure:"requirements"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-matcher extracts skills, experience and education from resumes and scores them against job requirements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("vocabulary-file", "RESUME_MATCHER_VOCABULARY_FILE"); err != nil {
		log.Fatalf("binding RESUME_MATCHER_VOCABULARY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("ext", "e", "", "extension hint for resumes with a misleading or absent filename suffix")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("ext", rootCmd.PersistentFlags().Lookup("ext"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			// The config file is optional: defaults cover everything.
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// buildPipeline assembles the extraction pipeline from the configuration.
func buildPipeline(logger *zap.Logger, config *Config) (*pipeline.Pipeline, error) {
	var vocabulary []string
	if config != nil && (config.VocabularyFile != "" || len(config.Vocabulary) > 0) {
		loaded, err := resume.LoadVocabulary(resume.VocabularySource{
			Name:   "skill vocabulary",
			Skills: config.Vocabulary,
			File:   config.VocabularyFile,
		})
		if err != nil {
			return nil, err
		}
		vocabulary = loaded
	}

	limit := 0
	if config != nil {
		limit = config.ExperienceLimit
	}

	parser := resume.NewParser(logger, nil, vocabulary, limit)

	return pipeline.New(logger, document.New(logger), parser), nil
}
