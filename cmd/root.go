package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/bimatch/bimatch/internal/assistant"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "bimatch"
)

type Config struct {
	DataFile  string           `mapstructure:"data-file"`
	Results   *ResultsConfig   `mapstructure:"results"`
	Assistant *AssistantConfig `mapstructure:"assistant"`
	AI        *AIConfig        `mapstructure:"ai"`
}

type ResultsConfig struct {
	Max int `mapstructure:"max"`
}

type AssistantConfig struct {
	ThinkingDelay time.Duration         `mapstructure:"thinking-delay"`
	Vocabulary    *assistant.Vocabulary `mapstructure:"vocabulary"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "bimatch is a simple cli for exploring BIM jobs, talent and service providers with a natural language assistant",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("data-file", "BIMATCH_DATA_FILE"); err != nil {
		log.Fatalf("binding BIMATCH_DATA_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is bimatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: every setting has a built-in default.
	// A present but unparseable file is still fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}
