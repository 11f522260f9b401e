package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bimatch/bimatch/internal/ai"
	"github.com/bimatch/bimatch/internal/ai/gemini"
	"github.com/bimatch/bimatch/internal/assistant"
	"github.com/bimatch/bimatch/internal/logger"
	"github.com/bimatch/bimatch/internal/marketplace"
	"github.com/bimatch/bimatch/internal/secrets"
	"github.com/bimatch/bimatch/internal/utils"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptNewSearch       = "New search"
	PromptDumpResults     = "Dump results to file"
	PromptReportByCompany = "Report by company"
	PromptExit            = "Exit"

	defaultThinkingDelay = 1500 * time.Millisecond
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptNewSearch, PromptDumpResults, PromptReportByCompany, PromptExit},
}

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask the assistant for jobs, talent or service providers",
	Run: func(cmd *cobra.Command, args []string) {
		ask(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().BoolP("interactive", "i", false, "stay in an interactive loop after showing results")
	askCmd.Flags().Bool("voice", false, "capture the query by voice instead of typing")
}

// ask is the main command for the cli.
func ask(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the bimatch assistant", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	store, err := openStore(config)
	if err != nil {
		logger.Fatal("loading the marketplace snapshot", zap.Error(err))
	}

	logger.Info("marketplace snapshot loaded",
		zap.Int("jobs", store.Jobs().Len()),
		zap.Int("profiles", store.Profiles().Len()),
		zap.Int("companies", store.Companies().Len()),
	)

	if cmd.Flag("voice").Value.String() == "true" {
		logger.Warn("voice capture unavailable",
			zap.Error(assistant.ErrSpeechUnsupported),
			zap.String("hint", "type the query instead"),
		)
	}

	resolver := prepareResolver(ctx, config, store, logger)

	query := strings.TrimSpace(strings.Join(args, " "))
	interactive := cmd.Flag("interactive").Value.String() == "true" || query == ""

	for {
		if query == "" {
			query, err = promptQuery()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		result, err := resolve(ctx, resolver, config, query, logger)
		if err != nil {
			if !interactive {
				logger.Fatal("failed to process your request", zap.Error(err))
			}
			logger.Error("failed to process your request, please try again", zap.Error(err))
			query = ""
			continue
		}

		if !interactive {
			return
		}

		if err := handleActions(result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		query = ""
	}
}

func resolve(ctx context.Context, resolver *assistant.Resolver, config *Config, query string, log *zap.Logger) (*assistant.Result, error) {
	// Cosmetic delay so the assistant does not answer before the prompt
	// finishes rendering. Resolution itself is synchronous.
	if delay := thinkingDelay(config); delay > 0 {
		log.Info("processing your request", logger.QueryFields(query, "")...)
		_ = utils.WaitFor(ctx, delay)
	}

	result, err := resolver.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	if result.Empty {
		log.Info("nothing to search", zap.String("reason", "empty query"))
		return result, nil
	}

	log.Info("search finished",
		append(
			logger.QueryFields(result.Query, string(result.Intent.Kind)),
			zap.Int(logger.FieldResults, result.Len()),
			zap.Bool("truncated", result.Truncated),
		)...,
	)

	printResult(result)
	return result, nil
}

func handleActions(result *assistant.Result, logger *zap.Logger) error {
	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptNewSearch:
			return nil
		case PromptExit:
			logger.Info("exiting", zap.String("reason", "got exit from prompt"))
			return errExit
		case PromptDumpResults:
			if result == nil || result.Len() == 0 {
				logger.Info("nothing to dump")
				continue
			}
			filename, err := result.DumpToTmpFile()
			if err != nil {
				return fmt.Errorf("dump results to file: %w", err)
			}
			logger.Info("dumping results to file", zap.String("filename", filename))
		case PromptReportByCompany:
			reportByCompany(result, logger)
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func promptQuery() (string, error) {
	prompt := promptui.Prompt{
		Label: "Ask about BIM jobs, talent or services",
	}

	query, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(query), nil
}

func printResult(result *assistant.Result) {
	if result.Len() == 0 {
		fmt.Println("No results found. Try adjusting your search or browse the full listings.")
		return
	}

	fmt.Printf("Found %d results for %q:\n", result.Len(), result.Query)
	for _, record := range result.Records {
		fmt.Println(formatRecord(record))
	}

	if result.Truncated {
		fmt.Println("More results may exist beyond this page.")
	}
}

func formatRecord(record marketplace.Record) string {
	switch r := record.(type) {
	case *marketplace.Job:
		return fmt.Sprintf("  [job] %s at %s / %s / %s / %s", r.Title, r.Company, r.Location, r.Type, r.Salary)
	case *marketplace.Profile:
		return fmt.Sprintf("  [talent] %s, %s / %s / %d yrs / rating %.1f / %s",
			r.Name, r.Role, r.Location, r.YearsExperience, r.Rating, strings.Join(r.Skills, ", "))
	case *marketplace.Company:
		return fmt.Sprintf("  [company] %s / %s / rating %.1f (%d+ projects) / %s",
			r.Name, r.Location, r.Rating, r.ProjectsCompleted, strings.Join(r.Services, ", "))
	default:
		return fmt.Sprintf("  %v", record)
	}
}

func reportByCompany(result *assistant.Result, logger *zap.Logger) {
	if result == nil || result.Intent.Kind != assistant.IntentJobs {
		logger.Info("report by company is available for job results only")
		return
	}

	jobs := &marketplace.Jobs{}
	for _, record := range result.Records {
		if job, ok := record.(*marketplace.Job); ok {
			jobs.Items = append(jobs.Items, job)
		}
	}

	pretty, _ := json.MarshalIndent(jobs.ReportByCompany(), "", "  ")
	logger.Info(string(pretty), zap.Int("jobs count", jobs.Len()))
}

func openStore(config *Config) (*marketplace.Store, error) {
	path := strings.TrimSpace(config.DataFile)
	if path == "" {
		path = strings.TrimSpace(viper.GetString("data-file"))
	}

	if path != "" {
		return marketplace.NewStoreFromFile(path)
	}

	return marketplace.NewStore()
}

func thinkingDelay(config *Config) time.Duration {
	if config.Assistant != nil && config.Assistant.ThinkingDelay > 0 {
		return config.Assistant.ThinkingDelay
	}
	return defaultThinkingDelay
}

func prepareResolver(ctx context.Context, config *Config, store *marketplace.Store, logger *zap.Logger) *assistant.Resolver {
	var vocab *assistant.Vocabulary
	if config.Assistant != nil {
		vocab = config.Assistant.Vocabulary
	}

	maxResults := 0
	if config.Results != nil {
		maxResults = config.Results.Max
	}

	classifier, err := prepareClassifier(ctx, config.AI, vocab, logger)
	if err != nil {
		logger.Warn("skipping model classifier", zap.Error(err))
	}

	return assistant.New(
		&assistant.Config{MaxResults: maxResults, Vocabulary: vocab},
		&assistant.Deps{Store: store, Classifier: classifier, Logger: logger},
	)
}

func prepareClassifier(ctx context.Context, cfg *AIConfig, vocab *assistant.Vocabulary, log *zap.Logger) (ai.Classifier, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when the ai classifier is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key or ai.gemini.api-key-file)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	clsLogger := logger.WithFields(log,
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	if vocab == nil {
		vocab = assistant.DefaultVocabulary()
	}

	return gemini.NewClassifier(generator, clsLogger, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength, vocab), nil
}
