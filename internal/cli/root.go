package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/akshay543210/trade-paste-analytics/internal/config"
	"github.com/akshay543210/trade-paste-analytics/internal/insight"
	"github.com/akshay543210/trade-paste-analytics/internal/llm"
	"github.com/akshay543210/trade-paste-analytics/internal/logging"
	"github.com/akshay543210/trade-paste-analytics/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies. The store and LLM client are
// injected here rather than looked up from ambient scope.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.TradeStore
	LLM    insight.Completer
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize SQLite store
	tradeStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, journal commands will be unavailable")
	} else {
		app.Store = tradeStore
		logger.Debug().Str("path", cfg.Database.Path).Msg("SQLite store initialized")
	}

	// Initialize LLM client if the credential is present. A missing key is
	// only fatal when the insight command is actually invoked.
	if cfg.HasInsightCredential() {
		client, err := llm.NewClient(cfg.Credentials.OpenAI.APIKey, cfg.Insight.Model, cfg.Insight.BaseURL)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize LLM client")
		} else {
			app.LLM = client
			logger.Debug().Str("model", cfg.Insight.Model).Msg("LLM client initialized")
		}
	}

	rootCmd := &cobra.Command{
		Use:   "tradejournal",
		Short: "Trade journal with performance analytics and AI insights",
		Long: `Trade journal is a CLI for logging trades and reviewing performance.

Record trades with instrument, session, setup, risk/reward, and outcome.
View aggregated statistics by session, pair, setup, hour of day, and
risk-reward bucket, or request an AI-generated narrative review.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/trade-journal)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addTradeCommands(rootCmd, app)
	addReportCommand(rootCmd, app)
	addInsightCommand(rootCmd, app)

	return rootCmd
}
