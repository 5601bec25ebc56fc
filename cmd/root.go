package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"ai-news-clipper/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	appCfg  config.Config
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ai-news-clipper",
	Short: "AI news clipper",
	Long:  "Collects AI headlines, ranks them by priority and posts a daily digest to Slack.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
}

func initConfig() {
	v := viper.GetViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ai-news-clipper")
		v.AddConfigPath("configs")
	}

	// secrets usually come from the environment
	_ = v.BindEnv("openai.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("slack.webhook_url", "SLACK_WEBHOOK_URL")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing config: %v\n", err)
		os.Exit(1)
	}

	appCfg.FillDefaults()
	setupLogger(appCfg.App.LogLevel)
}

func setupLogger(level string) {
	var l slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}
