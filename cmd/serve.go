package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ai-news-clipper/internal/clipper"
	"ai-news-clipper/internal/redisclient"
	"ai-news-clipper/internal/server"
	"ai-news-clipper/internal/storage"
	"ai-news-clipper/worker"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the daily scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		slog.Info("serve: credentials",
			"openai_api_key", strings.TrimSpace(cfg.OpenAI.APIKey) != "",
			"slack_webhook_url", strings.TrimSpace(cfg.Slack.WebhookURL) != "")

		var guard clipper.Guard
		if strings.TrimSpace(cfg.Redis.Addr) != "" {
			rdb := redisclient.New(cfg.Redis)
			defer rdb.Close()
			guard = storage.NewRedisStore(rdb)
			slog.Info("serve: delivery guard enabled", "redis", cfg.Redis.Addr, "channel", cfg.Schedule.Channel)
		}

		c, err := clipper.FromConfig(&cfg, guard)
		if err != nil {
			return err
		}

		ws := []worker.Worker{
			&worker.HTTPServer{Echo: server.New(c), Addr: cfg.Server.Addr, ShutdownTimeout: 10 * time.Second},
		}
		if cfg.Schedule.Enabled {
			if _, _, err := worker.ParseClock(cfg.Schedule.Time); err != nil {
				return fmt.Errorf("schedule: %w", err)
			}
			slog.Info("serve: daily schedule enabled", "time", cfg.Schedule.Time, "timezone", cfg.Schedule.Timezone)
			ws = append(ws, &worker.DailyClipper{Runner: c, At: cfg.Schedule.Time, Location: c.Location})
		}

		// Signal handling for systemd
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return worker.NewManager(ws...).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
