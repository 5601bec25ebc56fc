package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"ai-news-clipper/internal/clipper"
	"ai-news-clipper/internal/digest"

	"github.com/spf13/cobra"
)

var (
	clipDryRun bool
	clipJSON   bool
)

// clipCmd runs the pipeline once and prints the outcome.
var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Run one clipping pass and deliver it to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		c, err := clipper.FromConfig(&cfg, nil)
		if err != nil {
			return err
		}
		c.DryRun = clipDryRun

		res, err := c.Run(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if clipJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		if !res.Success {
			fmt.Fprintln(out, failureStyle.Render(res.Message))
			return nil
		}
		report, err := digest.Render(digest.Build(cfg.Slack.Title, res.Ranked, nil, time.Now().In(c.Location)))
		if err != nil {
			return err
		}
		fmt.Fprint(out, report)
		fmt.Fprintf(out, "\n%s\n%s\n\n%s\n%s\n\n%s %s\n",
			sectionStyle.Render("Summary"), res.Summary,
			sectionStyle.Render("Trend"), res.TrendSummary,
			sectionStyle.Render("Slack:"), deliveryStatus(res.SlackSent))
		return nil
	},
}

func init() {
	clipCmd.Flags().BoolVar(&clipDryRun, "dry-run", false, "summarize but do not post to Slack")
	clipCmd.Flags().BoolVar(&clipJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(clipCmd)
}
