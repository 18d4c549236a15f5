package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/templui/goalboard/internal/app"
	"github.com/templui/goalboard/internal/config"
	"github.com/templui/goalboard/internal/logger"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/service"
	"github.com/templui/goalboard/internal/stats"
)

func LeaderboardCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the member ranking for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := stats.ParsePeriod(period)
			if err != nil {
				return err
			}

			cfg := config.Load()
			logger.Init(logger.Options{AppName: cfg.AppName, Environment: cfg.AppEnv, Development: true})

			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			members, err := a.LeaderboardService.Rank(context.Background(), p)
			if err != nil {
				return err
			}

			return printLeaderboard(cmd, members)
		},
	}

	cmd.Flags().StringVar(&period, "period", string(stats.PeriodDaily), "daily, weekly, monthly, yearly or penalty")
	return cmd
}

func printLeaderboard(cmd *cobra.Command, members []model.Member) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tTODAY\tWEEK\tMONTH\tYEAR\tPENALTY")
	for i, m := range members {
		fmt.Fprintf(w, "%d\t%s\t%d%%\t%d%%\t%d%%\t%d%%\t%s\n",
			i+1, m.Name, m.Progress, m.Stats.Weekly, m.Stats.Monthly, m.Stats.Yearly, service.FormatPenalty(m.Stats.Penalty))
	}
	return w.Flush()
}
