package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/templui/goalboard/internal/app"
	"github.com/templui/goalboard/internal/config"
	"github.com/templui/goalboard/internal/logger"
	"github.com/templui/goalboard/internal/service"
	"github.com/templui/goalboard/internal/stats"
)

var seedGoalTexts = []string{
	"아침 7시 기상", "물 2L 마시기", "독서 30분", "러닝 3km",
	"영양제 챙겨먹기", "일기 쓰기", "스트레칭 10분", "뉴스 읽기",
}

func SeedCmd() *cobra.Command {
	var (
		users int
		base  int
		days  int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with demo members, history and today's goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if users < 1 || base < 0 || base > 100 || days < 1 {
				return fmt.Errorf("need --users >= 1, --base in 0..100 and --days >= 1")
			}

			cfg := config.Load()
			logger.Init(logger.Options{AppName: cfg.AppName, Environment: cfg.AppEnv, Development: true})

			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
			for i := 1; i <= users; i++ {
				err := seedMember(a, rng, i, base, days)
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d members with %d days of history\n", users, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&users, "users", 5, "number of demo members")
	cmd.Flags().IntVar(&base, "base", 50, "typical daily progress")
	cmd.Flags().IntVar(&days, "days", 365, "days of history, today included")
	return cmd
}

func seedMember(a *app.App, rng *rand.Rand, n, base, days int) error {
	user, err := a.AuthService.AuthenticateKakao(&service.KakaoProfile{
		ID:       "seed-" + strconv.Itoa(n),
		Nickname: "Member " + strconv.Itoa(n),
	})
	if err != nil {
		return err
	}

	for date, progress := range mockHistory(rng, a.Clock.Now(), base, days) {
		_, err := a.HistoryService.Save(user.ID, date, nil, progress)
		if err != nil {
			return fmt.Errorf("seed history %s: %w", date, err)
		}
	}

	for _, goal := range mockGoals(rng) {
		created, err := a.GoalService.Add(user.ID, goal.text)
		if err != nil {
			return err
		}
		if goal.completed {
			_, err = a.GoalService.Toggle(user.ID, created.ID)
			if err != nil {
				return err
			}
		}
	}

	slog.Info("seeded member", "user_id", user.ID)
	return nil
}

// mockHistory draws days of progress ending at today: base ±20, with a 20%
// chance of a missed day and a 10% chance of a perfect one.
func mockHistory(rng *rand.Rand, today time.Time, base, days int) stats.History {
	h := make(stats.History, days)
	for i := range days {
		progress := float64(base) + rng.Float64()*40 - 20
		progress = max(0, min(100, progress))

		if rng.Float64() < 0.2 {
			progress = 0
		}
		if rng.Float64() < 0.1 {
			progress = 100
		}

		h[stats.DateKey(today.AddDate(0, 0, -i))] = int(progress + 0.5)
	}
	return h
}

type mockGoal struct {
	text      string
	completed bool
}

// mockGoals picks three to five distinct goals, each done with 70% chance.
func mockGoals(rng *rand.Rand) []mockGoal {
	texts := append([]string(nil), seedGoalTexts...)
	rng.Shuffle(len(texts), func(i, j int) { texts[i], texts[j] = texts[j], texts[i] })

	goals := make([]mockGoal, 3+rng.IntN(3))
	for i := range goals {
		goals[i] = mockGoal{text: texts[i], completed: rng.Float64() < 0.7}
	}
	return goals
}
