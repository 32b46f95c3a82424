package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show deck statistics and the upcoming review load",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := svc.State()
		deck := svc.Stats()

		fmt.Println(theme.Title.Render("Deck"))
		fmt.Printf("%s %d   %s %d   %s %d new / %d learning / %d mature\n",
			theme.Label.Render("Cards:"), deck.Total,
			theme.Label.Render("Due now:"), deck.DueNow,
			theme.Label.Render("Stages:"), deck.New, deck.Learning, deck.Mature,
		)
		if deck.Total > 0 {
			fmt.Printf("%s %.2f   %s %.0f%%\n",
				theme.Label.Render("Avg ease:"), deck.AverageEase,
				theme.Label.Render("Retention:"), deck.RetentionRate,
			)
		}

		fmt.Println()
		fmt.Printf("%s %.0f (%s), %d attempt(s)\n",
			theme.Label.Render("Rating:"),
			state.Overall.Value, state.Overall.Band(), state.Overall.Matches,
		)

		if state.Exam.Date != "" {
			if cd, err := planner.ExamCountdown(state.Exam.Date, time.Now()); err == nil {
				line := fmt.Sprintf("%d day(s) until %s", cd.DaysRemaining, state.Exam.Name)
				if cd.IsUrgent {
					fmt.Println(theme.Warning.Render(line))
				} else {
					fmt.Println(theme.Subtitle.Render(line))
				}
			}
		}

		if days > 0 {
			fmt.Println()
			fmt.Println(theme.Subtitle.Render("Upcoming reviews"))
			for _, day := range svc.Forecast(days) {
				bar := ""
				for i := 0; i < day.Count; i++ {
					bar += "█"
				}
				fmt.Printf("%s %3d %s\n", day.Date, day.Count, theme.Correct.Render(bar))
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("days", 7, "Days of review forecast to show (0 = none)")
}
