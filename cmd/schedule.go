package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/ui/theme"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate the study schedule for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if d, _ := cmd.Flags().GetString("date"); d != "" {
			parsed, err := time.Parse("2006-01-02", d)
			if err != nil {
				return fmt.Errorf("%w: %q", planner.ErrInvalidDate, d)
			}
			date = parsed
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := svc.State()
		sched, err := planner.Generate(state.PlanSubjects(), state.Config, date, state.SubjectRatings())
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(sched.Date))
		if sched.IsRestDay {
			fmt.Println(theme.Hint.Render("Rest day. No blocks scheduled."))
			return nil
		}

		for _, b := range sched.Blocks {
			fmt.Printf("%s-%s  %-10s %s\n",
				b.StartTime, b.EndTime,
				theme.Hint.Render(string(b.Kind)),
				theme.Body.Render(b.SubjectName),
			)
		}
		fmt.Println()
		fmt.Println(theme.Subtitle.Render(planner.FormatDailyStatus(sched)))
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest which subject to study next",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sub, err := svc.SuggestNext(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", theme.Label.Render("Study next:"), theme.Title.Render(sub.Name))
		if sub.LastStudied.IsZero() {
			fmt.Println(theme.Hint.Render("Never studied yet."))
		} else {
			fmt.Println(theme.Hint.Render("Last studied " + sub.LastStudied.Format("2006-01-02")))
		}
		return nil
	},
}

var studyCmd = &cobra.Command{
	Use:   "study <subject-id>",
	Short: "Log a completed study block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.RecordStudyBlock(args[0], minutes); err != nil {
			return err
		}
		if err := saveState(cmd.Context(), st, svc); err != nil {
			return err
		}

		sub := svc.State().Plan[args[0]]
		fmt.Println(theme.Correct.Render(fmt.Sprintf("Logged %d minutes on %s", minutes, sub.Name)))
		fmt.Println(theme.Hint.Render(fmt.Sprintf("Total: %dh%02dm", sub.TotalMinutes/60, sub.TotalMinutes%60)))
		return nil
	},
}

func init() {
	scheduleCmd.Flags().String("date", "", "Day to schedule (YYYY-MM-DD, default today)")
	studyCmd.Flags().Int("minutes", 50, "Minutes studied")
}
