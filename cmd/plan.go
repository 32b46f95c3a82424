package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/session"
	"github.com/rmaia/aprovado/internal/syllabus"
	"github.com/rmaia/aprovado/internal/ui/theme"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the study plan",
}

var planImportCmd = &cobra.Command{
	Use:   "import <plan.json>",
	Short: "Import a study plan from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := syllabus.Load(args[0])
		if err != nil {
			return err
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc.Configure(plan.ToSubjects(), plan.ToConfig(), session.Exam{
			Name:           plan.Exam.Name,
			Date:           plan.Exam.Date,
			CutoffScore:    plan.Exam.CutoffScore,
			TotalQuestions: plan.Exam.TotalQuestions,
		})
		if err := saveState(cmd.Context(), st, svc); err != nil {
			return err
		}

		fmt.Println(theme.Title.Render("Plan imported"))
		fmt.Printf("%s %s (%s)\n", theme.Label.Render("Exam:"), plan.Exam.Name, plan.Exam.Date)
		fmt.Printf("%s %d\n", theme.Label.Render("Subjects:"), len(plan.Subjects))
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := svc.State()
		if len(state.Plan) == 0 {
			fmt.Println(theme.Hint.Render("No plan configured. Run 'aprovado plan import <plan.json>'."))
			return nil
		}

		if state.Exam.Name != "" {
			fmt.Println(theme.Title.Render(state.Exam.Name))
			if cd, err := planner.ExamCountdown(state.Exam.Date, time.Now()); err == nil {
				line := fmt.Sprintf("%d days to go (%d weeks)", cd.DaysRemaining, cd.WeeksRemaining)
				if cd.IsUrgent {
					fmt.Println(theme.Warning.Render(line))
				} else {
					fmt.Println(theme.Subtitle.Render(line))
				}
			}
			fmt.Println()
		}

		ratings := state.SubjectRatings()
		for _, sub := range state.PlanSubjects() {
			fmt.Printf("%s  weight %d  %s  %.1fh/cycle  rating %.0f\n",
				theme.Body.Render(sub.Name),
				sub.Weight,
				string(planner.PriorityForWeight(sub.Weight)),
				planner.HoursForWeight(sub.Weight),
				ratings[sub.ID],
			)
			if sub.TotalMinutes > 0 {
				fmt.Println(theme.Hint.Render(fmt.Sprintf("  %dh%02dm studied", sub.TotalMinutes/60, sub.TotalMinutes%60)))
			}
		}
		return nil
	},
}

var planProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Compare this week's study time against the weekly goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("studied-minutes")

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p := planner.Progress(svc.State().Config, minutes)
		fmt.Printf("%s %d / %d minutes (%.0f%%)\n",
			theme.Label.Render("Week:"),
			p.WeeklyActualMinutes, p.WeeklyTargetMinutes,
			p.DeviationPercent+100,
		)
		switch p.Status {
		case planner.StatusCritical, planner.StatusBehind:
			fmt.Println(theme.Incorrect.Render(p.Alert))
		case planner.StatusAhead:
			fmt.Println(theme.Correct.Render(p.Alert))
		default:
			fmt.Println(theme.Correct.Render("On track."))
		}
		return nil
	},
}

func init() {
	planProgressCmd.Flags().Int("studied-minutes", 0, "Minutes studied so far this week")
	planCmd.AddCommand(planImportCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planProgressCmd)
}
