package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmaia/aprovado/internal/elo"
	"github.com/rmaia/aprovado/internal/session"
	"github.com/rmaia/aprovado/internal/srs"
	"github.com/rmaia/aprovado/internal/ui/theme"
)

var answerCmd = &cobra.Command{
	Use:   "answer <item-id>",
	Short: "Record an answered question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		effort, _ := cmd.Flags().GetString("effort")
		grade, _ := cmd.Flags().GetInt("grade")
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		rating, _ := cmd.Flags().GetFloat64("rating")

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if rating == 0 {
			rating = elo.SeedRating(elo.Difficulty(difficulty))
		}

		ans := session.Answer{
			ItemID:     args[0],
			Subject:    subject,
			Topic:      topic,
			Correct:    correct,
			Effort:     srs.Effort(effort),
			ItemRating: rating,
		}
		if cmd.Flags().Changed("grade") {
			g := srs.Quality(grade)
			ans.Grade = &g
		}

		res, err := svc.RecordAnswer(cmd.Context(), ans)
		if err != nil {
			return err
		}
		if err := saveState(cmd.Context(), st, svc); err != nil {
			return err
		}

		if res.Quality.Pass() {
			fmt.Println(theme.Correct.Render("Recorded: pass"))
		} else {
			fmt.Println(theme.Incorrect.Render("Recorded: fail"))
		}
		fmt.Printf("%s %d/5   %s %d day(s)   %s %s\n",
			theme.Label.Render("Quality:"), res.Quality,
			theme.Label.Render("Interval:"), res.Card.Interval,
			theme.Label.Render("Next review:"), res.Card.NextReview.Format("2006-01-02"),
		)
		fmt.Printf("%s %.0f (%s)\n",
			theme.Label.Render("Rating:"), res.Overall.Value, res.Overall.Band())
		return nil
	},
}

func init() {
	answerCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	answerCmd.Flags().String("effort", "medium", "How hard it felt: easy, medium or hard")
	answerCmd.Flags().Int("grade", 0, "Explicit 0-5 review grade (overrides --correct/--effort)")
	answerCmd.Flags().String("subject", "", "Subject the question belongs to")
	answerCmd.Flags().String("topic", "", "Topic tag used for interleaving")
	answerCmd.Flags().String("difficulty", "medium", "Editorial difficulty: easy, medium, hard or expert")
	answerCmd.Flags().Float64("rating", 0, "Explicit item Elo rating (overrides --difficulty)")
}
