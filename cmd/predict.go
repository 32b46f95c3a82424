package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmaia/aprovado/internal/predict"
	"github.com/rmaia/aprovado/internal/ui/theme"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Forecast the exam score from current performance",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := svc.Predict(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(predict.Summary(snap)))
		fmt.Printf("%s %d-%d   %s %d%%\n",
			theme.Label.Render("95% interval:"),
			snap.ConfidenceInterval.Lower, snap.ConfidenceInterval.Upper,
			theme.Label.Render("Confidence:"),
			snap.PredictionConfidence,
		)

		if len(snap.Breakdown) > 0 {
			fmt.Println()
			fmt.Println(theme.Subtitle.Render("By subject"))
			for _, b := range snap.Breakdown {
				line := fmt.Sprintf("%-30s %3d%%  %+.1f pts  %s",
					b.Subject, b.PredictedAccuracy, b.Contribution, b.Status)
				switch b.Status {
				case predict.StatusCritical:
					fmt.Println(theme.Incorrect.Render(line))
				case predict.StatusStrong:
					fmt.Println(theme.Correct.Render(line))
				default:
					fmt.Println(theme.Body.Render(line))
				}
			}
		}

		if len(snap.Recommendations) > 0 {
			fmt.Println()
			fmt.Println(theme.Subtitle.Render("Focus next"))
			for _, r := range snap.Recommendations {
				fmt.Printf("%s %s\n", theme.Warning.Render("["+string(r.Priority)+"]"), r.Reason)
			}
		}

		for _, insight := range predict.Insights(snap) {
			fmt.Println(theme.Hint.Render(insight))
		}
		return nil
	},
}
