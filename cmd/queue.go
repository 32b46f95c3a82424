package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmaia/aprovado/internal/queue"
	"github.com/rmaia/aprovado/internal/session"
	"github.com/rmaia/aprovado/internal/ui/theme"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Build today's interleaved review queue",
	Long: "Builds the review queue from the cards that are due, most overdue\n" +
		"first, then interleaves them across topics so no single subject\n" +
		"runs in a long block.",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		switchRate, _ := cmd.Flags().GetFloat64("switch-rate")
		all, _ := cmd.Flags().GetBool("all")

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := svc.State()
		if all {
			ids := make([]string, 0, len(state.Cards))
			for id := range state.Cards {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			order := queue.Build(ids, state.Cards, time.Now())
			split := svc.DueSplit()
			dueSet := make(map[string]bool, len(split.Due))
			for _, id := range split.Due {
				dueSet[id] = true
			}
			fmt.Println(theme.Title.Render(fmt.Sprintf("%d card(s), %d due", len(order), len(split.Due))))
			for i, id := range order {
				tag := "later"
				if dueSet[id] {
					tag = "due"
				}
				fmt.Printf("%2d. %s %s\n", i+1, id, theme.Hint.Render(tag))
			}
			return nil
		}
		candidates := make([]session.ReviewItem, 0, len(state.Cards))
		for id, card := range state.Cards {
			candidates = append(candidates, session.ReviewItem{
				ID:      id,
				Subject: card.Discipline,
				Topic:   card.Topic,
			})
		}

		split := svc.DueSplit()
		batch := svc.BuildBatch(candidates, limit, switchRate)
		if len(batch) == 0 {
			fmt.Println(theme.Correct.Render("Nothing due. You're caught up."))
			if n := len(split.NotDue); n > 0 {
				fmt.Println(theme.Hint.Render(fmt.Sprintf("%d card(s) scheduled for later.", n)))
			}
			return nil
		}

		header := fmt.Sprintf("%d item(s) due", len(split.Due))
		if len(batch) < len(split.Due) {
			header += fmt.Sprintf(", showing %d", len(batch))
		}
		fmt.Println(theme.Title.Render(header))
		for i, it := range batch {
			tag := it.Topic
			if tag == "" {
				tag = it.Subject
			}
			fmt.Printf("%2d. %s %s\n", i+1, it.ID, theme.Hint.Render(tag))
		}
		return nil
	},
}

// pretestResult mirrors the JSON shape of one pretest answer.
type pretestResult struct {
	ItemID     string `json:"item_id"`
	Correct    bool   `json:"correct"`
	Confidence string `json:"confidence"`
}

var pretestCmd = &cobra.Command{
	Use:   "pretest <results.json>",
	Short: "Order pretest items for study by hypercorrection priority",
	Long: "Reads pretest results and orders the items so confident errors\n" +
		"come first. High-confidence errors are corrected most durably when\n" +
		"addressed right away.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read results: %w", err)
		}
		var parsed []pretestResult
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return fmt.Errorf("decode results: %w", err)
		}

		results := make([]queue.PretestResult, 0, len(parsed))
		for _, r := range parsed {
			results = append(results, queue.PretestResult{
				ItemID:     r.ItemID,
				Correct:    r.Correct,
				Confidence: queue.Confidence(r.Confidence),
			})
		}

		order, err := queue.Prioritize(results)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render("Study order"))
		for i, id := range order {
			fmt.Printf("%2d. %s\n", i+1, id)
		}
		fmt.Println()
		fmt.Println(theme.Hint.Render(queue.Insight(results)))
		return nil
	},
}

func init() {
	queueCmd.Flags().Int("limit", 0, "Maximum queue length (0 = no cap)")
	queueCmd.Flags().Bool("all", false, "List every card in review order, not just the due batch")
	queueCmd.Flags().Float64("switch-rate", session.DefaultSwitchRate, "Probability of switching topic between items")
}
