package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/salmon302/DSATrain-sub001/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Spaced review queue",
}

var reviewDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List skills due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		due, err := eng.DueReviews(cmd.Context(), userFlag(cmd), limit, now)
		if err != nil {
			return err
		}
		if len(due) == 0 {
			fmt.Println("nothing due")
			return nil
		}
		for _, c := range due {
			fmt.Printf("%-22s overdue %.1f days  ease %.2f  interval %.1f days\n",
				c.SkillID, c.OverdueDays(now), c.Ease, c.IntervalDays)
		}
		return nil
	},
}

var reviewSubmitCmd = &cobra.Command{
	Use:   "submit <skill-id> <again|hard|good|easy>",
	Short: "Grade a review",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		card, err := eng.SubmitReview(cmd.Context(), userFlag(cmd), args[0],
			review.Rating(args[1]), time.Now().UTC())
		if err != nil {
			return err
		}
		fmt.Printf("%s: next review %s (interval %.1f days, ease %.2f)\n",
			card.SkillID, card.NextReviewAt.Format("2006-01-02"), card.IntervalDays, card.Ease)
		return nil
	},
}

func init() {
	reviewDueCmd.Flags().Int("limit", 0, "cap the number of cards listed (0 = all)")
	reviewCmd.AddCommand(reviewDueCmd)
	reviewCmd.AddCommand(reviewSubmitCmd)
}
