package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/salmon302/DSATrain-sub001/internal/planner"
)

var (
	outcomeMinutes int
	outcomeFailed  bool
	outcomeHints   int
)

var outcomeCmd = &cobra.Command{
	Use:   "outcome <assignment-id>",
	Short: "Record an attempt outcome for an assignment",
	Long: "Marks the assignment completed, folds the outcome into the skill's " +
		"mastery estimate, and lets the adaptation engine restructure the plan " +
		"if the recent history warrants it.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		plan, err := activePlan(cmd, st)
		if err != nil {
			return err
		}
		out := planner.Outcome{
			TimeSpentMins: outcomeMinutes,
			Success:       !outcomeFailed,
			HintsUsed:     outcomeHints,
		}
		res, err := eng.RecordOutcome(cmd.Context(), plan.ID, args[0], out, time.Now().UTC())
		if err != nil {
			return err
		}

		fmt.Printf("signal %.3f  mastery %s -> %.3f (%s)\n",
			res.Signal, res.Mastery.SkillID, res.Mastery.Mastery, res.Mastery.Trend)
		switch {
		case len(res.InsertedItems) > 0:
			fmt.Printf("adaptation: inserted easier items %v\n", res.InsertedItems)
		case len(res.SkippedItems) > 0:
			fmt.Printf("adaptation: skipped %d assignments, raising difficulty\n", len(res.SkippedItems))
		}
		return nil
	},
}

func init() {
	outcomeCmd.Flags().IntVar(&outcomeMinutes, "minutes", 0, "Time spent in minutes (required)")
	outcomeCmd.Flags().BoolVar(&outcomeFailed, "failed", false, "Mark the attempt as unsuccessful")
	outcomeCmd.Flags().IntVar(&outcomeHints, "hints", 0, "Hints used")
	_ = outcomeCmd.MarkFlagRequired("minutes")
}
