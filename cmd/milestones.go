package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Show milestone progress for the active plan",
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
		ms, err := eng.Milestones(cmd.Context(), plan.ID, time.Now().UTC())
		if err != nil {
			return err
		}
		for _, m := range ms {
			fmt.Printf("week %2d  %-10s threshold %.2f  covers %v\n",
				m.WeekIndex, m.Status, m.MasteryThreshold, m.CoveredSkills)
		}
		return nil
	},
}
