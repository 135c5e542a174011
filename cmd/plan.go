package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/salmon302/DSATrain-sub001/internal/goal"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and inspect learning plans",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate <goal.json>",
	Short: "Generate a plan from a goal file",
	Long: "Reads a goal document (target_skills, target_level, duration_weeks, " +
		"hours_per_week), builds a weekly plan from the user's current mastery, " +
		"and makes it the active plan.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read goal file: %w", err)
		}
		doc, err := goal.Parse(raw)
		if err != nil {
			return err
		}

		eng, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		plan, err := eng.GeneratePlan(cmd.Context(), userFlag(cmd), *doc, time.Now().UTC())
		if err != nil {
			return err
		}
		printPlan(plan)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		plan, err := st.PlanRepo().ActiveForUser(cmd.Context(), userFlag(cmd))
		if err != nil {
			return err
		}
		if plan == nil {
			fmt.Println("no active plan")
			return nil
		}
		printPlan(plan)
		return nil
	},
}

func init() {
	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
}

func printPlan(p *planner.PathPlan) {
	fmt.Printf("plan %s  status=%s  weeks=%d  hours/week=%d\n",
		p.ID, p.Status, p.DurationWeeks, p.HoursPerWeek)
	if p.Partial {
		fmt.Println("PARTIAL PLAN: the catalog could not fill every week")
		for _, r := range p.PartialReasons {
			fmt.Printf("  week %d  skill %s: %s\n", r.WeekIndex, r.SkillID, r.Detail)
		}
	}
	for w := 0; w < p.DurationWeeks; w++ {
		week := p.Week(w)
		if len(week) == 0 {
			continue
		}
		fmt.Printf("week %d  (%d min)\n", w, p.WeekMinutes(w))
		for _, a := range week {
			marker := " "
			switch a.Status {
			case planner.AssignmentCompleted:
				marker = "x"
			case planner.AssignmentSkipped:
				marker = "-"
			}
			fmt.Printf("  [%s] %-28s skill=%-22s d=%2d  %d min  (%s)\n",
				marker, a.ItemID, a.SkillID, a.Difficulty, a.EstimatedMins, a.ID)
		}
	}
	if len(p.Milestones) > 0 {
		fmt.Println("milestones")
		for _, m := range p.Milestones {
			fmt.Printf("  week %d  %-10s covers %v\n", m.WeekIndex, m.Status, m.CoveredSkills)
		}
	}
}
