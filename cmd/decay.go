package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Apply passive mastery decay for idle skills",
	Long: "Reduces mastery on skills idle beyond the grace period. Safe to run " +
		"from a daily job: re-running within the same day changes nothing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		changed, err := eng.RunDecay(cmd.Context(), userFlag(cmd), time.Now().UTC())
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			fmt.Println("nothing to decay")
			return nil
		}
		for _, sm := range changed {
			fmt.Printf("%-22s mastery now %.3f\n", sm.SkillID, sm.Mastery)
		}
		return nil
	},
}
