package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/salmon302/DSATrain-sub001/internal/adapt"
	"github.com/salmon302/DSATrain-sub001/internal/engine"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
	"github.com/salmon302/DSATrain-sub001/internal/profile"
	"github.com/salmon302/DSATrain-sub001/internal/review"
	"github.com/salmon302/DSATrain-sub001/internal/skillgraph"
	"github.com/salmon302/DSATrain-sub001/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dsatrain",
	Short: "Adaptive interview-prep training engine",
	Long: "DSATrain plans weekly practice schedules over a DSA skill graph, " +
		"adapts them to attempt outcomes, and schedules spaced reviews of mastered skills.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DSATRAIN_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "User the command acts for")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(outcomeCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(milestonesCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(decayCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then DSATRAIN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// openEngine opens the store and wires the full engine for a command.
// The returned cleanup closes the store and flushes the logger.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := newLogger(cmd)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	graph := skillgraph.Default()
	index := st.ItemRepo()
	estimator := profile.NewEstimator(profile.DefaultConfig(), st.MasteryRepo())
	adapter := adapt.New(adapt.DefaultConfig(), index, estimator, st.EventRepo())
	pl := planner.New(graph, index, planner.DefaultConfig())

	eng := engine.New(engine.DefaultConfig(), graph, pl, estimator, adapter,
		review.DefaultConfig(), st.PlanRepo(), st.ReviewRepo(), st.EventRepo(), log)

	cleanup := func() {
		_ = log.Sync()
		_ = st.Close()
	}
	return eng, st, cleanup, nil
}

func userFlag(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	return u
}

// activePlan resolves the acting user's active plan for commands that
// address a plan by implication rather than by ID.
func activePlan(cmd *cobra.Command, st *store.Store) (*planner.PathPlan, error) {
	user := userFlag(cmd)
	plan, err := st.PlanRepo().ActiveForUser(cmd.Context(), user)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("no active plan for user %s", user)
	}
	return plan, nil
}
