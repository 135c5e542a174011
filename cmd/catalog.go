package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salmon302/DSATrain-sub001/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local item catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <items.json>",
	Short: "Import catalog items from a JSON array",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read items file: %w", err)
		}
		var items []catalog.Item
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("parse items file: %w", err)
		}

		_, st, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := st.ItemRepo().Import(cmd.Context(), items); err != nil {
			return err
		}
		total, err := st.ItemRepo().Count(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("imported %d items (%d total)\n", len(items), total)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
}
