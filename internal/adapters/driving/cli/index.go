package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the knowledge index",
}

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the index from the catalog, bypassing the cache",
	RunE:  runIndexBuild,
}

var indexStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index state and last build counters",
	RunE:  runIndexStatus,
}

func init() {
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexStatusCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexBuild(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	if err := ensureServices(ctx); err != nil {
		return err
	}

	idx, err := indexOrch.Build(ctx)
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	st := indexOrch.Status()
	cmd.Printf("Indexed %d chunk(s) from %d document(s), %d skipped.\n",
		len(idx.Entries), st.DocumentsIndexed, st.DocumentsSkipped)
	if len(idx.Entries) == 0 {
		cmd.Println("Warning: the index is empty. Check the catalog path and content files.")
	}
	return nil
}

func runIndexStatus(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	if err := ensureServices(ctx); err != nil {
		return err
	}

	st := indexOrch.Status()
	cmd.Printf("Building:  %t\n", st.Building)
	cmd.Printf("Ready:     %t\n", st.Ready)
	cmd.Printf("Chunks:    %d\n", st.Entries)
	cmd.Printf("Indexed:   %d document(s)\n", st.DocumentsIndexed)
	cmd.Printf("Skipped:   %d document(s)\n", st.DocumentsSkipped)
	return nil
}
