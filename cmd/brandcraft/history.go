package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"brandcraft/internal/models"
)

var (
	histLimit int
	histJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored generations, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := commandContext(cmd)
		recs, err := a.store.ListRecent(ctx, histLimit)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}

		if histJSON {
			return printJSON(cmd.OutOrStdout(), recs)
		}

		total, err := a.store.Count(ctx)
		if err != nil {
			return fmt.Errorf("count history: %w", err)
		}
		printHistory(cmd.OutOrStdout(), recs, total)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&histLimit, "limit", "n", 20, "maximum number of generations to show (0 for all)")
	historyCmd.Flags().BoolVar(&histJSON, "json", false, "print the generations as JSON")

	rootCmd.AddCommand(historyCmd)
}

// printHistory writes one block per record followed by a total line.
func printHistory(w io.Writer, recs []models.GenerationRecord, total int) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No generations yet.")
		return
	}

	label := color.New(color.Bold)
	for _, rec := range recs {
		color.New(color.FgCyan).Fprintf(w, "#%d", rec.ID)
		fmt.Fprintf(w, "  %s  [%s]\n", rec.CreatedAt.Local().Format("2006-01-02 15:04"), rec.Style)
		label.Fprintf(w, "Idea: ")
		fmt.Fprintln(w, rec.Idea)
		if rec.Audience != "" {
			label.Fprintf(w, "For: ")
			fmt.Fprintln(w, rec.Audience)
		}
		if len(rec.Bundle.BrandNames) > 0 {
			label.Fprintf(w, "Top name: ")
			fmt.Fprintln(w, rec.Bundle.BrandNames[0])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Showing %d of %d generations.\n", len(recs), total)
}
