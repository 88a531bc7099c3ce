package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent attempts",
	Long: `Display the most recent picks with their target and result,
followed by overall accuracy.

Examples:
  framecolor history
  framecolor history --limit 50
  framecolor history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of attempts to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded attempts")
}

func runHistory(_ *cobra.Command, _ []string) error {
	svc, err := openServices(true)
	if err != nil {
		return err
	}
	defer svc.Close()

	if flagHistoryClear {
		if err := svc.store.ClearAttempts(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	entries, err := svc.store.RecentAttempts(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent attempts")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'framecolor exercise' to start.")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-8s  %-6s  %s\n", "Date", "Target", "Picked", "Result", "Session")
	fmt.Printf("  %-16s  %-8s  %-8s  %-6s  %s\n", "----", "------", "------", "------", "-------")

	for _, e := range entries {
		result := "wrong"
		if e.Correct {
			result = "ok"
		}
		session := e.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		fmt.Printf("  %-16s  %-8s  %-8s  %-6s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Target, e.Selected, result, session)
	}

	stats, err := svc.store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d attempts, %d correct (%.0f%%) over %d sessions\n",
			stats.Attempts, stats.Correct, stats.Accuracy()*100, stats.Sessions)
	}
	return nil
}
