package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/runes-api/internal/repositories/battles"
)

var (
	historySession string
	historyLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded battles",
	Long:  `Show battles recorded in redis, newest first. Requires --redis-url.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historySession, "session", "", "only show battles from this session")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum battles to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if redisURL == "" {
		return fmt.Errorf("history needs --redis-url")
	}

	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	var records []*battles.Record
	if historySession != "" {
		out, err := d.battles.ListBySession(ctx, battles.ListBySessionInput{SessionID: historySession, Limit: historyLimit})
		if err != nil {
			return fmt.Errorf("failed to list battles: %w", err)
		}
		records = out.Records
	} else {
		out, err := d.battles.ListRecent(ctx, battles.ListRecentInput{Limit: historyLimit})
		if err != nil {
			return fmt.Errorf("failed to list battles: %w", err)
		}
		records = out.Records
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No battles recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENDED\tPLAYER\tLV\tRUNE\tAREA\tMONSTER\tOUTCOME\tTURNS\tEXP\tGOLD")
	for _, r := range records {
		monster := r.MonsterName
		if r.Revived {
			monster += " (revived)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			r.EndedAt.Format("2006-01-02 15:04"), r.PlayerName, r.PlayerLevel, r.Rune, r.AreaID,
			monster, r.Outcome, r.Turns, r.ExpGained, r.GoldGained)
	}
	return w.Flush()
}
