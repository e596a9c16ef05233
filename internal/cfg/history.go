package cfg

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"songdl/internal/database"
	"songdl/internal/database/repo"
	"songdl/internal/domain/consts"
	"songdl/internal/domain/keys"
	"songdl/internal/domain/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initHistoryCmd returns the command listing recorded runs.
func initHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded runs, or the per-file results of one run.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString(keys.HistoryDB)
			if path == "" {
				return errors.New("no history database configured, set --" + keys.HistoryDB)
			}

			db, err := database.InitDB(path)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.Pl.E("Failed to close database: %v", err)
				}
			}()
			hs := repo.GetHistoryStore(db.DB)

			if len(args) == 1 {
				runID, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid run ID %q: %w", args[0], err)
				}
				return printTrackResults(cmd, hs, runID)
			}
			return printRuns(cmd, hs, limit)
		},
	}

	cmd.Flags().IntVar(&limit, keys.HistoryLimit, 20, "Maximum number of runs to list (0 lists all)")
	return cmd
}

func printRuns(cmd *cobra.Command, hs *repo.HistoryStore, limit int) error {
	runs, err := hs.ListRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		logger.Pl.I("No runs recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tSITE\tOK\tFAILED\tSKIPPED\tURL")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID, r.StartedAt.Local().Format(consts.TimeFormat), r.Site, r.Succeeded, r.Failed, r.Skipped, r.PlaylistURL)
	}
	return w.Flush()
}

func printTrackResults(cmd *cobra.Command, hs *repo.HistoryStore, runID int64) error {
	results, err := hs.ListTrackResults(runID)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		logger.Pl.I("No results recorded for run %d", runID)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tARTIST\tTITLE\tALBUM\tOUTPUT\tERROR")
	for _, t := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Status, t.Artist, t.Title, t.Album, t.OutputPath, t.Error)
	}
	return w.Flush()
}
