package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jfmyers9/lfm/internal/config"
	"github.com/jfmyers9/lfm/internal/history"
	"github.com/jfmyers9/lfm/internal/render"
	"github.com/spf13/cobra"
)

var historyClear bool

// historyCmd lists recent lookups
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent lookups",
	Long: `List the lookups made with lfm, newest first.

Only the method, its parameters and the outcome are recorded. Use
--no-history on any command to skip recording, or set history.enabled
to false in the config file.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all recorded lookups")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()

	if historyClear {
		deleted, err := store.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d lookups.\n", deleted)
		return nil
	}

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.Output.Limit
	}

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No lookups recorded.")
		return nil
	}
	return historyTable(entries, outputWidth(out, cfg)).Render(out)
}

// historyTable lays out history entries.
func historyTable(entries []history.Entry, width int) *render.Table {
	t := &render.Table{
		Headers: []string{"TIME", "METHOD", "PARAMS", "RESULT"},
		Width:   width,
	}
	for _, e := range entries {
		result := "ok"
		if !e.OK() {
			result = e.Error
		}
		t.AddRow(
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Method,
			formatParams(e.Params),
			result,
		)
	}
	return t
}

// formatParams renders parameters as sorted key=value pairs.
func formatParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	return strings.Join(pairs, " ")
}
