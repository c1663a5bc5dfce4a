package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jfmyers9/lfm/internal/config"
	"github.com/jfmyers9/lfm/internal/history"
	"github.com/jfmyers9/lfm/internal/render"
	"github.com/jfmyers9/lfm/pkg/lastfm"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app bundles what a lookup command needs.
type app struct {
	cfg     *config.Config
	client  *lastfm.Client
	history *history.Store // nil when history is disabled
	out     io.Writer
	width   int
	limit   int
}

// newApp loads the configuration and builds the Last.fm client. Flags
// override config values.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagAPIKey != "" {
		cfg.LastFM.APIKey = flagAPIKey
		cfg.LastFM.APIKeySource = "flag"
	}
	if cfg.LastFM.APIKeySource != "" {
		logger.Debug().Str("source", cfg.LastFM.APIKeySource).Msg("Using API key")
	}

	client, err := lastfm.NewClient(lastfm.Config{
		APIKey:    cfg.LastFM.APIKey,
		BaseURL:   cfg.LastFM.BaseURL,
		Timeout:   time.Duration(cfg.LastFM.Timeout) * time.Second,
		UserAgent: "lfm/" + version,
		Logger:    lastfm.NewZerologLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Last.fm client: %w", err)
	}

	a := &app{
		cfg:    cfg,
		client: client,
		out:    cmd.OutOrStdout(),
		width:  outputWidth(cmd.OutOrStdout(), cfg),
		limit:  flagLimit,
	}
	if a.limit <= 0 {
		a.limit = cfg.Output.Limit
	}

	if cfg.History.Enabled && !flagNoHistory {
		a.history = openHistory(cmd.Context(), cfg)
	}

	return a, nil
}

// openHistory opens the lookup history and prunes old entries. History
// is best-effort: failures are logged and lookups continue without it.
func openHistory(ctx context.Context, cfg *config.Config) *history.Store {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.History.Path).Msg("History disabled")
		return nil
	}

	if cfg.History.MaxAge > 0 {
		maxAge := time.Duration(cfg.History.MaxAge) * 24 * time.Hour
		if deleted, err := store.Prune(ctx, maxAge); err != nil {
			logger.Warn().Err(err).Msg("Failed to prune history")
		} else if deleted > 0 {
			logger.Debug().Int64("deleted", deleted).Msg("Pruned history")
		}
	}

	return store
}

// outputWidth picks the table width: flag, then config, then the
// terminal size.
func outputWidth(out io.Writer, cfg *config.Config) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if cfg.Output.Width > 0 {
		return cfg.Output.Width
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return render.DefaultWidth
}

// Close releases the client and the history store.
func (a *app) Close() {
	a.client.Close()
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close history")
		}
	}
}

// requestOptions builds the shared list options from the global flags.
func (a *app) requestOptions() lastfm.RequestOptions {
	return lastfm.RequestOptions{
		Limit: a.limit,
		Page:  flagPage,
	}
}

// record stores a lookup in the history. Reserved parameters are left
// out since they are never sent.
func (a *app) record(ctx context.Context, method string, params lastfm.Params, elapsed time.Duration, lookupErr error) {
	if a.history == nil {
		return
	}

	entry := history.Entry{
		Method:   method,
		Params:   make(map[string]string),
		Duration: elapsed,
	}
	for k, v := range lastfm.Sanitize(params) {
		if lastfm.IsReservedParam(k) {
			continue
		}
		entry.Params[k] = cast.ToString(v)
	}
	if lookupErr != nil {
		entry.Error = lookupErr.Error()
		var apiErr *lastfm.Error
		if errors.As(lookupErr, &apiErr) {
			entry.Code = apiErr.Code
		}
	}

	if _, err := a.history.Record(ctx, entry); err != nil {
		logger.Warn().Err(err).Msg("Failed to record lookup")
	}
}

// lookup runs call, records it in the history and turns a missing API
// key into an actionable error.
func lookup[T any](ctx context.Context, a *app, method string, params lastfm.Params, call func(context.Context) (*T, error)) (*T, error) {
	start := time.Now()
	resp, err := call(ctx)
	elapsed := time.Since(start)

	logger.Debug().
		Str("method", method).
		Dur("elapsed", elapsed).
		Err(err).
		Msg("Lookup finished")

	if errors.Is(err, lastfm.ErrAPIKeyRequired) {
		return nil, fmt.Errorf("%w: run 'lfm auth' or set LFM_API_KEY", err)
	}
	a.record(ctx, method, params, elapsed, err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// show prints v as JSON when --json is set and with text otherwise.
func (a *app) show(v any, text func(w io.Writer) error) error {
	if flagJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(a.out)
}

// showTable renders a table, or a note when it has no rows.
func (a *app) showTable(v any, t *render.Table) error {
	return a.show(v, func(w io.Writer) error {
		if len(t.Rows) == 0 {
			_, err := fmt.Fprintln(w, "No results.")
			return err
		}
		return t.Render(w)
	})
}
