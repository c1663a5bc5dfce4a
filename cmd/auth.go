package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/jfmyers9/lfm/internal/config"
	"github.com/jfmyers9/lfm/pkg/lastfm"
	"github.com/spf13/cobra"
)

var authCheck bool

var authCmd = &cobra.Command{
	Use:   "auth [api-key]",
	Short: "Store your Last.fm API key",
	Long: `Store a Last.fm API key in the config file.

This command will:
1. Prompt for your API key (or take it as an argument)
2. Verify the key with a lookup against Last.fm
3. Save the key to ~/.config/lfm/config.yaml

With --check, the configured key is verified and nothing is saved.

You can get an API key from: https://www.last.fm/api/account/create`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.Flags().BoolVar(&authCheck, "check", false, "Verify the configured key without saving")
}

func runAuth(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if authCheck {
		key := cfg.LastFM.APIKey
		if flagAPIKey != "" {
			key = flagAPIKey
		}
		if key == "" {
			return fmt.Errorf("no API key configured. Run 'lfm auth' first")
		}
		if err := verifyAPIKey(cmd, cfg, key); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ API key is valid (from %s)\n", keySource(cfg))
		return nil
	}

	var key string
	switch {
	case len(args) == 1:
		key = args[0]
	case flagAPIKey != "":
		key = flagAPIKey
	default:
		fmt.Fprintln(out, "Last.fm Authentication")
		fmt.Fprintln(out, "======================")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "You can get an API key from: https://www.last.fm/api/account/create")
		fmt.Fprintln(out)

		if cfg.LastFM.APIKey != "" {
			fmt.Fprintf(out, "Found existing API key from %s.\n", keySource(cfg))
			fmt.Fprint(out, "Replace it? [y/N]: ")
			response, err := reader.ReadString('\n')
			if err != nil {
				response = "n"
			}
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				return nil
			}
		}

		fmt.Fprint(out, "Enter your Last.fm API Key: ")
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		key = input
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key is required")
	}
	if !lastfm.ValidAPIKeyFormat(key) {
		fmt.Fprintln(out, "Warning: the key does not look like a Last.fm API key (32 hex characters).")
	}

	fmt.Fprintln(out, "Verifying API key...")
	if err := verifyAPIKey(cmd, cfg, key); err != nil {
		return err
	}

	cfg.LastFM.APIKey = key
	cfg.LastFM.APIKeySource = "config"
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "\n✓ API key verified\n")
	fmt.Fprintf(out, "✓ API key saved to %s\n", cfg.Path())
	return nil
}

// verifyAPIKey makes one cheap lookup with key.
func verifyAPIKey(cmd *cobra.Command, cfg *config.Config, key string) error {
	client, err := lastfm.NewClient(lastfm.Config{
		APIKey:  key,
		BaseURL: cfg.LastFM.BaseURL,
		Logger:  lastfm.NewZerologLogger(logger),
	})
	if err != nil {
		return fmt.Errorf("failed to create Last.fm client: %w", err)
	}
	defer client.Close()

	_, err = client.Chart().GetTopTags(cmd.Context(), &lastfm.RequestOptions{Limit: 1})
	var apiErr *lastfm.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &apiErr) && (apiErr.Code == lastfm.ErrCodeInvalidAPIKey || apiErr.Code == lastfm.ErrCodeSuspendedAPIKey):
		return fmt.Errorf("Last.fm rejected the API key: %s", apiErr.Message)
	default:
		return fmt.Errorf("failed to verify API key: %w", err)
	}
}

func keySource(cfg *config.Config) string {
	switch cfg.LastFM.APIKeySource {
	case "", "config":
		return cfg.Path()
	default:
		return "$" + cfg.LastFM.APIKeySource
	}
}
