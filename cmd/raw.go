package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jfmyers9/lfm/pkg/lastfm"
	"github.com/spf13/cobra"
)

var rawPost bool

// rawCmd calls any Last.fm method
var rawCmd = &cobra.Command{
	Use:   "raw <method> [key=value...]",
	Short: "Call any Last.fm API method and print the JSON response",
	Long: `Call any Last.fm API method and print the JSON response.

The API key, method and format parameters are added automatically.

Examples:
  lfm raw geo.getTopArtists country=Japan limit=5
  lfm raw album.getInfo artist=Cher album=Believe --post`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRaw,
}

func init() {
	rootCmd.AddCommand(rawCmd)
	rawCmd.Flags().BoolVar(&rawPost, "post", false, "Send parameters as a POST form body")
}

// parseKeyValues turns key=value arguments into parameters.
func parseKeyValues(args []string) (lastfm.Params, error) {
	params := make(lastfm.Params, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", arg)
		}
		params[key] = value
	}
	return params, nil
}

func runRaw(cmd *cobra.Command, args []string) error {
	method := args[0]
	params, err := parseKeyValues(args[1:])
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var opts []lastfm.RequestOption
	if rawPost {
		opts = append(opts, lastfm.WithHTTPMethod(http.MethodPost))
	}

	raw, err := lookup(cmd.Context(), a, method, params, func(ctx context.Context) (*json.RawMessage, error) {
		body, err := a.client.Request(ctx, method, params, opts...)
		if err != nil {
			return nil, err
		}
		return &body, nil
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, *raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err = a.out.Write(buf.Bytes())
	return err
}
