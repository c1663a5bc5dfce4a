package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/jfmyers9/lfm/internal/render"
	"github.com/jfmyers9/lfm/pkg/lastfm"
	"github.com/spf13/cobra"
)

// albumCmd groups the album lookups
var albumCmd = &cobra.Command{
	Use:   "album",
	Short: "Look up albums",
	Long: `Look up album metadata on Last.fm.

Names containing spaces must be quoted:

  lfm album info Radiohead "OK Computer"`,
}

var albumInfoCmd = &cobra.Command{
	Use:   "info <artist> <album>",
	Short: "Show album details and track listing",
	Args:  cobra.ExactArgs(2),
	RunE:  runAlbumInfo,
}

var albumTopTagsCmd = &cobra.Command{
	Use:   "top-tags <artist> <album>",
	Short: "List the tags most applied to the album",
	Args:  cobra.ExactArgs(2),
	RunE:  runAlbumTopTags,
}

var albumSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for albums by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAlbumSearch,
}

func init() {
	rootCmd.AddCommand(albumCmd)
	addLookupFlags(albumCmd)

	albumCmd.AddCommand(albumInfoCmd, albumTopTagsCmd, albumSearchCmd)
}

func runAlbumInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist, album := args[0], args[1]
	opts := &lastfm.InfoOptions{
		RequestOptions: lastfm.RequestOptions{Autocorrect: autocorrect(cmd), Lang: flagLang},
		Username:       flagUsername,
	}
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist, "album": album}, false)

	resp, err := lookup(cmd.Context(), a, "album.getInfo", params, func(ctx context.Context) (*lastfm.AlbumInfoResponse, error) {
		return a.client.Album().GetInfo(ctx, artist, album, opts)
	})
	if err != nil {
		return err
	}

	return a.show(resp, func(w io.Writer) error {
		return render.AlbumInfo(w, resp.Album, a.width)
	})
}

func runAlbumTopTags(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist, album := args[0], args[1]
	opts := &lastfm.TopTagsOptions{
		RequestOptions: lastfm.RequestOptions{Autocorrect: autocorrect(cmd)},
	}
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist, "album": album}, false)

	resp, err := lookup(cmd.Context(), a, "album.getTopTags", params, func(ctx context.Context) (*lastfm.TopTagsResponse, error) {
		return a.client.Album().GetTopTags(ctx, artist, album, opts)
	})
	if err != nil {
		return err
	}

	return a.showTable(resp, render.TagTable(limitTags(resp.TopTags.Tag, a.limit), a.width))
}

func runAlbumSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	query := strings.Join(args, " ")
	opts := &lastfm.SearchOptions{Limit: a.limit, Page: flagPage}
	params := a.lookupParams(cmd, lastfm.Params{"album": query}, true)

	resp, err := lookup(cmd.Context(), a, "album.search", params, func(ctx context.Context) (*lastfm.AlbumSearchResponse, error) {
		return a.client.Album().Search(ctx, query, opts)
	})
	if err != nil {
		return err
	}

	matches := resp.Results.AlbumMatches.Album
	return a.showTable(resp, render.AlbumTable(matches, searchPage(resp.Results.SearchMeta), a.width))
}
