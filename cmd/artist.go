package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/lfm/internal/render"
	"github.com/jfmyers9/lfm/pkg/lastfm"
	"github.com/spf13/cobra"
)

// Flags shared by the artist, album and track commands
var (
	flagAutocorrect bool
	flagLang        string
	flagUsername    string
)

// artistCmd groups the artist lookups
var artistCmd = &cobra.Command{
	Use:   "artist",
	Short: "Look up artists",
	Long: `Look up artist metadata on Last.fm.

Artist names may be given as several words without quotes:

  lfm artist info Sigur Ros`,
}

var artistInfoCmd = &cobra.Command{
	Use:   "info <artist>",
	Short: "Show artist biography, stats and tags",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistInfo,
}

var artistSimilarCmd = &cobra.Command{
	Use:   "similar <artist>",
	Short: "List similar artists",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistSimilar,
}

var artistTopAlbumsCmd = &cobra.Command{
	Use:   "top-albums <artist>",
	Short: "List the artist's most popular albums",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistTopAlbums,
}

var artistTopTagsCmd = &cobra.Command{
	Use:   "top-tags <artist>",
	Short: "List the tags most applied to the artist",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistTopTags,
}

var artistTopTracksCmd = &cobra.Command{
	Use:   "top-tracks <artist>",
	Short: "List the artist's most popular tracks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistTopTracks,
}

var artistSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for artists by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistSearch,
}

var artistCorrectCmd = &cobra.Command{
	Use:   "correct <artist>",
	Short: "Show Last.fm's spelling correction for an artist name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArtistCorrect,
}

func init() {
	rootCmd.AddCommand(artistCmd)
	addLookupFlags(artistCmd)

	artistCmd.AddCommand(
		artistInfoCmd,
		artistSimilarCmd,
		artistTopAlbumsCmd,
		artistTopTagsCmd,
		artistTopTracksCmd,
		artistSearchCmd,
		artistCorrectCmd,
	)
}

// addLookupFlags registers the name lookup flags on a command group.
func addLookupFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolVar(&flagAutocorrect, "autocorrect", false, "Let Last.fm correct misspelled names (--autocorrect=false to disable)")
	flags.StringVar(&flagLang, "lang", "", "Language for biographies and wikis (ISO 639)")
	flags.StringVar(&flagUsername, "username", "", "Include this user's play count")
}

// autocorrect maps the --autocorrect flag; unset leaves the API default.
func autocorrect(cmd *cobra.Command) lastfm.Autocorrect {
	if !cmd.Flags().Changed("autocorrect") {
		return lastfm.AutocorrectDefault
	}
	if flagAutocorrect {
		return lastfm.AutocorrectOn
	}
	return lastfm.AutocorrectOff
}

// lookupParams adds the flag-controlled parameters to base for the history.
func (a *app) lookupParams(cmd *cobra.Command, base lastfm.Params, list bool) lastfm.Params {
	if list {
		if a.limit > 0 {
			base["limit"] = a.limit
		}
		if flagPage > 0 {
			base["page"] = flagPage
		}
	}
	switch autocorrect(cmd) {
	case lastfm.AutocorrectOn:
		base["autocorrect"] = 1
	case lastfm.AutocorrectOff:
		base["autocorrect"] = 0
	}
	base["lang"] = flagLang
	base["username"] = flagUsername
	return base
}

func runArtistInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist := strings.Join(args, " ")
	opts := &lastfm.InfoOptions{
		RequestOptions: lastfm.RequestOptions{Autocorrect: autocorrect(cmd), Lang: flagLang},
		Username:       flagUsername,
	}
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist}, false)

	resp, err := lookup(cmd.Context(), a, "artist.getInfo", params, func(ctx context.Context) (*lastfm.ArtistInfoResponse, error) {
		return a.client.Artist().GetInfo(ctx, artist, opts)
	})
	if err != nil {
		return err
	}

	return a.show(resp, func(w io.Writer) error {
		return render.ArtistInfo(w, resp.Artist, a.width)
	})
}

func runArtistSimilar(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist := strings.Join(args, " ")
	opts := &lastfm.SimilarOptions{RequestOptions: a.requestOptions()}
	opts.Autocorrect = autocorrect(cmd)
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist}, true)

	resp, err := lookup(cmd.Context(), a, "artist.getSimilar", params, func(ctx context.Context) (*lastfm.SimilarArtistsResponse, error) {
		return a.client.Artist().GetSimilar(ctx, artist, opts)
	})
	if err != nil {
		return err
	}

	similar := resp.SimilarArtists
	return a.showTable(resp, render.ArtistTable(similar.Artist, similar.Attr, a.width))
}

func runArtistTopAlbums(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist := strings.Join(args, " ")
	opts := a.requestOptions()
	opts.Autocorrect = autocorrect(cmd)
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist}, true)

	resp, err := lookup(cmd.Context(), a, "artist.getTopAlbums", params, func(ctx context.Context) (*lastfm.ArtistTopAlbumsResponse, error) {
		return a.client.Artist().GetTopAlbums(ctx, artist, &opts)
	})
	if err != nil {
		return err
	}

	top := resp.TopAlbums
	return a.showTable(resp, render.AlbumTable(top.Album, top.Attr, a.width))
}

func runArtistTopTags(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist := strings.Join(args, " ")
	opts := &lastfm.TopTagsOptions{
		RequestOptions: lastfm.RequestOptions{Autocorrect: autocorrect(cmd)},
	}
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist}, false)

	resp, err := lookup(cmd.Context(), a, "artist.getTopTags", params, func(ctx context.Context) (*lastfm.TopTagsResponse, error) {
		return a.client.Artist().GetTopTags(ctx, artist, opts)
	})
	if err != nil {
		return err
	}

	return a.showTable(resp, render.TagTable(limitTags(resp.TopTags.Tag, a.limit), a.width))
}

func runArtistTopTracks(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist := strings.Join(args, " ")
	opts := a.requestOptions()
	opts.Autocorrect = autocorrect(cmd)
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist}, true)

	resp, err := lookup(cmd.Context(), a, "artist.getTopTracks", params, func(ctx context.Context) (*lastfm.ArtistTopTracksResponse, error) {
		return a.client.Artist().GetTopTracks(ctx, artist, &opts)
	})
	if err != nil {
		return err
	}

	top := resp.TopTracks
	return a.showTable(resp, render.TrackTable(top.Track, top.Attr, a.width))
}

func runArtistSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	query := strings.Join(args, " ")
	opts := &lastfm.SearchOptions{Limit: a.limit, Page: flagPage}
	params := a.lookupParams(cmd, lastfm.Params{"artist": query}, true)

	resp, err := lookup(cmd.Context(), a, "artist.search", params, func(ctx context.Context) (*lastfm.ArtistSearchResponse, error) {
		return a.client.Artist().Search(ctx, query, opts)
	})
	if err != nil {
		return err
	}

	matches := resp.Results.ArtistMatches.Artist
	return a.showTable(resp, render.ArtistTable(matches, searchPage(resp.Results.SearchMeta), a.width))
}

func runArtistCorrect(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist := strings.Join(args, " ")
	params := lastfm.Params{"artist": artist}

	resp, err := lookup(cmd.Context(), a, "artist.getCorrection", params, func(ctx context.Context) (*lastfm.ArtistCorrectionResponse, error) {
		return a.client.Artist().GetCorrection(ctx, artist)
	})
	if err != nil {
		return err
	}

	return a.show(resp, func(w io.Writer) error {
		if len(resp.Corrections.Correction) == 0 {
			_, err := fmt.Fprintf(w, "No correction for %q.\n", artist)
			return err
		}
		for _, c := range resp.Corrections.Correction {
			if _, err := fmt.Fprintf(w, "%s -> %s\n", artist, c.Artist.Name); err != nil {
				return err
			}
		}
		return nil
	})
}

// searchPage converts OpenSearch metadata into page attributes so ranks
// continue across pages.
func searchPage(meta lastfm.SearchMeta) lastfm.PageAttr {
	return lastfm.PageAttr{
		Page:    meta.Query.StartPage,
		PerPage: meta.ItemsPerPage,
		Total:   meta.TotalResults,
	}
}

// limitTags trims tag lists, which Last.fm does not paginate.
func limitTags(tags []lastfm.Tag, limit int) []lastfm.Tag {
	if limit > 0 && len(tags) > limit {
		return tags[:limit]
	}
	return tags
}
