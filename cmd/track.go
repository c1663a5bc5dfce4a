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

// trackCmd groups the track lookups
var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Look up tracks",
	Long: `Look up track metadata on Last.fm.

Names containing spaces must be quoted:

  lfm track info Radiohead "Paranoid Android"`,
}

var trackInfoCmd = &cobra.Command{
	Use:   "info <artist> <track>",
	Short: "Show track details",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackInfo,
}

var trackSimilarCmd = &cobra.Command{
	Use:   "similar <artist> <track>",
	Short: "List similar tracks",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackSimilar,
}

var trackTopTagsCmd = &cobra.Command{
	Use:   "top-tags <artist> <track>",
	Short: "List the tags most applied to the track",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackTopTags,
}

var trackCorrectCmd = &cobra.Command{
	Use:   "correct <artist> <track>",
	Short: "Show Last.fm's spelling correction for a track",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackCorrect,
}

var trackSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for tracks by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTrackSearch,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	addLookupFlags(trackCmd)

	trackCmd.AddCommand(
		trackInfoCmd,
		trackSimilarCmd,
		trackTopTagsCmd,
		trackCorrectCmd,
		trackSearchCmd,
	)
}

func runTrackInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist, track := args[0], args[1]
	opts := &lastfm.InfoOptions{
		RequestOptions: lastfm.RequestOptions{Autocorrect: autocorrect(cmd), Lang: flagLang},
		Username:       flagUsername,
	}
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist, "track": track}, false)

	resp, err := lookup(cmd.Context(), a, "track.getInfo", params, func(ctx context.Context) (*lastfm.TrackInfoResponse, error) {
		return a.client.Track().GetInfo(ctx, artist, track, opts)
	})
	if err != nil {
		return err
	}

	return a.show(resp, func(w io.Writer) error {
		return render.TrackInfo(w, resp.Track, a.width)
	})
}

func runTrackSimilar(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist, track := args[0], args[1]
	opts := &lastfm.SimilarOptions{RequestOptions: a.requestOptions()}
	opts.Autocorrect = autocorrect(cmd)
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist, "track": track}, true)

	resp, err := lookup(cmd.Context(), a, "track.getSimilar", params, func(ctx context.Context) (*lastfm.SimilarTracksResponse, error) {
		return a.client.Track().GetSimilar(ctx, artist, track, opts)
	})
	if err != nil {
		return err
	}

	similar := resp.SimilarTracks
	return a.showTable(resp, render.TrackTable(similar.Track, similar.Attr, a.width))
}

func runTrackTopTags(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist, track := args[0], args[1]
	opts := &lastfm.TopTagsOptions{
		RequestOptions: lastfm.RequestOptions{Autocorrect: autocorrect(cmd)},
	}
	params := a.lookupParams(cmd, lastfm.Params{"artist": artist, "track": track}, false)

	resp, err := lookup(cmd.Context(), a, "track.getTopTags", params, func(ctx context.Context) (*lastfm.TopTagsResponse, error) {
		return a.client.Track().GetTopTags(ctx, artist, track, opts)
	})
	if err != nil {
		return err
	}

	return a.showTable(resp, render.TagTable(limitTags(resp.TopTags.Tag, a.limit), a.width))
}

func runTrackCorrect(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	artist, track := args[0], args[1]
	params := lastfm.Params{"artist": artist, "track": track}

	resp, err := lookup(cmd.Context(), a, "track.getCorrection", params, func(ctx context.Context) (*lastfm.TrackCorrectionResponse, error) {
		return a.client.Track().GetCorrection(ctx, artist, track)
	})
	if err != nil {
		return err
	}

	return a.show(resp, func(w io.Writer) error {
		if len(resp.Corrections.Correction) == 0 {
			_, err := fmt.Fprintf(w, "No correction for %q by %q.\n", track, artist)
			return err
		}
		for _, c := range resp.Corrections.Correction {
			_, err := fmt.Fprintf(w, "%s - %s -> %s - %s\n", artist, track, c.Track.Artist.Name, c.Track.Name)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func runTrackSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	query := strings.Join(args, " ")
	opts := &lastfm.SearchOptions{Limit: a.limit, Page: flagPage}
	params := a.lookupParams(cmd, lastfm.Params{"track": query}, true)

	resp, err := lookup(cmd.Context(), a, "track.search", params, func(ctx context.Context) (*lastfm.TrackSearchResponse, error) {
		return a.client.Track().Search(ctx, query, opts)
	})
	if err != nil {
		return err
	}

	matches := resp.Results.TrackMatches.Track
	return a.showTable(resp, render.TrackTable(matches, searchPage(resp.Results.SearchMeta), a.width))
}
