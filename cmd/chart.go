package cmd

import (
	"context"

	"github.com/jfmyers9/lfm/internal/render"
	"github.com/jfmyers9/lfm/pkg/lastfm"
	"github.com/spf13/cobra"
)

// chartCmd groups the global charts
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the global Last.fm charts",
}

var chartArtistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "Show the top artists chart",
	Args:  cobra.NoArgs,
	RunE:  runChartArtists,
}

var chartTracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "Show the top tracks chart",
	Args:  cobra.NoArgs,
	RunE:  runChartTracks,
}

var chartTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show the top tags chart",
	Args:  cobra.NoArgs,
	RunE:  runChartTags,
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.AddCommand(chartArtistsCmd, chartTracksCmd, chartTagsCmd)
}

func runChartArtists(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := a.requestOptions()
	params := a.lookupParams(cmd, lastfm.Params{}, true)

	resp, err := lookup(cmd.Context(), a, "chart.getTopArtists", params, func(ctx context.Context) (*lastfm.ChartTopArtistsResponse, error) {
		return a.client.Chart().GetTopArtists(ctx, &opts)
	})
	if err != nil {
		return err
	}

	return a.showTable(resp, render.ArtistTable(resp.Artists.Artist, resp.Artists.Attr, a.width))
}

func runChartTracks(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := a.requestOptions()
	params := a.lookupParams(cmd, lastfm.Params{}, true)

	resp, err := lookup(cmd.Context(), a, "chart.getTopTracks", params, func(ctx context.Context) (*lastfm.ChartTopTracksResponse, error) {
		return a.client.Chart().GetTopTracks(ctx, &opts)
	})
	if err != nil {
		return err
	}

	return a.showTable(resp, render.TrackTable(resp.Tracks.Track, resp.Tracks.Attr, a.width))
}

func runChartTags(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := a.requestOptions()
	params := a.lookupParams(cmd, lastfm.Params{}, true)

	resp, err := lookup(cmd.Context(), a, "chart.getTopTags", params, func(ctx context.Context) (*lastfm.ChartTopTagsResponse, error) {
		return a.client.Chart().GetTopTags(ctx, &opts)
	})
	if err != nil {
		return err
	}

	return a.showTable(resp, render.TagTable(resp.Tags.Tag, a.width))
}
