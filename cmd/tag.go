package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/jfmyers9/lfm/internal/render"
	"github.com/jfmyers9/lfm/pkg/lastfm"
	"github.com/spf13/cobra"
)

// tagCmd groups the tag lookups
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Look up tags",
	Long:  `Look up tags (genres, moods, eras) and their top artists, albums and tracks on Last.fm.`,
}

var tagInfoCmd = &cobra.Command{
	Use:   "info <tag>",
	Short: "Show tag description and reach",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTagInfo,
}

var tagSimilarCmd = &cobra.Command{
	Use:   "similar <tag>",
	Short: "List similar tags",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTagSimilar,
}

var tagTopAlbumsCmd = &cobra.Command{
	Use:   "top-albums <tag>",
	Short: "List the top albums for a tag",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTagTopAlbums,
}

var tagTopArtistsCmd = &cobra.Command{
	Use:   "top-artists <tag>",
	Short: "List the top artists for a tag",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTagTopArtists,
}

var tagTopTracksCmd = &cobra.Command{
	Use:   "top-tracks <tag>",
	Short: "List the top tracks for a tag",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTagTopTracks,
}

var tagTopCmd = &cobra.Command{
	Use:   "top",
	Short: "List the most used tags on Last.fm",
	Args:  cobra.NoArgs,
	RunE:  runTagTop,
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Language for wikis (ISO 639)")

	tagCmd.AddCommand(
		tagInfoCmd,
		tagSimilarCmd,
		tagTopAlbumsCmd,
		tagTopArtistsCmd,
		tagTopTracksCmd,
		tagTopCmd,
	)
}

func runTagInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tag := strings.Join(args, " ")
	opts := &lastfm.InfoOptions{RequestOptions: lastfm.RequestOptions{Lang: flagLang}}
	params := lastfm.Params{"tag": tag, "lang": flagLang}

	resp, err := lookup(cmd.Context(), a, "tag.getInfo", params, func(ctx context.Context) (*lastfm.TagInfoResponse, error) {
		return a.client.Tag().GetInfo(ctx, tag, opts)
	})
	if err != nil {
		return err
	}

	return a.show(resp, func(w io.Writer) error {
		return render.TagInfo(w, resp.Tag, a.width)
	})
}

func runTagSimilar(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tag := strings.Join(args, " ")

	resp, err := lookup(cmd.Context(), a, "tag.getSimilar", lastfm.Params{"tag": tag}, func(ctx context.Context) (*lastfm.SimilarTagsResponse, error) {
		return a.client.Tag().GetSimilar(ctx, tag)
	})
	if err != nil {
		return err
	}

	return a.showTable(resp, render.TagTable(limitTags(resp.SimilarTags.Tag, a.limit), a.width))
}

func runTagTopAlbums(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tag := strings.Join(args, " ")
	opts := a.requestOptions()
	params := a.lookupParams(cmd, lastfm.Params{"tag": tag}, true)

	resp, err := lookup(cmd.Context(), a, "tag.getTopAlbums", params, func(ctx context.Context) (*lastfm.TagTopAlbumsResponse, error) {
		return a.client.Tag().GetTopAlbums(ctx, tag, &opts)
	})
	if err != nil {
		return err
	}

	albums := resp.Albums
	return a.showTable(resp, render.AlbumTable(albums.Album, albums.Attr, a.width))
}

func runTagTopArtists(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tag := strings.Join(args, " ")
	opts := a.requestOptions()
	params := a.lookupParams(cmd, lastfm.Params{"tag": tag}, true)

	resp, err := lookup(cmd.Context(), a, "tag.getTopArtists", params, func(ctx context.Context) (*lastfm.TagTopArtistsResponse, error) {
		return a.client.Tag().GetTopArtists(ctx, tag, &opts)
	})
	if err != nil {
		return err
	}

	top := resp.TopArtists
	return a.showTable(resp, render.ArtistTable(top.Artist, top.Attr, a.width))
}

func runTagTopTracks(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tag := strings.Join(args, " ")
	opts := a.requestOptions()
	params := a.lookupParams(cmd, lastfm.Params{"tag": tag}, true)

	resp, err := lookup(cmd.Context(), a, "tag.getTopTracks", params, func(ctx context.Context) (*lastfm.TagTopTracksResponse, error) {
		return a.client.Tag().GetTopTracks(ctx, tag, &opts)
	})
	if err != nil {
		return err
	}

	tracks := resp.Tracks
	return a.showTable(resp, render.TrackTable(tracks.Track, tracks.Attr, a.width))
}

func runTagTop(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	resp, err := lookup(cmd.Context(), a, "tag.getTopTags", lastfm.Params{}, func(ctx context.Context) (*lastfm.TopTagsResponse, error) {
		return a.client.Tag().GetTopTags(ctx)
	})
	if err != nil {
		return err
	}

	return a.showTable(resp, render.TagTable(limitTags(resp.TopTags.Tag, a.limit), a.width))
}
