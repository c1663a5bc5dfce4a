package lastfm

import (
	"context"
)

// AlbumService provides the album.* operations of the Last.fm API.
type AlbumService struct {
	client requester
}

// GetInfo returns metadata and the track listing for an album.
//
// Example:
//
//	resp, err := client.Album().GetInfo(ctx, "Radiohead", "OK Computer", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range resp.Album.Tracks.Track {
//	    fmt.Println(t.Name)
//	}
func (s *AlbumService) GetInfo(ctx context.Context, artist, album string, opts *InfoOptions) (*AlbumInfoResponse, error) {
	params := buildParams(Params{"artist": artist, "album": album}, opts)
	return call[AlbumInfoResponse](ctx, s.client, "album.getInfo", params)
}

// GetTopTags returns the tags most often applied to the album.
func (s *AlbumService) GetTopTags(ctx context.Context, artist, album string, opts *TopTagsOptions) (*TopTagsResponse, error) {
	params := buildParams(Params{"artist": artist, "album": album}, opts)
	return call[TopTagsResponse](ctx, s.client, "album.getTopTags", params)
}

// Search searches for albums by name.
func (s *AlbumService) Search(ctx context.Context, album string, opts *SearchOptions) (*AlbumSearchResponse, error) {
	params := buildParams(Params{"album": album}, opts)
	return call[AlbumSearchResponse](ctx, s.client, "album.search", params)
}
