package lastfm

import (
	"context"
)

// TagService provides the tag.* operations of the Last.fm API.
type TagService struct {
	client requester
}

// GetInfo returns metadata for a tag, including its wiki.
func (s *TagService) GetInfo(ctx context.Context, tag string, opts *InfoOptions) (*TagInfoResponse, error) {
	params := buildParams(Params{"tag": tag}, opts)
	return call[TagInfoResponse](ctx, s.client, "tag.getInfo", params)
}

// GetSimilar returns tags similar to tag.
func (s *TagService) GetSimilar(ctx context.Context, tag string) (*SimilarTagsResponse, error) {
	params := buildParams(Params{"tag": tag}, nil)
	return call[SimilarTagsResponse](ctx, s.client, "tag.getSimilar", params)
}

// GetTopAlbums returns the albums most often tagged with tag.
func (s *TagService) GetTopAlbums(ctx context.Context, tag string, opts *RequestOptions) (*TagTopAlbumsResponse, error) {
	params := buildParams(Params{"tag": tag}, opts)
	return call[TagTopAlbumsResponse](ctx, s.client, "tag.getTopAlbums", params)
}

// GetTopArtists returns the artists most often tagged with tag.
func (s *TagService) GetTopArtists(ctx context.Context, tag string, opts *RequestOptions) (*TagTopArtistsResponse, error) {
	params := buildParams(Params{"tag": tag}, opts)
	return call[TagTopArtistsResponse](ctx, s.client, "tag.getTopArtists", params)
}

// GetTopTracks returns the tracks most often tagged with tag.
func (s *TagService) GetTopTracks(ctx context.Context, tag string, opts *RequestOptions) (*TagTopTracksResponse, error) {
	params := buildParams(Params{"tag": tag}, opts)
	return call[TagTopTracksResponse](ctx, s.client, "tag.getTopTracks", params)
}

// GetTopTags returns the most used tags across Last.fm.
func (s *TagService) GetTopTags(ctx context.Context) (*TopTagsResponse, error) {
	return call[TopTagsResponse](ctx, s.client, "tag.getTopTags", Params{})
}
