package lastfm

import (
	"context"
)

// ChartService provides the chart.* operations of the Last.fm API.
type ChartService struct {
	client requester
}

// GetTopArtists returns the global artist chart.
func (s *ChartService) GetTopArtists(ctx context.Context, opts *RequestOptions) (*ChartTopArtistsResponse, error) {
	return call[ChartTopArtistsResponse](ctx, s.client, "chart.getTopArtists", buildParams(Params{}, opts))
}

// GetTopTracks returns the global track chart.
func (s *ChartService) GetTopTracks(ctx context.Context, opts *RequestOptions) (*ChartTopTracksResponse, error) {
	return call[ChartTopTracksResponse](ctx, s.client, "chart.getTopTracks", buildParams(Params{}, opts))
}

// GetTopTags returns the global tag chart.
func (s *ChartService) GetTopTags(ctx context.Context, opts *RequestOptions) (*ChartTopTagsResponse, error) {
	return call[ChartTopTagsResponse](ctx, s.client, "chart.getTopTags", buildParams(Params{}, opts))
}
