package lastfm

import (
	"context"
)

// TrackService provides the track.* operations of the Last.fm API.
type TrackService struct {
	client requester
}

// GetCorrection checks whether Last.fm knows a corrected spelling of an
// artist and track name pair.
func (s *TrackService) GetCorrection(ctx context.Context, artist, track string) (*TrackCorrectionResponse, error) {
	params := buildParams(Params{"artist": artist, "track": track}, nil)
	return call[TrackCorrectionResponse](ctx, s.client, "track.getCorrection", params)
}

// GetInfo returns metadata for a track, including its album, duration
// and top tags.
func (s *TrackService) GetInfo(ctx context.Context, artist, track string, opts *InfoOptions) (*TrackInfoResponse, error) {
	params := buildParams(Params{"artist": artist, "track": track}, opts)
	return call[TrackInfoResponse](ctx, s.client, "track.getInfo", params)
}

// GetSimilar returns tracks similar to the given track, best match first.
func (s *TrackService) GetSimilar(ctx context.Context, artist, track string, opts *SimilarOptions) (*SimilarTracksResponse, error) {
	params := buildParams(Params{"artist": artist, "track": track}, opts)
	return call[SimilarTracksResponse](ctx, s.client, "track.getSimilar", params)
}

// GetTopTags returns the tags most often applied to the track.
func (s *TrackService) GetTopTags(ctx context.Context, artist, track string, opts *TopTagsOptions) (*TopTagsResponse, error) {
	params := buildParams(Params{"artist": artist, "track": track}, opts)
	return call[TopTagsResponse](ctx, s.client, "track.getTopTags", params)
}

// Search searches for tracks by name.
func (s *TrackService) Search(ctx context.Context, track string, opts *SearchOptions) (*TrackSearchResponse, error) {
	params := buildParams(Params{"track": track}, opts)
	return call[TrackSearchResponse](ctx, s.client, "track.search", params)
}
