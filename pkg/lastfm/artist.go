package lastfm

import (
	"context"
)

// ArtistService provides the artist.* operations of the Last.fm API.
type ArtistService struct {
	client requester
}

// GetCorrection checks whether Last.fm knows a corrected spelling of an
// artist name.
//
// When there is nothing to correct, the returned response has an empty
// Corrections.Correction list.
func (s *ArtistService) GetCorrection(ctx context.Context, artist string) (*ArtistCorrectionResponse, error) {
	params := buildParams(Params{"artist": artist}, nil)
	return call[ArtistCorrectionResponse](ctx, s.client, "artist.getCorrection", params)
}

// GetInfo returns metadata for an artist, including biography, stats,
// similar artists and top tags.
//
// Example:
//
//	resp, err := client.Artist().GetInfo(ctx, "Radiohead", &lastfm.InfoOptions{
//	    RequestOptions: lastfm.RequestOptions{Autocorrect: lastfm.AutocorrectOn},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Artist.Name, resp.Artist.Stats.Listeners)
func (s *ArtistService) GetInfo(ctx context.Context, artist string, opts *InfoOptions) (*ArtistInfoResponse, error) {
	params := buildParams(Params{"artist": artist}, opts)
	return call[ArtistInfoResponse](ctx, s.client, "artist.getInfo", params)
}

// GetSimilar returns artists similar to artist, best match first.
func (s *ArtistService) GetSimilar(ctx context.Context, artist string, opts *SimilarOptions) (*SimilarArtistsResponse, error) {
	params := buildParams(Params{"artist": artist}, opts)
	return call[SimilarArtistsResponse](ctx, s.client, "artist.getSimilar", params)
}

// GetTopAlbums returns the artist's albums ordered by popularity.
func (s *ArtistService) GetTopAlbums(ctx context.Context, artist string, opts *RequestOptions) (*ArtistTopAlbumsResponse, error) {
	params := buildParams(Params{"artist": artist}, opts)
	return call[ArtistTopAlbumsResponse](ctx, s.client, "artist.getTopAlbums", params)
}

// GetTopTags returns the tags most often applied to the artist.
func (s *ArtistService) GetTopTags(ctx context.Context, artist string, opts *TopTagsOptions) (*TopTagsResponse, error) {
	params := buildParams(Params{"artist": artist}, opts)
	return call[TopTagsResponse](ctx, s.client, "artist.getTopTags", params)
}

// GetTopTracks returns the artist's tracks ordered by popularity.
func (s *ArtistService) GetTopTracks(ctx context.Context, artist string, opts *RequestOptions) (*ArtistTopTracksResponse, error) {
	params := buildParams(Params{"artist": artist}, opts)
	return call[ArtistTopTracksResponse](ctx, s.client, "artist.getTopTracks", params)
}

// Search searches for artists by name.
func (s *ArtistService) Search(ctx context.Context, artist string, opts *SearchOptions) (*ArtistSearchResponse, error) {
	params := buildParams(Params{"artist": artist}, opts)
	return call[ArtistSearchResponse](ctx, s.client, "artist.search", params)
}
