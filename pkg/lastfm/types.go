package lastfm

import (
	"encoding/json"
)

// Image is an image URL in one of Last.fm's sizes.
type Image struct {
	URL  string `json:"#text"`
	Size string `json:"size"` // small, medium, large, extralarge, mega or empty
}

// Wiki holds a biography or wiki text.
type Wiki struct {
	Published string `json:"published"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
}

// Tag is a Last.fm tag.
type Tag struct {
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	Count      FlexInt    `json:"count"`
	Reach      FlexInt    `json:"reach"`
	Taggings   FlexInt    `json:"taggings"`
	Total      FlexInt    `json:"total"`
	Streamable Streamable `json:"streamable"`
	Wiki       *Wiki      `json:"wiki,omitempty"`
}

// Tags is the tag container nested in artists, albums and tracks.
type Tags struct {
	Tag List[Tag] `json:"tag"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tags) UnmarshalJSON(data []byte) error {
	*t = Tags{}
	if !isJSONObject(data) {
		return nil
	}
	var raw struct {
		Tag List[Tag] `json:"tag"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Tag = raw.Tag
	return nil
}

// SimilarArtists is the similar-artist container nested in artist.getInfo.
type SimilarArtists struct {
	Artist List[Artist] `json:"artist"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SimilarArtists) UnmarshalJSON(data []byte) error {
	*s = SimilarArtists{}
	if !isJSONObject(data) {
		return nil
	}
	var raw struct {
		Artist List[Artist] `json:"artist"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Artist = raw.Artist
	return nil
}

// AlbumTracks is the track listing nested in album.getInfo.
type AlbumTracks struct {
	Track List[Track] `json:"track"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AlbumTracks) UnmarshalJSON(data []byte) error {
	*a = AlbumTracks{}
	if !isJSONObject(data) {
		return nil
	}
	var raw struct {
		Track List[Track] `json:"track"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Track = raw.Track
	return nil
}

// Stats holds listener and play counts.
type Stats struct {
	Listeners     FlexInt `json:"listeners"`
	Playcount     FlexInt `json:"playcount"`
	UserPlaycount FlexInt `json:"userplaycount"`
}

// PageAttr is the "@attr" pagination block of list responses. The
// resource fields are set by the operations that echo them.
type PageAttr struct {
	Page       FlexInt `json:"page"`
	PerPage    FlexInt `json:"perPage"`
	TotalPages FlexInt `json:"totalPages"`
	Total      FlexInt `json:"total"`
	Artist     string  `json:"artist,omitempty"`
	Album      string  `json:"album,omitempty"`
	Track      string  `json:"track,omitempty"`
	Tag        string  `json:"tag,omitempty"`
}

// RankAttr is the "@attr" block of ranked list entries.
type RankAttr struct {
	Rank FlexInt `json:"rank"`
}

// Artist is a Last.fm artist. Which fields are populated depends on the
// operation that returned it.
type Artist struct {
	Name       string          `json:"name"`
	MBID       string          `json:"mbid"`
	URL        string          `json:"url"`
	Image      List[Image]     `json:"image"`
	Listeners  FlexInt         `json:"listeners"`
	Playcount  FlexInt         `json:"playcount"`
	Match      FlexFloat       `json:"match"`
	Streamable Streamable      `json:"streamable"`
	OnTour     FlexBool        `json:"ontour"`
	Stats      *Stats          `json:"stats,omitempty"`
	Similar    *SimilarArtists `json:"similar,omitempty"`
	Tags       *Tags           `json:"tags,omitempty"`
	Bio        *Wiki           `json:"bio,omitempty"`
	Attr       *RankAttr       `json:"@attr,omitempty"`
}

// Album is a Last.fm album.
type Album struct {
	Name      string       `json:"name"`
	Artist    ArtistRef    `json:"artist"`
	MBID      string       `json:"mbid"`
	URL       string       `json:"url"`
	Image     List[Image]  `json:"image"`
	Listeners FlexInt      `json:"listeners"`
	Playcount FlexInt      `json:"playcount"`
	Tracks    *AlbumTracks `json:"tracks,omitempty"`
	Tags      *Tags        `json:"tags,omitempty"`
	Wiki      *Wiki        `json:"wiki,omitempty"`
	Attr      *RankAttr    `json:"@attr,omitempty"`
}

// TrackAlbum is the album block of track.getInfo.
type TrackAlbum struct {
	Title  string      `json:"title"`
	Artist ArtistRef   `json:"artist"`
	MBID   string      `json:"mbid"`
	URL    string      `json:"url"`
	Image  List[Image] `json:"image"`
}

// Track is a Last.fm track.
type Track struct {
	Name       string      `json:"name"`
	Artist     ArtistRef   `json:"artist"`
	Album      *TrackAlbum `json:"album,omitempty"`
	MBID       string      `json:"mbid"`
	URL        string      `json:"url"`
	Duration   FlexInt     `json:"duration"`
	Listeners  FlexInt     `json:"listeners"`
	Playcount  FlexInt     `json:"playcount"`
	Match      FlexFloat   `json:"match"`
	Image      List[Image] `json:"image"`
	Streamable Streamable  `json:"streamable"`
	TopTags    *Tags       `json:"toptags,omitempty"`
	Wiki       *Wiki       `json:"wiki,omitempty"`
	Attr       *RankAttr   `json:"@attr,omitempty"`
}

// UnmarshalJSON accepts the album block only in its object form; list
// operations omit it.
func (t *Track) UnmarshalJSON(data []byte) error {
	type plain Track
	var raw struct {
		plain
		Album json.RawMessage `json:"album"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Track(raw.plain)
	t.Album = nil
	if isJSONObject(raw.Album) {
		var album TrackAlbum
		if err := json.Unmarshal(raw.Album, &album); err != nil {
			return err
		}
		t.Album = &album
	}
	return nil
}

// CorrectionAttr is the "@attr" block of a correction.
type CorrectionAttr struct {
	Index           FlexInt  `json:"index"`
	ArtistCorrected FlexBool `json:"artistcorrected"`
	TrackCorrected  FlexBool `json:"trackcorrected"`
}

// ArtistCorrection is one suggested artist correction.
type ArtistCorrection struct {
	Artist Artist         `json:"artist"`
	Attr   CorrectionAttr `json:"@attr"`
}

// TrackCorrection is one suggested track correction.
type TrackCorrection struct {
	Track Track          `json:"track"`
	Attr  CorrectionAttr `json:"@attr"`
}

// Corrections holds the corrections Last.fm suggested. When it has none
// the API sends a blank string, which decodes to an empty Corrections.
type Corrections[T any] struct {
	Correction List[T] `json:"correction"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Corrections[T]) UnmarshalJSON(data []byte) error {
	*c = Corrections[T]{}
	if !isJSONObject(data) {
		return nil
	}
	var raw struct {
		Correction List[T] `json:"correction"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Correction = raw.Correction
	return nil
}

// OpenSearchQuery describes the query of a search response.
type OpenSearchQuery struct {
	Text        string  `json:"#text"`
	Role        string  `json:"role"`
	SearchTerms string  `json:"searchTerms"`
	StartPage   FlexInt `json:"startPage"`
}

// SearchMeta is the OpenSearch metadata shared by all search responses.
type SearchMeta struct {
	Query        OpenSearchQuery `json:"opensearch:Query"`
	TotalResults FlexInt         `json:"opensearch:totalResults"`
	StartIndex   FlexInt         `json:"opensearch:startIndex"`
	ItemsPerPage FlexInt         `json:"opensearch:itemsPerPage"`
	Attr         struct {
		For string `json:"for"`
	} `json:"@attr"`
}

// Artist responses.

// ArtistCorrectionResponse is the result of artist.getCorrection.
type ArtistCorrectionResponse struct {
	Corrections Corrections[ArtistCorrection] `json:"corrections"`
}

// ArtistInfoResponse is the result of artist.getInfo.
type ArtistInfoResponse struct {
	Artist Artist `json:"artist"`
}

// SimilarArtistsResponse is the result of artist.getSimilar.
type SimilarArtistsResponse struct {
	SimilarArtists struct {
		Artist List[Artist] `json:"artist"`
		Attr   PageAttr     `json:"@attr"`
	} `json:"similarartists"`
}

// ArtistTopAlbumsResponse is the result of artist.getTopAlbums.
type ArtistTopAlbumsResponse struct {
	TopAlbums struct {
		Album List[Album] `json:"album"`
		Attr  PageAttr    `json:"@attr"`
	} `json:"topalbums"`
}

// ArtistTopTracksResponse is the result of artist.getTopTracks.
type ArtistTopTracksResponse struct {
	TopTracks struct {
		Track List[Track] `json:"track"`
		Attr  PageAttr    `json:"@attr"`
	} `json:"toptracks"`
}

// ArtistSearchResponse is the result of artist.search.
type ArtistSearchResponse struct {
	Results struct {
		SearchMeta
		ArtistMatches struct {
			Artist List[Artist] `json:"artist"`
		} `json:"artistmatches"`
	} `json:"results"`
}

// TopTagsResponse is the result of artist.getTopTags, album.getTopTags,
// track.getTopTags and tag.getTopTags.
type TopTagsResponse struct {
	TopTags struct {
		Tag  List[Tag] `json:"tag"`
		Attr PageAttr  `json:"@attr"`
	} `json:"toptags"`
}

// Album responses.

// AlbumInfoResponse is the result of album.getInfo.
type AlbumInfoResponse struct {
	Album Album `json:"album"`
}

// AlbumSearchResponse is the result of album.search.
type AlbumSearchResponse struct {
	Results struct {
		SearchMeta
		AlbumMatches struct {
			Album List[Album] `json:"album"`
		} `json:"albummatches"`
	} `json:"results"`
}

// Track responses.

// TrackCorrectionResponse is the result of track.getCorrection.
type TrackCorrectionResponse struct {
	Corrections Corrections[TrackCorrection] `json:"corrections"`
}

// TrackInfoResponse is the result of track.getInfo.
type TrackInfoResponse struct {
	Track Track `json:"track"`
}

// SimilarTracksResponse is the result of track.getSimilar.
type SimilarTracksResponse struct {
	SimilarTracks struct {
		Track List[Track] `json:"track"`
		Attr  PageAttr    `json:"@attr"`
	} `json:"similartracks"`
}

// TrackSearchResponse is the result of track.search.
type TrackSearchResponse struct {
	Results struct {
		SearchMeta
		TrackMatches struct {
			Track List[Track] `json:"track"`
		} `json:"trackmatches"`
	} `json:"results"`
}

// Tag responses.

// TagInfoResponse is the result of tag.getInfo.
type TagInfoResponse struct {
	Tag Tag `json:"tag"`
}

// SimilarTagsResponse is the result of tag.getSimilar.
type SimilarTagsResponse struct {
	SimilarTags struct {
		Tag  List[Tag] `json:"tag"`
		Attr PageAttr  `json:"@attr"`
	} `json:"similartags"`
}

// TagTopAlbumsResponse is the result of tag.getTopAlbums.
type TagTopAlbumsResponse struct {
	Albums struct {
		Album List[Album] `json:"album"`
		Attr  PageAttr    `json:"@attr"`
	} `json:"albums"`
}

// TagTopArtistsResponse is the result of tag.getTopArtists.
type TagTopArtistsResponse struct {
	TopArtists struct {
		Artist List[Artist] `json:"artist"`
		Attr   PageAttr     `json:"@attr"`
	} `json:"topartists"`
}

// TagTopTracksResponse is the result of tag.getTopTracks.
type TagTopTracksResponse struct {
	Tracks struct {
		Track List[Track] `json:"track"`
		Attr  PageAttr    `json:"@attr"`
	} `json:"tracks"`
}

// Chart responses.

// ChartTopArtistsResponse is the result of chart.getTopArtists.
type ChartTopArtistsResponse struct {
	Artists struct {
		Artist List[Artist] `json:"artist"`
		Attr   PageAttr     `json:"@attr"`
	} `json:"artists"`
}

// ChartTopTracksResponse is the result of chart.getTopTracks.
type ChartTopTracksResponse struct {
	Tracks struct {
		Track List[Track] `json:"track"`
		Attr  PageAttr    `json:"@attr"`
	} `json:"tracks"`
}

// ChartTopTagsResponse is the result of chart.getTopTags.
type ChartTopTagsResponse struct {
	Tags struct {
		Tag  List[Tag] `json:"tag"`
		Attr PageAttr  `json:"@attr"`
	} `json:"tags"`
}
