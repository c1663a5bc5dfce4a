package lastfm

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// stubRequester records calls at the transport boundary.
type stubRequester struct {
	calls    []stubCall
	response json.RawMessage
	err      error
}

type stubCall struct {
	method string
	params Params
}

func (s *stubRequester) Request(ctx context.Context, method string, params Params, opts ...RequestOption) (json.RawMessage, error) {
	s.calls = append(s.calls, stubCall{method: method, params: params})
	if s.err != nil {
		return nil, s.err
	}
	if s.response == nil {
		return json.RawMessage(`{}`), nil
	}
	return s.response, nil
}

// newStubClient wires every service to stub.
func newStubClient(stub *stubRequester) *Client {
	return &Client{
		artist: &ArtistService{client: stub},
		album:  &AlbumService{client: stub},
		track:  &TrackService{client: stub},
		tag:    &TagService{client: stub},
		chart:  &ChartService{client: stub},
	}
}

func TestArtistService_GetInfoParams(t *testing.T) {
	stub := &stubRequester{}
	client := newStubClient(stub)

	_, err := client.Artist().GetInfo(context.Background(), "Radiohead", &InfoOptions{
		RequestOptions: RequestOptions{Autocorrect: AutocorrectOn},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stub.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(stub.calls))
	}
	call := stub.calls[0]
	if call.method != "artist.getInfo" {
		t.Errorf("expected method artist.getInfo, got %s", call.method)
	}
	want := Params{"artist": "Radiohead", "autocorrect": 1}
	if !reflect.DeepEqual(call.params, want) {
		t.Errorf("expected params %v, got %v", want, call.params)
	}
}

func TestServices_MethodsAndParams(t *testing.T) {
	ctx := context.Background()
	page := &RequestOptions{Limit: 10, Page: 2}

	tests := []struct {
		name       string
		invoke     func(c *Client) error
		wantMethod string
		wantParams Params
	}{
		{
			name: "artist.getCorrection",
			invoke: func(c *Client) error {
				_, err := c.Artist().GetCorrection(ctx, "Guns and Roses")
				return err
			},
			wantMethod: "artist.getCorrection",
			wantParams: Params{"artist": "Guns and Roses"},
		},
		{
			name: "artist.getSimilar",
			invoke: func(c *Client) error {
				_, err := c.Artist().GetSimilar(ctx, "Cher", &SimilarOptions{RequestOptions: RequestOptions{Limit: 5}})
				return err
			},
			wantMethod: "artist.getSimilar",
			wantParams: Params{"artist": "Cher", "limit": 5},
		},
		{
			name: "artist.getTopAlbums",
			invoke: func(c *Client) error {
				_, err := c.Artist().GetTopAlbums(ctx, "Cher", page)
				return err
			},
			wantMethod: "artist.getTopAlbums",
			wantParams: Params{"artist": "Cher", "limit": 10, "page": 2},
		},
		{
			name: "artist.getTopTags",
			invoke: func(c *Client) error {
				_, err := c.Artist().GetTopTags(ctx, "Cher", &TopTagsOptions{MBID: "bfcc6d75"})
				return err
			},
			wantMethod: "artist.getTopTags",
			wantParams: Params{"artist": "Cher", "mbid": "bfcc6d75"},
		},
		{
			name: "artist.getTopTracks",
			invoke: func(c *Client) error {
				_, err := c.Artist().GetTopTracks(ctx, "Cher", nil)
				return err
			},
			wantMethod: "artist.getTopTracks",
			wantParams: Params{"artist": "Cher"},
		},
		{
			name: "artist.search",
			invoke: func(c *Client) error {
				_, err := c.Artist().Search(ctx, "Cher", &SearchOptions{Limit: 3})
				return err
			},
			wantMethod: "artist.search",
			wantParams: Params{"artist": "Cher", "limit": 3},
		},
		{
			name: "album.getInfo",
			invoke: func(c *Client) error {
				_, err := c.Album().GetInfo(ctx, "Cher", "Believe", &InfoOptions{Username: "rj", RequestOptions: RequestOptions{Lang: "de"}})
				return err
			},
			wantMethod: "album.getInfo",
			wantParams: Params{"artist": "Cher", "album": "Believe", "username": "rj", "lang": "de"},
		},
		{
			name: "album.getTopTags",
			invoke: func(c *Client) error {
				_, err := c.Album().GetTopTags(ctx, "Cher", "Believe", &TopTagsOptions{RequestOptions: RequestOptions{Autocorrect: AutocorrectOff}})
				return err
			},
			wantMethod: "album.getTopTags",
			wantParams: Params{"artist": "Cher", "album": "Believe", "autocorrect": 0},
		},
		{
			name: "album.search",
			invoke: func(c *Client) error {
				_, err := c.Album().Search(ctx, "Believe", nil)
				return err
			},
			wantMethod: "album.search",
			wantParams: Params{"album": "Believe"},
		},
		{
			name: "track.getCorrection",
			invoke: func(c *Client) error {
				_, err := c.Track().GetCorrection(ctx, "Guns and Roses", "Mrbrownstone")
				return err
			},
			wantMethod: "track.getCorrection",
			wantParams: Params{"artist": "Guns and Roses", "track": "Mrbrownstone"},
		},
		{
			name: "track.getInfo",
			invoke: func(c *Client) error {
				_, err := c.Track().GetInfo(ctx, "Cher", "Believe", nil)
				return err
			},
			wantMethod: "track.getInfo",
			wantParams: Params{"artist": "Cher", "track": "Believe"},
		},
		{
			name: "track.getSimilar",
			invoke: func(c *Client) error {
				_, err := c.Track().GetSimilar(ctx, "Cher", "Believe", &SimilarOptions{MBID: "abc"})
				return err
			},
			wantMethod: "track.getSimilar",
			wantParams: Params{"artist": "Cher", "track": "Believe", "mbid": "abc"},
		},
		{
			name: "track.getTopTags",
			invoke: func(c *Client) error {
				_, err := c.Track().GetTopTags(ctx, "Cher", "Believe", nil)
				return err
			},
			wantMethod: "track.getTopTags",
			wantParams: Params{"artist": "Cher", "track": "Believe"},
		},
		{
			name: "track.search",
			invoke: func(c *Client) error {
				_, err := c.Track().Search(ctx, "Believe", &SearchOptions{Page: 4})
				return err
			},
			wantMethod: "track.search",
			wantParams: Params{"track": "Believe", "page": 4},
		},
		{
			name: "tag.getInfo",
			invoke: func(c *Client) error {
				_, err := c.Tag().GetInfo(ctx, "disco", nil)
				return err
			},
			wantMethod: "tag.getInfo",
			wantParams: Params{"tag": "disco"},
		},
		{
			name: "tag.getSimilar",
			invoke: func(c *Client) error {
				_, err := c.Tag().GetSimilar(ctx, "disco")
				return err
			},
			wantMethod: "tag.getSimilar",
			wantParams: Params{"tag": "disco"},
		},
		{
			name: "tag.getTopAlbums",
			invoke: func(c *Client) error {
				_, err := c.Tag().GetTopAlbums(ctx, "disco", page)
				return err
			},
			wantMethod: "tag.getTopAlbums",
			wantParams: Params{"tag": "disco", "limit": 10, "page": 2},
		},
		{
			name: "tag.getTopArtists",
			invoke: func(c *Client) error {
				_, err := c.Tag().GetTopArtists(ctx, "disco", nil)
				return err
			},
			wantMethod: "tag.getTopArtists",
			wantParams: Params{"tag": "disco"},
		},
		{
			name: "tag.getTopTracks",
			invoke: func(c *Client) error {
				_, err := c.Tag().GetTopTracks(ctx, "disco", &RequestOptions{Limit: 1})
				return err
			},
			wantMethod: "tag.getTopTracks",
			wantParams: Params{"tag": "disco", "limit": 1},
		},
		{
			name: "tag.getTopTags",
			invoke: func(c *Client) error {
				_, err := c.Tag().GetTopTags(ctx)
				return err
			},
			wantMethod: "tag.getTopTags",
			wantParams: Params{},
		},
		{
			name: "chart.getTopArtists",
			invoke: func(c *Client) error {
				_, err := c.Chart().GetTopArtists(ctx, page)
				return err
			},
			wantMethod: "chart.getTopArtists",
			wantParams: Params{"limit": 10, "page": 2},
		},
		{
			name: "chart.getTopTracks",
			invoke: func(c *Client) error {
				_, err := c.Chart().GetTopTracks(ctx, nil)
				return err
			},
			wantMethod: "chart.getTopTracks",
			wantParams: Params{},
		},
		{
			name: "chart.getTopTags",
			invoke: func(c *Client) error {
				_, err := c.Chart().GetTopTags(ctx, &RequestOptions{User: "rj"})
				return err
			},
			wantMethod: "chart.getTopTags",
			wantParams: Params{"user": "rj"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubRequester{}
			if err := tt.invoke(newStubClient(stub)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(stub.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(stub.calls))
			}
			if stub.calls[0].method != tt.wantMethod {
				t.Errorf("expected method %s, got %s", tt.wantMethod, stub.calls[0].method)
			}
			if !reflect.DeepEqual(stub.calls[0].params, tt.wantParams) {
				t.Errorf("expected params %v, got %v", tt.wantParams, stub.calls[0].params)
			}
			for _, reserved := range []string{"api_key", "format", "method"} {
				if _, ok := stub.calls[0].params[reserved]; ok {
					t.Errorf("services must not set %s", reserved)
				}
			}
		})
	}
}

func TestServices_ErrorsPropagateUnchanged(t *testing.T) {
	want := &Error{Code: ErrCodeInvalidParameters, Message: "Track not found", StatusCode: 200}
	stub := &stubRequester{err: want}
	client := newStubClient(stub)

	_, err := client.Track().GetInfo(context.Background(), "Cher", "Nope", nil)
	if err != want {
		t.Fatalf("expected the transport error unchanged, got %v", err)
	}

	_, err = client.Chart().GetTopArtists(context.Background(), nil)
	if !errors.Is(err, want) {
		t.Fatalf("expected errors.Is to match, got %v", err)
	}
}

func TestServices_DecodeFailure(t *testing.T) {
	stub := &stubRequester{response: json.RawMessage(`{"artist": [1, 2`)}
	client := newStubClient(stub)

	_, err := client.Artist().GetInfo(context.Background(), "Cher", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestArtistService_GetInfoDecodes(t *testing.T) {
	stub := &stubRequester{response: json.RawMessage(`{
		"artist": {
			"name": "Radiohead",
			"mbid": "a74b1b7f-71a5-4011-9441-d0b5e4122711",
			"url": "https://www.last.fm/music/Radiohead",
			"image": [{"#text": "https://img/s.png", "size": "small"}],
			"streamable": "0",
			"ontour": "1",
			"stats": {"listeners": "7012345", "playcount": "812345678"},
			"similar": {"artist": [{"name": "Thom Yorke", "url": "https://www.last.fm/music/Thom+Yorke"}]},
			"tags": {"tag": {"name": "alternative", "url": "https://www.last.fm/tag/alternative"}},
			"bio": {"published": "01 Jan 2006", "summary": "English rock band", "content": "English rock band from Abingdon"}
		}
	}`)}
	client := newStubClient(stub)

	resp, err := client.Artist().GetInfo(context.Background(), "Radiohead", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := resp.Artist
	if a.Name != "Radiohead" {
		t.Errorf("expected name Radiohead, got %s", a.Name)
	}
	if !a.OnTour {
		t.Error("expected ontour to be true")
	}
	if a.Stats == nil || a.Stats.Listeners != 7012345 {
		t.Errorf("unexpected stats %+v", a.Stats)
	}
	if a.Similar == nil || len(a.Similar.Artist) != 1 || a.Similar.Artist[0].Name != "Thom Yorke" {
		t.Errorf("unexpected similar artists %+v", a.Similar)
	}
	if a.Tags == nil || len(a.Tags.Tag) != 1 || a.Tags.Tag[0].Name != "alternative" {
		t.Errorf("expected single tag object to decode as one-element list, got %+v", a.Tags)
	}
	if a.Bio == nil || a.Bio.Summary != "English rock band" {
		t.Errorf("unexpected bio %+v", a.Bio)
	}
	if len(a.Image) != 1 || a.Image[0].Size != "small" {
		t.Errorf("unexpected images %+v", a.Image)
	}
}
