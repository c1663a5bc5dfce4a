// Package lastfm provides a client library for the Last.fm API 2.0
// metadata methods.
//
// # Overview
//
// This package wraps the read-only artist, album, track, tag and chart
// methods of the Last.fm API. Every method builds its query parameters,
// attaches the API key and returns the JSON response decoded into a
// typed result.
//
// # Quick Start
//
//	import "github.com/jfmyers9/lfm/pkg/lastfm"
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey: "your-api-key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	info, err := client.Artist().GetInfo(ctx, "Radiohead", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(info.Artist.Bio.Summary)
//
// # API Key
//
// The API key may be empty when the client is created and set later with
// SetAPIKey. Requests without a key fail with ErrAPIKeyRequired before
// anything is sent. A key that is not 32 hexadecimal characters only logs
// a warning.
//
// The key can be read from the environment explicitly:
//
//	key, name, ok := lastfm.APIKeyFromEnv(lastfm.OSEnv)
//
// # Error Handling
//
// Last.fm reports most failures inside an HTTP 200 response. Those and
// HTTP-level failures are both returned as *Error:
//
//	_, err := client.Artist().GetInfo(ctx, "nonexistent-artist-xyz", nil)
//	var lastfmErr *lastfm.Error
//	if errors.As(err, &lastfmErr) {
//	    fmt.Println(lastfmErr.Code, lastfmErr.StatusCode)
//	}
//
// Responses with HTTP status 408, 429, 500, 502, 503 or 504 are retried
// once; a 429 waits one second first. Nothing else is retried.
//
// # Raw Requests
//
// Methods without a typed wrapper can be called through Request:
//
//	raw, err := client.Request(ctx, "geo.getTopTracks", lastfm.Params{
//	    "country": "Germany",
//	    "limit":   10,
//	})
//
// # Last.fm API Documentation
//
// For more information about the Last.fm API:
// https://www.last.fm/api
package lastfm
