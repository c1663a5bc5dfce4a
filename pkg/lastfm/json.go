package lastfm

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Last.fm's JSON output is a mechanical translation of its XML output,
// so the same field can arrive in several shapes. The types in this file
// decode all of them; a shape they do not recognize decodes to the zero
// value rather than failing the whole response.

// FlexInt is an integer that Last.fm may send as a number or as a string.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			*n = 0
			return nil
		}
		v = int64(f)
	}
	*n = FlexInt(v)
	return nil
}

// FlexFloat is a float that Last.fm may send as a number or as a string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// FlexBool is a boolean sent as "0"/"1", 0/1 or true/false.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch unquote(data) {
	case "1", "true":
		*b = true
	default:
		*b = false
	}
	return nil
}

// List is a collection that Last.fm sends as an array, as a single object
// when there is exactly one element, or as an empty string when there are
// none. Array elements of an unexpected shape are skipped.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		*l = nil
	case data[0] == '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make(List[T], 0, len(raw))
		for _, elem := range raw {
			var item T
			if err := json.Unmarshal(elem, &item); err != nil {
				continue
			}
			items = append(items, item)
		}
		*l = items
	case data[0] == '{':
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			*l = nil
			return nil
		}
		*l = List[T]{item}
	default:
		*l = nil
	}
	return nil
}

// ArtistRef is the artist of an album or track. Depending on the
// operation Last.fm sends either a bare name or an artist object.
type ArtistRef struct {
	Name string `json:"name"`
	MBID string `json:"mbid,omitempty"`
	URL  string `json:"url,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *ArtistRef) UnmarshalJSON(data []byte) error {
	*a = ArtistRef{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &a.Name)
	case '{':
		var raw struct {
			Name string `json:"name"`
			Text string `json:"#text"`
			MBID string `json:"mbid"`
			URL  string `json:"url"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		a.Name = raw.Name
		if a.Name == "" {
			a.Name = raw.Text
		}
		a.MBID = raw.MBID
		a.URL = raw.URL
	}
	return nil
}

// Streamable reports whether a preview or full track can be streamed.
// It arrives as "0"/"1" or as {"#text": "0", "fulltrack": "0"}.
type Streamable struct {
	Preview   bool `json:"preview"`
	FullTrack bool `json:"fulltrack"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Streamable) UnmarshalJSON(data []byte) error {
	*s = Streamable{}
	data = bytes.TrimSpace(data)
	if isJSONObject(data) {
		var raw struct {
			Text      FlexBool `json:"#text"`
			FullTrack FlexBool `json:"fulltrack"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		s.Preview = bool(raw.Text)
		s.FullTrack = bool(raw.FullTrack)
		return nil
	}

	var b FlexBool
	_ = b.UnmarshalJSON(data)
	s.Preview = bool(b)
	return nil
}

func isJSONObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

// unquote strips surrounding quotes and whitespace from a scalar.
func unquote(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return strings.TrimSpace(u)
		}
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
