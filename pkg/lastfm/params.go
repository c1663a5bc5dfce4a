package lastfm

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/spf13/cast"
)

// Params holds the operation-specific parameters of a request.
//
// Values may be strings, numbers, booleans or an Autocorrect. A nil value,
// a nil pointer, an empty string or AutocorrectDefault means the parameter
// is absent and it is never sent.
type Params map[string]any

// Sanitize returns a copy of params without absent entries.
//
// An entry is absent when its value is nil, a nil pointer, an empty
// string or AutocorrectDefault. All other values are kept unchanged,
// including zero numbers.
// The input map is not modified.
func Sanitize(params Params) Params {
	cleaned := make(Params, len(params))
	for k, v := range params {
		if isAbsent(v) {
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}

func isAbsent(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case Autocorrect:
		return val.value() == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return true
		}
		if rv.Kind() == reflect.Pointer {
			return isAbsent(rv.Elem().Interface())
		}
	}
	return false
}

// encodeParams converts params into url.Values.
func encodeParams(params Params) (url.Values, error) {
	values := make(url.Values, len(params))
	for k, v := range params {
		switch a := v.(type) {
		case Autocorrect:
			v = a.value()
		case *Autocorrect:
			if a != nil {
				v = a.value()
			}
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("lastfm: unsupported value for parameter %q: %w", k, err)
		}
		values.Set(k, s)
	}
	return values, nil
}

// Autocorrect controls Last.fm's spelling correction of artist and track
// names. The zero value leaves the API default in place. In Params it is
// sent as autocorrect=1 or autocorrect=0.
type Autocorrect int

const (
	AutocorrectDefault Autocorrect = iota
	AutocorrectOn
	AutocorrectOff
)

func (a Autocorrect) value() any {
	switch a {
	case AutocorrectOn:
		return 1
	case AutocorrectOff:
		return 0
	default:
		return nil
	}
}

// RequestOptions are the options shared by most list operations.
// Zero values are not sent.
type RequestOptions struct {
	Limit       int         // Results per page
	Page        int         // Page number, starting at 1
	Autocorrect Autocorrect // Spelling correction of names
	User        string      // Username for per-user data
	Lang        string      // ISO 639 language for biographies and wikis
}

func (o *RequestOptions) apply(p Params) {
	if o == nil {
		return
	}
	p["limit"] = positive(o.Limit)
	p["page"] = positive(o.Page)
	p["autocorrect"] = o.Autocorrect.value()
	p["user"] = o.User
	p["lang"] = o.Lang
}

// InfoOptions are the options of the getInfo operations.
type InfoOptions struct {
	RequestOptions
	MBID     string // MusicBrainz ID, used instead of names when set
	Username string // Include the user's playcount in the response
}

func (o *InfoOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.RequestOptions.apply(p)
	p["mbid"] = o.MBID
	p["username"] = o.Username
}

// SimilarOptions are the options of the getSimilar operations.
type SimilarOptions struct {
	RequestOptions
	MBID string
}

func (o *SimilarOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.RequestOptions.apply(p)
	p["mbid"] = o.MBID
}

// TopTagsOptions are the options of the per-resource getTopTags operations.
type TopTagsOptions struct {
	RequestOptions
	MBID string
}

func (o *TopTagsOptions) apply(p Params) {
	if o == nil {
		return
	}
	o.RequestOptions.apply(p)
	p["mbid"] = o.MBID
}

// SearchOptions are the options of the search operations.
type SearchOptions struct {
	Limit int
	Page  int
}

func (o *SearchOptions) apply(p Params) {
	if o == nil {
		return
	}
	p["limit"] = positive(o.Limit)
	p["page"] = positive(o.Page)
}

// positive maps non-positive counts to absent.
func positive(n int) any {
	if n <= 0 {
		return nil
	}
	return n
}
