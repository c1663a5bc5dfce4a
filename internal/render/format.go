package render

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/jfmyers9/lfm/pkg/lastfm"
)

// rank returns the 1-based position of an entry, preferring the rank
// Last.fm reported.
func rank(attr *lastfm.RankAttr, i, base int) string {
	if attr != nil && attr.Rank > 0 {
		return strconv.FormatInt(int64(attr.Rank), 10)
	}
	return strconv.Itoa(base + i + 1)
}

// offset returns the number of entries on pages before attr.Page.
func offset(attr lastfm.PageAttr) int {
	if attr.Page <= 1 || attr.PerPage <= 0 {
		return 0
	}
	return int((attr.Page - 1) * attr.PerPage)
}

func formatMatch(m lastfm.FlexFloat) string {
	if m <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", float64(m))
}

// ArtistTable lays out a list of artists. The match column is shown for
// similarity results.
func ArtistTable(artists []lastfm.Artist, attr lastfm.PageAttr, width int) *Table {
	withMatch := false
	for _, a := range artists {
		if a.Match > 0 {
			withMatch = true
			break
		}
	}

	t := &Table{
		Headers:    []string{"#", "ARTIST", "LISTENERS", "PLAYS"},
		Width:      width,
		RightAlign: map[int]bool{0: true, 2: true, 3: true},
	}
	if withMatch {
		t.Headers = append(t.Headers, "MATCH")
		t.RightAlign[4] = true
	}

	for i, a := range artists {
		row := []string{
			rank(a.Attr, i, offset(attr)),
			a.Name,
			FormatCount(int64(a.Listeners)),
			FormatCount(int64(a.Playcount)),
		}
		if withMatch {
			row = append(row, formatMatch(a.Match))
		}
		t.AddRow(row...)
	}
	return t
}

// AlbumTable lays out a list of albums.
func AlbumTable(albums []lastfm.Album, attr lastfm.PageAttr, width int) *Table {
	t := &Table{
		Headers:    []string{"#", "ALBUM", "ARTIST", "PLAYS"},
		Width:      width,
		RightAlign: map[int]bool{0: true, 3: true},
	}
	for i, a := range albums {
		t.AddRow(
			rank(a.Attr, i, offset(attr)),
			a.Name,
			a.Artist.Name,
			FormatCount(int64(a.Playcount)),
		)
	}
	return t
}

// TrackTable lays out a list of tracks. The match column is shown for
// similarity results.
func TrackTable(tracks []lastfm.Track, attr lastfm.PageAttr, width int) *Table {
	withMatch := false
	for _, tr := range tracks {
		if tr.Match > 0 {
			withMatch = true
			break
		}
	}

	t := &Table{
		Headers:    []string{"#", "TRACK", "ARTIST", "LISTENERS"},
		Width:      width,
		RightAlign: map[int]bool{0: true, 3: true},
	}
	if withMatch {
		t.Headers = append(t.Headers, "MATCH")
		t.RightAlign[4] = true
	}

	for i, tr := range tracks {
		row := []string{
			rank(tr.Attr, i, offset(attr)),
			tr.Name,
			tr.Artist.Name,
			FormatCount(int64(tr.Listeners)),
		}
		if withMatch {
			row = append(row, formatMatch(tr.Match))
		}
		t.AddRow(row...)
	}
	return t
}

// TagTable lays out a list of tags. Last.fm reports per-resource tags
// with a count and global tags with reach and taggings.
func TagTable(tags []lastfm.Tag, width int) *Table {
	t := &Table{
		Headers:    []string{"#", "TAG", "COUNT"},
		Width:      width,
		RightAlign: map[int]bool{0: true, 2: true},
	}
	for i, tag := range tags {
		count := tag.Count
		if count == 0 {
			count = tag.Reach
		}
		if count == 0 {
			count = tag.Taggings
		}
		t.AddRow(strconv.Itoa(i+1), tag.Name, FormatCount(int64(count)))
	}
	return t
}

// Pair is one line of an info page.
type Pair struct {
	Label string
	Value string
}

// writeInfo writes labelled values followed by an optional wrapped text.
func writeInfo(w io.Writer, title string, pairs []Pair, text string, width int) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	t := &Table{Width: width}
	for _, p := range pairs {
		if p.Value == "" {
			continue
		}
		t.AddRow(p.Label+":", p.Value)
	}
	if err := t.Render(w); err != nil {
		return err
	}

	if text = CleanSummary(text); text != "" {
		wrapWidth := width
		if wrapWidth <= 0 {
			wrapWidth = DefaultWidth
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", Wrap(text, wrapWidth)); err != nil {
			return err
		}
	}
	return nil
}

func tagNames(tags *lastfm.Tags) string {
	if tags == nil {
		return ""
	}
	names := make([]string, 0, len(tags.Tag))
	for _, t := range tags.Tag {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

func userPlays(stats *lastfm.Stats) string {
	if stats == nil || stats.UserPlaycount == 0 {
		return ""
	}
	return FormatCount(int64(stats.UserPlaycount))
}

// ArtistInfo writes an artist info page.
func ArtistInfo(w io.Writer, a lastfm.Artist, width int) error {
	var listeners, plays string
	if a.Stats != nil {
		listeners = FormatCount(int64(a.Stats.Listeners))
		plays = FormatCount(int64(a.Stats.Playcount))
	}

	var similar []string
	if a.Similar != nil {
		for _, s := range a.Similar.Artist {
			similar = append(similar, s.Name)
		}
	}

	var onTour string
	if a.OnTour {
		onTour = "yes"
	}

	var bio string
	if a.Bio != nil {
		bio = a.Bio.Summary
	}

	return writeInfo(w, a.Name, []Pair{
		{"Listeners", listeners},
		{"Plays", plays},
		{"Your plays", userPlays(a.Stats)},
		{"On tour", onTour},
		{"Tags", tagNames(a.Tags)},
		{"Similar", strings.Join(similar, ", ")},
		{"MBID", a.MBID},
		{"URL", a.URL},
	}, bio, width)
}

// AlbumInfo writes an album info page including its track listing.
func AlbumInfo(w io.Writer, a lastfm.Album, width int) error {
	var summary string
	if a.Wiki != nil {
		summary = a.Wiki.Summary
	}

	err := writeInfo(w, a.Name+" by "+a.Artist.Name, []Pair{
		{"Listeners", FormatCount(int64(a.Listeners))},
		{"Plays", FormatCount(int64(a.Playcount))},
		{"Tags", tagNames(a.Tags)},
		{"MBID", a.MBID},
		{"URL", a.URL},
	}, summary, width)
	if err != nil {
		return err
	}

	if a.Tracks == nil || len(a.Tracks.Track) == 0 {
		return nil
	}

	t := &Table{
		Headers:    []string{"#", "TRACK", "LENGTH"},
		Width:      width,
		RightAlign: map[int]bool{0: true, 2: true},
	}
	for i, tr := range a.Tracks.Track {
		t.AddRow(rank(tr.Attr, i, 0), tr.Name, FormatDuration(int64(tr.Duration)))
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return t.Render(w)
}

// TrackInfo writes a track info page.
func TrackInfo(w io.Writer, tr lastfm.Track, width int) error {
	var album string
	if tr.Album != nil {
		album = tr.Album.Title
	}

	var summary string
	if tr.Wiki != nil {
		summary = tr.Wiki.Summary
	}

	// track.getInfo reports duration in milliseconds
	return writeInfo(w, tr.Name+" by "+tr.Artist.Name, []Pair{
		{"Album", album},
		{"Length", FormatDuration(int64(tr.Duration) / 1000)},
		{"Listeners", FormatCount(int64(tr.Listeners))},
		{"Plays", FormatCount(int64(tr.Playcount))},
		{"Tags", tagNames(tr.TopTags)},
		{"MBID", tr.MBID},
		{"URL", tr.URL},
	}, summary, width)
}

// TagInfo writes a tag info page.
func TagInfo(w io.Writer, tag lastfm.Tag, width int) error {
	var summary string
	if tag.Wiki != nil {
		summary = tag.Wiki.Summary
	}

	return writeInfo(w, tag.Name, []Pair{
		{"Reach", FormatCount(int64(tag.Reach))},
		{"Taggings", FormatCount(int64(tag.Total))},
		{"URL", tag.URL},
	}, summary, width)
}

// FormatDuration formats seconds as m:ss. Zero renders as "-".
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

var readMoreLink = regexp.MustCompile(`\s*<a href="[^"]*">Read more on Last\.fm</a>\.?`)

// CleanSummary strips the "Read more on Last.fm" link Last.fm appends to
// every summary.
func CleanSummary(s string) string {
	return strings.TrimSpace(readMoreLink.ReplaceAllString(s, ""))
}
