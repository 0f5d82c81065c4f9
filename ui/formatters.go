package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/yhkl-dev/navisonic/domain"
)

// FormatDuration converts seconds to MM:SS format
func FormatDuration(seconds int) string {
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatTechInfo summarizes bitrate and sample rate, e.g. "320 kbps | 44.1 kHz".
func FormatTechInfo(track domain.Song) string {
	var parts []string
	if track.BitRate > 0 {
		parts = append(parts, fmt.Sprintf("%d kbps", track.BitRate))
	}
	if track.SampleRate > 0 {
		parts = append(parts, fmt.Sprintf("%.1f kHz", float64(track.SampleRate)/1000))
	}
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, " | ")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteSongs prints one numbered row per song.
func WriteSongs(w io.Writer, songs []domain.Song) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tTITLE\tARTIST\tALBUM\tTIME\tFORMAT\tQUALITY")
	for i, s := range songs {
		format := s.Suffix
		if format == "" {
			format = "unknown"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, s.Title, s.Artist, s.Album, FormatDuration(s.Duration), format, FormatTechInfo(s))
	}
	return tw.Flush()
}

func WritePlaylists(w io.Writer, playlists []domain.Playlist) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tOWNER\tSONGS\tTIME\tCHANGED")
	for _, p := range playlists {
		name := p.Name
		if p.Public {
			name += " (public)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			p.ID, name, p.Owner, p.SongCount, FormatDuration(p.Duration), formatDate(p.Changed))
	}
	return tw.Flush()
}

// WriteFavorites prints starred artists and albums, then the starred songs.
func WriteFavorites(w io.Writer, f *domain.Favorites) error {
	fmt.Fprintf(w, "Artists (%d)\n", len(f.Artists))
	for _, a := range f.Artists {
		fmt.Fprintf(w, "  %s\n", a.Name)
	}
	fmt.Fprintf(w, "Albums (%d)\n", len(f.Albums))
	for _, a := range f.Albums {
		fmt.Fprintf(w, "  %s - %s\n", a.Artist, a.Name)
	}
	fmt.Fprintf(w, "Songs (%d)\n", len(f.Songs))
	if len(f.Songs) == 0 {
		return nil
	}
	return WriteSongs(w, f.Songs)
}
