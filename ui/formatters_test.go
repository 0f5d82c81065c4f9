package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/yhkl-dev/navisonic/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{0: "00:00", 59: "00:59", 231: "03:51", 3600: "60:00"}
	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatTechInfo(t *testing.T) {
	tests := []struct {
		song domain.Song
		want string
	}{
		{domain.Song{}, "N/A"},
		{domain.Song{BitRate: 320}, "320 kbps"},
		{domain.Song{SampleRate: 44100}, "44.1 kHz"},
		{domain.Song{BitRate: 1411, SampleRate: 96000}, "1411 kbps | 96.0 kHz"},
	}
	for _, tt := range tests {
		if got := FormatTechInfo(tt.song); got != tt.want {
			t.Errorf("FormatTechInfo(%+v) = %q, want %q", tt.song, got, tt.want)
		}
	}
}

func TestWriteSongs(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSongs(&buf, []domain.Song{
		{Title: "Dancing Queen", Artist: "ABBA", Album: "Arrival", Duration: 231, Suffix: "flac"},
		{Title: "SOS", Artist: "ABBA", Duration: 200},
	})
	if err != nil {
		t.Fatalf("WriteSongs: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "#  TITLE") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "03:51") || !strings.Contains(lines[1], "flac") {
		t.Errorf("unexpected row %q", lines[1])
	}
	if !strings.Contains(lines[2], "unknown") {
		t.Errorf("expected unknown format in %q", lines[2])
	}
}

func TestWritePlaylists(t *testing.T) {
	var buf bytes.Buffer
	err := WritePlaylists(&buf, []domain.Playlist{
		{ID: "pl-1", Name: "Road trip", Public: true, SongCount: 3, Duration: 600,
			Changed: time.Date(2022, 3, 4, 0, 0, 0, 0, time.UTC)},
		{ID: "pl-2", Name: "Empty"},
	})
	if err != nil {
		t.Fatalf("WritePlaylists: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Road trip (public)", "10:00", "2022-03-04", "Empty"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteFavorites(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFavorites(&buf, &domain.Favorites{
		Artists: []domain.Artist{{Name: "ABBA"}},
		Albums:  []domain.Album{{Name: "Gold", Artist: "ABBA"}},
	})
	if err != nil {
		t.Fatalf("WriteFavorites: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Artists (1)", "  ABBA", "ABBA - Gold", "Songs (0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "TITLE") {
		t.Errorf("song table printed for no songs:\n%s", out)
	}
}
