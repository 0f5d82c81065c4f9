package domain

import "time"

// Song represents a music track with metadata
type Song struct {
	ID           string
	Title        string
	Album        string
	Artist       string
	Duration     int // in seconds
	Track        int
	CoverArt     string
	Size         int64
	ContentType  string
	Suffix       string
	BitRate      int
	Path         string
	PlayCount    int64
	Created      time.Time
	AlbumID      string
	ArtistID     string
	IsVideo      bool
	Starred      *time.Time
	Played       *time.Time
	ChannelCount int
	SampleRate   int
	Genres       []string
}

// Album is an ID3 album without its tracks.
type Album struct {
	ID        string
	Name      string
	Artist    string
	ArtistID  string
	CoverArt  string
	SongCount int
	Duration  int // in seconds
	Year      int
	Created   time.Time
	Starred   *time.Time
}

type Artist struct {
	ID         string
	Name       string
	AlbumCount int
	Starred    *time.Time
}

// Playlist is a playlist summary.
type Playlist struct {
	ID        string
	Name      string
	Owner     string
	Public    bool
	SongCount int
	Duration  int // in seconds
	Created   time.Time
	Changed   time.Time
}

// Favorites groups everything the user starred.
type Favorites struct {
	Artists []Artist
	Albums  []Album
	Songs   []Song
}
