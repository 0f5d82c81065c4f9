package subsonic

import "time"

// Child is a song, video, podcast episode or directory entry.
type Child struct {
	ID                    string            `json:"id"`
	Parent                string            `json:"parent,omitempty"`
	IsDir                 bool              `json:"isDir"`
	Title                 string            `json:"title"`
	Album                 string            `json:"album,omitempty"`
	Artist                string            `json:"artist,omitempty"`
	Track                 int               `json:"track,omitempty"`
	Year                  int               `json:"year,omitempty"`
	Genre                 string            `json:"genre,omitempty"`
	CoverArt              string            `json:"coverArt,omitempty"`
	Size                  int64             `json:"size,omitempty"`
	ContentType           string            `json:"contentType,omitempty"`
	Suffix                string            `json:"suffix,omitempty"`
	TranscodedContentType string            `json:"transcodedContentType,omitempty"`
	TranscodedSuffix      string            `json:"transcodedSuffix,omitempty"`
	Duration              int               `json:"duration,omitempty"` // in seconds
	BitRate               int               `json:"bitRate,omitempty"`
	BitDepth              int               `json:"bitDepth,omitempty"`
	SamplingRate          int               `json:"samplingRate,omitempty"`
	ChannelCount          int               `json:"channelCount,omitempty"`
	Path                  string            `json:"path,omitempty"`
	IsVideo               bool              `json:"isVideo,omitempty"`
	UserRating            int               `json:"userRating,omitempty"`
	AverageRating         float64           `json:"averageRating,omitempty"`
	PlayCount             int64             `json:"playCount,omitempty"`
	DiscNumber            int               `json:"discNumber,omitempty"`
	Created               Millis            `json:"created,omitempty"`
	Starred               *time.Time        `json:"starred,omitempty"`
	Played                *time.Time        `json:"played,omitempty"`
	AlbumID               string            `json:"albumId,omitempty"`
	ArtistID              string            `json:"artistId,omitempty"`
	Type                  string            `json:"type,omitempty"`
	MediaType             string            `json:"mediaType,omitempty"`
	BookmarkPosition      int64             `json:"bookmarkPosition,omitempty"`
	BPM                   int               `json:"bpm,omitempty"`
	Comment               string            `json:"comment,omitempty"`
	SortName              string            `json:"sortName,omitempty"`
	MusicBrainzID         string            `json:"musicBrainzId,omitempty"`
	Genres                List[ItemGenre]   `json:"genres"`
	Artists               List[ArtistID3]   `json:"artists"`
	DisplayArtist         string            `json:"displayArtist,omitempty"`
	AlbumArtists          List[ArtistID3]   `json:"albumArtists"`
	DisplayAlbumArtist    string            `json:"displayAlbumArtist,omitempty"`
	Moods                 List[string]      `json:"moods"`
	ReplayGain            *ReplayGain       `json:"replayGain,omitempty"`
	Contributors          List[Contributor] `json:"contributors"`
}

// ItemGenre is one genre of a multi-genre item.
type ItemGenre struct {
	Name string `json:"name"`
}

// Contributor credits an artist with a role on a song.
type Contributor struct {
	Role    string    `json:"role"`
	SubRole string    `json:"subRole,omitempty"`
	Artist  ArtistID3 `json:"artist"`
}

type ReplayGain struct {
	TrackGain    float64 `json:"trackGain,omitempty"`
	AlbumGain    float64 `json:"albumGain,omitempty"`
	TrackPeak    float64 `json:"trackPeak,omitempty"`
	AlbumPeak    float64 `json:"albumPeak,omitempty"`
	BaseGain     float64 `json:"baseGain,omitempty"`
	FallbackGain float64 `json:"fallbackGain,omitempty"`
}

// Artist is a folder-based artist.
type Artist struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	ArtistImageURL string     `json:"artistImageUrl,omitempty"`
	Starred        *time.Time `json:"starred,omitempty"`
	UserRating     int        `json:"userRating,omitempty"`
	AverageRating  float64    `json:"averageRating,omitempty"`
}

// ArtistID3 is an artist organized by ID3 tags.
type ArtistID3 struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	CoverArt       string       `json:"coverArt,omitempty"`
	ArtistImageURL string       `json:"artistImageUrl,omitempty"`
	AlbumCount     int          `json:"albumCount,omitempty"`
	Starred        *time.Time   `json:"starred,omitempty"`
	MusicBrainzID  string       `json:"musicBrainzId,omitempty"`
	SortName       string       `json:"sortName,omitempty"`
	Roles          List[string] `json:"roles"`
}

type ArtistWithAlbumsID3 struct {
	ArtistID3
	Album List[AlbumID3] `json:"album"`
}

// AlbumID3 is an album organized by ID3 tags.
type AlbumID3 struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Artist              string            `json:"artist,omitempty"`
	ArtistID            string            `json:"artistId,omitempty"`
	CoverArt            string            `json:"coverArt,omitempty"`
	SongCount           int               `json:"songCount"`
	Duration            int               `json:"duration"`
	PlayCount           int64             `json:"playCount,omitempty"`
	Created             Millis            `json:"created"`
	Starred             *time.Time        `json:"starred,omitempty"`
	Played              *time.Time        `json:"played,omitempty"`
	Year                int               `json:"year,omitempty"`
	Genre               string            `json:"genre,omitempty"`
	UserRating          int               `json:"userRating,omitempty"`
	IsCompilation       bool              `json:"isCompilation,omitempty"`
	MusicBrainzID       string            `json:"musicBrainzId,omitempty"`
	DisplayArtist       string            `json:"displayArtist,omitempty"`
	SortName            string            `json:"sortName,omitempty"`
	Genres              List[ItemGenre]   `json:"genres"`
	Artists             List[ArtistID3]   `json:"artists"`
	RecordLabels        List[RecordLabel] `json:"recordLabels"`
	ReleaseTypes        List[string]      `json:"releaseTypes"`
	Moods               List[string]      `json:"moods"`
	DiscTitles          List[DiscTitle]   `json:"discTitles"`
	OriginalReleaseDate ItemDate          `json:"originalReleaseDate"`
	ReleaseDate         ItemDate          `json:"releaseDate"`
}

type AlbumWithSongsID3 struct {
	AlbumID3
	Song List[Child] `json:"song"`
}

type RecordLabel struct {
	Name string `json:"name"`
}

type DiscTitle struct {
	Disc  int    `json:"disc"`
	Title string `json:"title"`
}

// ItemDate is a partial date; any part may be zero.
type ItemDate struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
}

type MusicFolder struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type MusicFolders struct {
	MusicFolder List[MusicFolder] `json:"musicFolder"`
}

type Index struct {
	Name   string       `json:"name"`
	Artist List[Artist] `json:"artist"`
}

type Indexes struct {
	LastModified    Millis       `json:"lastModified"`
	IgnoredArticles string       `json:"ignoredArticles"`
	Shortcut        List[Artist] `json:"shortcut"`
	Index           List[Index]  `json:"index"`
	Child           List[Child]  `json:"child"`
}

type IndexID3 struct {
	Name   string          `json:"name"`
	Artist List[ArtistID3] `json:"artist"`
}

type ArtistsID3 struct {
	IgnoredArticles string         `json:"ignoredArticles"`
	Index           List[IndexID3] `json:"index"`
}

type Directory struct {
	ID            string      `json:"id"`
	Parent        string      `json:"parent,omitempty"`
	Name          string      `json:"name"`
	Starred       *time.Time  `json:"starred,omitempty"`
	UserRating    int         `json:"userRating,omitempty"`
	AverageRating float64     `json:"averageRating,omitempty"`
	PlayCount     int64       `json:"playCount,omitempty"`
	Child         List[Child] `json:"child"`
}

// Genre carries its name as element text in XML and as "value" in JSON.
type Genre struct {
	Value      string `json:"value"`
	SongCount  int    `json:"songCount"`
	AlbumCount int    `json:"albumCount"`
}

type Genres struct {
	Genre List[Genre] `json:"genre"`
}

type Videos struct {
	Video List[Child] `json:"video"`
}

type ArtistInfoBase struct {
	Biography      string `json:"biography,omitempty"`
	MusicBrainzID  string `json:"musicBrainzId,omitempty"`
	LastFmURL      string `json:"lastFmUrl,omitempty"`
	SmallImageURL  string `json:"smallImageUrl,omitempty"`
	MediumImageURL string `json:"mediumImageUrl,omitempty"`
	LargeImageURL  string `json:"largeImageUrl,omitempty"`
}

type ArtistInfo struct {
	ArtistInfoBase
	SimilarArtist List[Artist] `json:"similarArtist"`
}

type ArtistInfo2 struct {
	ArtistInfoBase
	SimilarArtist List[ArtistID3] `json:"similarArtist"`
}

type AlbumInfo struct {
	Notes          string `json:"notes,omitempty"`
	MusicBrainzID  string `json:"musicBrainzId,omitempty"`
	LastFmURL      string `json:"lastFmUrl,omitempty"`
	SmallImageURL  string `json:"smallImageUrl,omitempty"`
	MediumImageURL string `json:"mediumImageUrl,omitempty"`
	LargeImageURL  string `json:"largeImageUrl,omitempty"`
}

// Songs is the shape shared by randomSongs, songsByGenre, similarSongs and
// topSongs.
type Songs struct {
	Song List[Child] `json:"song"`
}

type AlbumList struct {
	Album List[Child] `json:"album"`
}

type AlbumList2 struct {
	Album List[AlbumID3] `json:"album"`
}

type NowPlayingEntry struct {
	Child
	Username   string `json:"username"`
	MinutesAgo int    `json:"minutesAgo"`
	PlayerID   int    `json:"playerId"`
	PlayerName string `json:"playerName,omitempty"`
}

type NowPlaying struct {
	Entry List[NowPlayingEntry] `json:"entry"`
}

type Starred struct {
	Artist List[Artist]   `json:"artist"`
	Album  List[AlbumID3] `json:"album"`
	Song   List[Child]    `json:"song"`
}

type Starred2 struct {
	Artist List[ArtistID3] `json:"artist"`
	Album  List[AlbumID3]  `json:"album"`
	Song   List[Child]     `json:"song"`
}

type SearchResult2 struct {
	Artist List[Artist] `json:"artist"`
	Album  List[Child]  `json:"album"`
	Song   List[Child]  `json:"song"`
}

type SearchResult3 struct {
	Artist List[ArtistID3] `json:"artist"`
	Album  List[AlbumID3]  `json:"album"`
	Song   List[Child]     `json:"song"`
}

type Playlist struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Comment     string       `json:"comment,omitempty"`
	Owner       string       `json:"owner,omitempty"`
	Public      bool         `json:"public"`
	SongCount   int          `json:"songCount"`
	Duration    int          `json:"duration"`
	Created     Millis       `json:"created"`
	Changed     Millis       `json:"changed"`
	CoverArt    string       `json:"coverArt,omitempty"`
	AllowedUser List[string] `json:"allowedUser"`
}

type PlaylistWithSongs struct {
	Playlist
	Entry List[Child] `json:"entry"`
}

type Playlists struct {
	Playlist List[Playlist] `json:"playlist"`
}

// JukeboxStatus is the state of the server-side jukebox player.
type JukeboxStatus struct {
	CurrentIndex int     `json:"currentIndex"`
	Playing      bool    `json:"playing"`
	Gain         float64 `json:"gain"`
	Position     int     `json:"position"`
}

// JukeboxPlaylist is the jukebox state plus its queue.
type JukeboxPlaylist struct {
	JukeboxStatus
	Entry List[Child] `json:"entry"`
}

type PodcastEpisode struct {
	Child
	StreamID    string `json:"streamId,omitempty"`
	ChannelID   string `json:"channelId"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	PublishDate Millis `json:"publishDate"`
}

type PodcastChannel struct {
	ID               string               `json:"id"`
	URL              string               `json:"url"`
	Title            string               `json:"title,omitempty"`
	Description      string               `json:"description,omitempty"`
	CoverArt         string               `json:"coverArt,omitempty"`
	OriginalImageURL string               `json:"originalImageUrl,omitempty"`
	Status           string               `json:"status"`
	ErrorMessage     string               `json:"errorMessage,omitempty"`
	Episode          List[PodcastEpisode] `json:"episode"`
}

type Podcasts struct {
	Channel List[PodcastChannel] `json:"channel"`
}

type NewestPodcasts struct {
	Episode List[PodcastEpisode] `json:"episode"`
}

type InternetRadioStation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StreamURL   string `json:"streamUrl"`
	HomePageURL string `json:"homePageUrl,omitempty"`
}

type InternetRadioStations struct {
	InternetRadioStation List[InternetRadioStation] `json:"internetRadioStation"`
}

type Bookmark struct {
	Position int64  `json:"position"` // in milliseconds
	Username string `json:"username"`
	Comment  string `json:"comment,omitempty"`
	Created  Millis `json:"created"`
	Changed  Millis `json:"changed"`
	Entry    Child  `json:"entry"`
}

type Bookmarks struct {
	Bookmark List[Bookmark] `json:"bookmark"`
}

type PlayQueue struct {
	Current   string      `json:"current,omitempty"`
	Position  int64       `json:"position,omitempty"` // in milliseconds
	Username  string      `json:"username"`
	Changed   Millis      `json:"changed"`
	ChangedBy string      `json:"changedBy"`
	Entry     List[Child] `json:"entry"`
}

type Share struct {
	ID          string      `json:"id"`
	URL         string      `json:"url"`
	Description string      `json:"description,omitempty"`
	Username    string      `json:"username"`
	Created     Millis      `json:"created"`
	Expires     *time.Time  `json:"expires,omitempty"`
	LastVisited *time.Time  `json:"lastVisited,omitempty"`
	VisitCount  int         `json:"visitCount"`
	Entry       List[Child] `json:"entry"`
}

type Shares struct {
	Share List[Share] `json:"share"`
}

type ChatMessage struct {
	Username string `json:"username"`
	Time     Millis `json:"time"`
	Message  string `json:"message"`
}

type ChatMessages struct {
	ChatMessage List[ChatMessage] `json:"chatMessage"`
}

type User struct {
	Username            string     `json:"username"`
	Email               string     `json:"email,omitempty"`
	ScrobblingEnabled   bool       `json:"scrobblingEnabled"`
	MaxBitRate          int        `json:"maxBitRate,omitempty"`
	AdminRole           bool       `json:"adminRole"`
	SettingsRole        bool       `json:"settingsRole"`
	DownloadRole        bool       `json:"downloadRole"`
	UploadRole          bool       `json:"uploadRole"`
	PlaylistRole        bool       `json:"playlistRole"`
	CoverArtRole        bool       `json:"coverArtRole"`
	CommentRole         bool       `json:"commentRole"`
	PodcastRole         bool       `json:"podcastRole"`
	StreamRole          bool       `json:"streamRole"`
	JukeboxRole         bool       `json:"jukeboxRole"`
	ShareRole           bool       `json:"shareRole"`
	VideoConversionRole bool       `json:"videoConversionRole"`
	AvatarLastChanged   *time.Time `json:"avatarLastChanged,omitempty"`
	Folder              List[int]  `json:"folder"`
}

type Users struct {
	User List[User] `json:"user"`
}

type ScanStatus struct {
	Scanning    bool       `json:"scanning"`
	Count       int64      `json:"count"`
	FolderCount int64      `json:"folderCount,omitempty"`
	LastScan    *time.Time `json:"lastScan,omitempty"`
}

type License struct {
	Valid          bool       `json:"valid"`
	Email          string     `json:"email,omitempty"`
	LicenseExpires *time.Time `json:"licenseExpires,omitempty"`
	TrialExpires   *time.Time `json:"trialExpires,omitempty"`
}

type OpenSubsonicExtension struct {
	Name     string    `json:"name"`
	Versions List[int] `json:"versions"`
}

// Lyrics is the legacy getLyrics result; the text is carried as "value".
type Lyrics struct {
	Artist string `json:"artist,omitempty"`
	Title  string `json:"title,omitempty"`
	Value  string `json:"value"`
}

type LyricLine struct {
	Start *int64 `json:"start,omitempty"` // in milliseconds
	Value string `json:"value"`
}

type StructuredLyrics struct {
	Lang          string          `json:"lang"`
	Synced        bool            `json:"synced"`
	DisplayArtist string          `json:"displayArtist,omitempty"`
	DisplayTitle  string          `json:"displayTitle,omitempty"`
	Offset        int             `json:"offset,omitempty"`
	Line          List[LyricLine] `json:"line"`
}

type LyricsList struct {
	StructuredLyrics List[StructuredLyrics] `json:"structuredLyrics"`
}
