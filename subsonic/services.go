package subsonic

import (
	"context"
	"io"
	"net/url"
	"strconv"
)

// Feature areas of the API. *Client implements all of them; callers can depend
// on the narrow interface they need.

type SystemService interface {
	Ping(ctx context.Context) error
	Connect(ctx context.Context) (*Envelope, error)
	GetLicense(ctx context.Context) (*License, error)
	GetOpenSubsonicExtensions(ctx context.Context) ([]OpenSubsonicExtension, error)
}

type BrowsingService interface {
	GetMusicFolders(ctx context.Context) ([]MusicFolder, error)
	GetIndexes(ctx context.Context, musicFolderID string, ifModifiedSince Millis) (*Indexes, error)
	GetMusicDirectory(ctx context.Context, id string) (*Directory, error)
	GetGenres(ctx context.Context) ([]Genre, error)
	GetArtists(ctx context.Context, musicFolderID string) (*ArtistsID3, error)
	GetArtist(ctx context.Context, id string) (*ArtistWithAlbumsID3, error)
	GetAlbum(ctx context.Context, id string) (*AlbumWithSongsID3, error)
	GetSong(ctx context.Context, id string) (*Child, error)
	GetVideos(ctx context.Context) ([]Child, error)
	GetArtistInfo(ctx context.Context, id string, count int, includeNotPresent bool) (*ArtistInfo, error)
	GetArtistInfo2(ctx context.Context, id string, count int, includeNotPresent bool) (*ArtistInfo2, error)
	GetAlbumInfo(ctx context.Context, id string) (*AlbumInfo, error)
	GetAlbumInfo2(ctx context.Context, id string) (*AlbumInfo, error)
	GetSimilarSongs(ctx context.Context, id string, count int) ([]Child, error)
	GetSimilarSongs2(ctx context.Context, id string, count int) ([]Child, error)
	GetTopSongs(ctx context.Context, artist string, count int) ([]Child, error)
}

type ListsService interface {
	GetAlbumList(ctx context.Context, opts AlbumListOptions) ([]Child, error)
	GetAlbumList2(ctx context.Context, opts AlbumListOptions) ([]AlbumID3, error)
	GetRandomSongs(ctx context.Context, opts RandomSongsOptions) ([]Child, error)
	GetSongsByGenre(ctx context.Context, genre string, count, offset int, musicFolderID string) ([]Child, error)
	GetNowPlaying(ctx context.Context) ([]NowPlayingEntry, error)
	GetStarred(ctx context.Context, musicFolderID string) (*Starred, error)
	GetStarred2(ctx context.Context, musicFolderID string) (*Starred2, error)
}

type SearchingService interface {
	Search2(ctx context.Context, query string, opts SearchOptions) (*SearchResult2, error)
	Search3(ctx context.Context, query string, opts SearchOptions) (*SearchResult3, error)
}

type PlaylistsService interface {
	GetPlaylists(ctx context.Context, username string) ([]Playlist, error)
	GetPlaylist(ctx context.Context, id string) (*PlaylistWithSongs, error)
	CreatePlaylist(ctx context.Context, name string, songIDs []string) (*PlaylistWithSongs, error)
	UpdatePlaylist(ctx context.Context, id string, update PlaylistUpdate) error
	DeletePlaylist(ctx context.Context, id string) error
}

type MediaService interface {
	StreamURL(id string, opts StreamOptions) string
	DownloadURL(id string) string
	CoverArtURL(id string, size int) string
	Stream(ctx context.Context, id string, opts StreamOptions) (io.ReadCloser, string, error)
	Download(ctx context.Context, id string) (io.ReadCloser, string, error)
	GetCoverArt(ctx context.Context, id string, size int) (io.ReadCloser, string, error)
	GetLyrics(ctx context.Context, artist, title string) (*Lyrics, error)
	GetLyricsBySongID(ctx context.Context, id string) ([]StructuredLyrics, error)
}

type AnnotationService interface {
	Star(ctx context.Context, ids StarIDs) error
	Unstar(ctx context.Context, ids StarIDs) error
	SetRating(ctx context.Context, id string, rating int) error
	Scrobble(ctx context.Context, id string, at Millis, submission bool) error
}

type BookmarksService interface {
	GetBookmarks(ctx context.Context) ([]Bookmark, error)
	CreateBookmark(ctx context.Context, id string, position int64, comment string) error
	DeleteBookmark(ctx context.Context, id string) error
	GetPlayQueue(ctx context.Context) (*PlayQueue, error)
	SavePlayQueue(ctx context.Context, ids []string, current string, position int64) error
}

type JukeboxService interface {
	JukeboxStatus(ctx context.Context) (*JukeboxStatus, error)
	JukeboxGet(ctx context.Context) (*JukeboxPlaylist, error)
	JukeboxControl(ctx context.Context, action JukeboxAction, args JukeboxArgs) (*JukeboxStatus, error)
}

type PodcastService interface {
	GetPodcasts(ctx context.Context, id string, includeEpisodes bool) ([]PodcastChannel, error)
	GetNewestPodcasts(ctx context.Context, count int) ([]PodcastEpisode, error)
	RefreshPodcasts(ctx context.Context) error
	CreatePodcastChannel(ctx context.Context, feedURL string) error
	DeletePodcastChannel(ctx context.Context, id string) error
	DeletePodcastEpisode(ctx context.Context, id string) error
	DownloadPodcastEpisode(ctx context.Context, id string) error
}

type RadioService interface {
	GetInternetRadioStations(ctx context.Context) ([]InternetRadioStation, error)
}

type SharingService interface {
	GetShares(ctx context.Context) ([]Share, error)
}

type UserService interface {
	GetUser(ctx context.Context, username string) (*User, error)
	GetUsers(ctx context.Context) ([]User, error)
}

type ScanService interface {
	GetScanStatus(ctx context.Context) (*ScanStatus, error)
	StartScan(ctx context.Context) (*ScanStatus, error)
}

type ChatService interface {
	GetChatMessages(ctx context.Context, since Millis) ([]ChatMessage, error)
	AddChatMessage(ctx context.Context, message string) error
}

var (
	_ SystemService     = (*Client)(nil)
	_ BrowsingService   = (*Client)(nil)
	_ ListsService      = (*Client)(nil)
	_ SearchingService  = (*Client)(nil)
	_ PlaylistsService  = (*Client)(nil)
	_ MediaService      = (*Client)(nil)
	_ AnnotationService = (*Client)(nil)
	_ BookmarksService  = (*Client)(nil)
	_ JukeboxService    = (*Client)(nil)
	_ PodcastService    = (*Client)(nil)
	_ RadioService      = (*Client)(nil)
	_ SharingService    = (*Client)(nil)
	_ UserService       = (*Client)(nil)
	_ ScanService       = (*Client)(nil)
	_ ChatService       = (*Client)(nil)
)

func setString(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setInt(params url.Values, key string, value int) {
	if value != 0 {
		params.Set(key, strconv.Itoa(value))
	}
}

func setInt64(params url.Values, key string, value int64) {
	if value != 0 {
		params.Set(key, strconv.FormatInt(value, 10))
	}
}

func idParams(id string) url.Values {
	return url.Values{"id": {id}}
}
