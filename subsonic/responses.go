package subsonic

// Response shapes. Each one lists the envelope keys a single endpoint fills;
// Decode[T] reads them from the envelope object next to status and version.

type PingResponse struct{}

type LicenseResponse struct {
	License License `json:"license"`
}

type OpenSubsonicExtensionsResponse struct {
	OpenSubsonicExtensions List[OpenSubsonicExtension] `json:"openSubsonicExtensions"`
}

type MusicFoldersResponse struct {
	MusicFolders MusicFolders `json:"musicFolders"`
}

type IndexesResponse struct {
	Indexes Indexes `json:"indexes"`
}

type DirectoryResponse struct {
	Directory Directory `json:"directory"`
}

type GenresResponse struct {
	Genres Genres `json:"genres"`
}

type ArtistsResponse struct {
	Artists ArtistsID3 `json:"artists"`
}

type ArtistResponse struct {
	Artist ArtistWithAlbumsID3 `json:"artist"`
}

type AlbumResponse struct {
	Album AlbumWithSongsID3 `json:"album"`
}

type SongResponse struct {
	Song Child `json:"song"`
}

type VideosResponse struct {
	Videos Videos `json:"videos"`
}

type ArtistInfoResponse struct {
	ArtistInfo ArtistInfo `json:"artistInfo"`
}

type ArtistInfo2Response struct {
	ArtistInfo2 ArtistInfo2 `json:"artistInfo2"`
}

// AlbumInfoResponse serves both getAlbumInfo and getAlbumInfo2.
type AlbumInfoResponse struct {
	AlbumInfo AlbumInfo `json:"albumInfo"`
}

type SimilarSongsResponse struct {
	SimilarSongs Songs `json:"similarSongs"`
}

type SimilarSongs2Response struct {
	SimilarSongs2 Songs `json:"similarSongs2"`
}

type TopSongsResponse struct {
	TopSongs Songs `json:"topSongs"`
}

type AlbumListResponse struct {
	AlbumList AlbumList `json:"albumList"`
}

type AlbumList2Response struct {
	AlbumList2 AlbumList2 `json:"albumList2"`
}

type RandomSongsResponse struct {
	RandomSongs Songs `json:"randomSongs"`
}

type SongsByGenreResponse struct {
	SongsByGenre Songs `json:"songsByGenre"`
}

type NowPlayingResponse struct {
	NowPlaying NowPlaying `json:"nowPlaying"`
}

type StarredResponse struct {
	Starred Starred `json:"starred"`
}

type Starred2Response struct {
	Starred2 Starred2 `json:"starred2"`
}

type SearchResult2Response struct {
	SearchResult2 SearchResult2 `json:"searchResult2"`
}

type SearchResult3Response struct {
	SearchResult3 SearchResult3 `json:"searchResult3"`
}

type PlaylistsResponse struct {
	Playlists Playlists `json:"playlists"`
}

type PlaylistResponse struct {
	Playlist PlaylistWithSongs `json:"playlist"`
}

type LyricsResponse struct {
	Lyrics Lyrics `json:"lyrics"`
}

type LyricsListResponse struct {
	LyricsList LyricsList `json:"lyricsList"`
}

type BookmarksResponse struct {
	Bookmarks Bookmarks `json:"bookmarks"`
}

type PlayQueueResponse struct {
	PlayQueue PlayQueue `json:"playQueue"`
}

type SharesResponse struct {
	Shares Shares `json:"shares"`
}

type JukeboxStatusResponse struct {
	JukeboxStatus JukeboxStatus `json:"jukeboxStatus"`
}

type JukeboxPlaylistResponse struct {
	JukeboxPlaylist JukeboxPlaylist `json:"jukeboxPlaylist"`
}

type PodcastsResponse struct {
	Podcasts Podcasts `json:"podcasts"`
}

type NewestPodcastsResponse struct {
	NewestPodcasts NewestPodcasts `json:"newestPodcasts"`
}

type InternetRadioStationsResponse struct {
	InternetRadioStations InternetRadioStations `json:"internetRadioStations"`
}

type ChatMessagesResponse struct {
	ChatMessages ChatMessages `json:"chatMessages"`
}

type UserResponse struct {
	User User `json:"user"`
}

type UsersResponse struct {
	Users Users `json:"users"`
}

type ScanStatusResponse struct {
	ScanStatus ScanStatus `json:"scanStatus"`
}
