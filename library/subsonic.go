package library

import (
	"context"

	"github.com/yhkl-dev/navisonic/domain"
	"github.com/yhkl-dev/navisonic/subsonic"
)

// Source is the part of the Subsonic API the library is built on.
type Source interface {
	subsonic.SystemService
	subsonic.ListsService
	subsonic.SearchingService
	subsonic.PlaylistsService
	StreamURL(id string, opts subsonic.StreamOptions) string
	CoverArtURL(id string, size int) string
}

type SubsonicLibrary struct {
	client Source
}

var _ Library = (*SubsonicLibrary)(nil)

func NewSubsonicLibrary(client Source) *SubsonicLibrary {
	return &SubsonicLibrary{
		client: client,
	}
}

func (s *SubsonicLibrary) GetRandomSongs(ctx context.Context, count int) ([]domain.Song, error) {
	songs, err := s.client.GetRandomSongs(ctx, subsonic.RandomSongsOptions{Size: count})
	if err != nil {
		return nil, err
	}
	return convertToDomainSongs(songs), nil
}

func (s *SubsonicLibrary) SearchSongs(ctx context.Context, query string, limit int) ([]domain.Song, error) {
	// Only songs are wanted; a count of zero would fall back to the server default.
	result, err := s.client.Search3(ctx, query, subsonic.SearchOptions{
		ArtistCount: 1,
		AlbumCount:  1,
		SongCount:   limit,
	})
	if err != nil {
		return nil, err
	}
	return convertToDomainSongs(result.Song), nil
}

func (s *SubsonicLibrary) GetStarredSongs(ctx context.Context) ([]domain.Song, error) {
	starred, err := s.client.GetStarred2(ctx, "")
	if err != nil {
		return nil, err
	}
	return convertToDomainSongs(starred.Song), nil
}

func (s *SubsonicLibrary) GetFavorites(ctx context.Context) (*domain.Favorites, error) {
	starred, err := s.client.GetStarred2(ctx, "")
	if err != nil {
		return nil, err
	}

	favorites := &domain.Favorites{
		Artists: make([]domain.Artist, len(starred.Artist)),
		Albums:  make([]domain.Album, len(starred.Album)),
		Songs:   convertToDomainSongs(starred.Song),
	}
	for i, artist := range starred.Artist {
		favorites.Artists[i] = domain.Artist{
			ID:         artist.ID,
			Name:       artist.Name,
			AlbumCount: artist.AlbumCount,
			Starred:    artist.Starred,
		}
	}
	for i, album := range starred.Album {
		favorites.Albums[i] = convertToDomainAlbum(album)
	}
	return favorites, nil
}

func (s *SubsonicLibrary) GetPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	playlists, err := s.client.GetPlaylists(ctx, "")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Playlist, len(playlists))
	for i, p := range playlists {
		out[i] = domain.Playlist{
			ID:        p.ID,
			Name:      p.Name,
			Owner:     p.Owner,
			Public:    p.Public,
			SongCount: p.SongCount,
			Duration:  p.Duration,
			Created:   p.Created.Time(),
			Changed:   p.Changed.Time(),
		}
	}
	return out, nil
}

func (s *SubsonicLibrary) GetPlayURL(songID string) string {
	return s.client.StreamURL(songID, subsonic.StreamOptions{})
}

func (s *SubsonicLibrary) GetCoverArtURL(coverArtID string) string {
	return s.client.CoverArtURL(coverArtID, 0)
}

func (s *SubsonicLibrary) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func convertToDomainSongs(songs []subsonic.Child) []domain.Song {
	domainSongs := make([]domain.Song, len(songs))
	for i, song := range songs {
		domainSongs[i] = convertToDomainSong(song)
	}
	return domainSongs
}

func convertToDomainSong(song subsonic.Child) domain.Song {
	var genres []string
	for _, g := range song.Genres {
		genres = append(genres, g.Name)
	}
	if len(genres) == 0 && song.Genre != "" {
		genres = []string{song.Genre}
	}

	return domain.Song{
		ID:           song.ID,
		Title:        song.Title,
		Album:        song.Album,
		Artist:       song.Artist,
		Duration:     song.Duration,
		Track:        song.Track,
		CoverArt:     song.CoverArt,
		Size:         song.Size,
		ContentType:  song.ContentType,
		Suffix:       song.Suffix,
		BitRate:      song.BitRate,
		Path:         song.Path,
		PlayCount:    song.PlayCount,
		Created:      song.Created.Time(),
		AlbumID:      song.AlbumID,
		ArtistID:     song.ArtistID,
		IsVideo:      song.IsVideo,
		Starred:      song.Starred,
		Played:       song.Played,
		ChannelCount: song.ChannelCount,
		SampleRate:   song.SamplingRate,
		Genres:       genres,
	}
}

func convertToDomainAlbum(album subsonic.AlbumID3) domain.Album {
	return domain.Album{
		ID:        album.ID,
		Name:      album.Name,
		Artist:    album.Artist,
		ArtistID:  album.ArtistID,
		CoverArt:  album.CoverArt,
		SongCount: album.SongCount,
		Duration:  album.Duration,
		Year:      album.Year,
		Created:   album.Created.Time(),
		Starred:   album.Starred,
	}
}
