package library

import (
	"context"

	"github.com/yhkl-dev/navisonic/domain"
)

type Library interface {
	GetRandomSongs(ctx context.Context, count int) ([]domain.Song, error)
	SearchSongs(ctx context.Context, query string, limit int) ([]domain.Song, error)
	GetStarredSongs(ctx context.Context) ([]domain.Song, error)
	GetFavorites(ctx context.Context) (*domain.Favorites, error)
	GetPlaylists(ctx context.Context) ([]domain.Playlist, error)
	GetPlayURL(songID string) string
	GetCoverArtURL(coverArtID string) string
	Ping(ctx context.Context) error
}
