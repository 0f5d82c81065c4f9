package testkit

import (
	"context"
	"fmt"
	"strings"

	"github.com/yhkl-dev/navisonic/subsonic"
)

// API is the part of the client the checks exercise.
type API interface {
	subsonic.SystemService
	subsonic.BrowsingService
	subsonic.ListsService
	subsonic.SearchingService
	subsonic.PlaylistsService
	subsonic.ScanService
}

// Check probes one endpoint and summarizes what came back.
type Check struct {
	Name string
	Run  func(ctx context.Context, api API) (string, error)
}

// DefaultChecks covers the read-only endpoints every server implements.
func DefaultChecks() []Check {
	return []Check{
		{Name: "ping", Run: checkPing},
		{Name: "license", Run: func(ctx context.Context, api API) (string, error) {
			license, err := api.GetLicense(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("valid=%t", license.Valid), nil
		}},
		{Name: "music-folders", Run: func(ctx context.Context, api API) (string, error) {
			folders, err := api.GetMusicFolders(ctx)
			return count(len(folders), "folder"), err
		}},
		{Name: "genres", Run: func(ctx context.Context, api API) (string, error) {
			genres, err := api.GetGenres(ctx)
			return count(len(genres), "genre"), err
		}},
		{Name: "artists", Run: func(ctx context.Context, api API) (string, error) {
			artists, err := api.GetArtists(ctx, "")
			if err != nil {
				return "", err
			}
			n := 0
			for _, idx := range artists.Index {
				n += len(idx.Artist)
			}
			return count(n, "artist") + " in " + count(len(artists.Index), "index"), nil
		}},
		{Name: "album-list", Run: func(ctx context.Context, api API) (string, error) {
			albums, err := api.GetAlbumList2(ctx, subsonic.AlbumListOptions{Type: subsonic.AlbumListNewest, Size: 10})
			return count(len(albums), "album"), err
		}},
		{Name: "random-songs", Run: func(ctx context.Context, api API) (string, error) {
			songs, err := api.GetRandomSongs(ctx, subsonic.RandomSongsOptions{Size: 10})
			return count(len(songs), "song"), err
		}},
		{Name: "starred", Run: func(ctx context.Context, api API) (string, error) {
			starred, err := api.GetStarred2(ctx, "")
			if err != nil {
				return "", err
			}
			return strings.Join([]string{
				count(len(starred.Artist), "artist"),
				count(len(starred.Album), "album"),
				count(len(starred.Song), "song"),
			}, ", "), nil
		}},
		{Name: "search", Run: func(ctx context.Context, api API) (string, error) {
			result, err := api.Search3(ctx, "", subsonic.SearchOptions{ArtistCount: 1, AlbumCount: 1, SongCount: 1})
			if err != nil {
				return "", err
			}
			return count(len(result.Artist)+len(result.Album)+len(result.Song), "hit"), nil
		}},
		{Name: "playlists", Run: func(ctx context.Context, api API) (string, error) {
			playlists, err := api.GetPlaylists(ctx, "")
			return count(len(playlists), "playlist"), err
		}},
		{Name: "now-playing", Run: func(ctx context.Context, api API) (string, error) {
			entries, err := api.GetNowPlaying(ctx)
			return count(len(entries), "entry"), err
		}},
		{Name: "scan-status", Run: func(ctx context.Context, api API) (string, error) {
			status, err := api.GetScanStatus(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("scanning=%t, %s", status.Scanning, count(int(status.Count), "file")), nil
		}},
	}
}

func checkPing(ctx context.Context, api API) (string, error) {
	env, err := api.Connect(ctx)
	if err != nil {
		return "", err
	}
	summary := "api " + env.Version
	if env.Type != "" {
		summary += ", " + strings.TrimSpace(env.Type+" "+env.ServerVersion)
	}
	if env.OpenSubsonic {
		summary += ", opensubsonic"
	}
	return summary, nil
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	switch {
	case strings.HasSuffix(noun, "x"):
		return fmt.Sprintf("%d %ses", n, noun)
	case strings.HasSuffix(noun, "ry"):
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(noun, "y"))
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
