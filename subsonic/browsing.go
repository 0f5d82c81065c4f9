package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

func (c *Client) GetMusicFolders(ctx context.Context) ([]MusicFolder, error) {
	resp, err := fetch[MusicFoldersResponse](ctx, c, "getMusicFolders", nil)
	if err != nil {
		return nil, err
	}
	return resp.MusicFolders.MusicFolder, nil
}

// GetIndexes returns the folder-based artist index. A nonzero ifModifiedSince
// lets the server answer with an empty index when nothing changed.
func (c *Client) GetIndexes(ctx context.Context, musicFolderID string, ifModifiedSince Millis) (*Indexes, error) {
	params := url.Values{}
	setString(params, "musicFolderId", musicFolderID)
	setInt64(params, "ifModifiedSince", int64(ifModifiedSince))

	resp, err := fetch[IndexesResponse](ctx, c, "getIndexes", params)
	if err != nil {
		return nil, err
	}
	return &resp.Indexes, nil
}

func (c *Client) GetMusicDirectory(ctx context.Context, id string) (*Directory, error) {
	resp, err := fetch[DirectoryResponse](ctx, c, "getMusicDirectory", idParams(id))
	if err != nil {
		return nil, err
	}
	return &resp.Directory, nil
}

func (c *Client) GetGenres(ctx context.Context) ([]Genre, error) {
	resp, err := fetch[GenresResponse](ctx, c, "getGenres", nil)
	if err != nil {
		return nil, err
	}
	return resp.Genres.Genre, nil
}

func (c *Client) GetArtists(ctx context.Context, musicFolderID string) (*ArtistsID3, error) {
	params := url.Values{}
	setString(params, "musicFolderId", musicFolderID)

	resp, err := fetch[ArtistsResponse](ctx, c, "getArtists", params)
	if err != nil {
		return nil, err
	}
	return &resp.Artists, nil
}

func (c *Client) GetArtist(ctx context.Context, id string) (*ArtistWithAlbumsID3, error) {
	resp, err := fetch[ArtistResponse](ctx, c, "getArtist", idParams(id))
	if err != nil {
		return nil, err
	}
	return &resp.Artist, nil
}

func (c *Client) GetAlbum(ctx context.Context, id string) (*AlbumWithSongsID3, error) {
	resp, err := fetch[AlbumResponse](ctx, c, "getAlbum", idParams(id))
	if err != nil {
		return nil, err
	}
	return &resp.Album, nil
}

func (c *Client) GetSong(ctx context.Context, id string) (*Child, error) {
	resp, err := fetch[SongResponse](ctx, c, "getSong", idParams(id))
	if err != nil {
		return nil, err
	}
	return &resp.Song, nil
}

func (c *Client) GetVideos(ctx context.Context) ([]Child, error) {
	resp, err := fetch[VideosResponse](ctx, c, "getVideos", nil)
	if err != nil {
		return nil, err
	}
	return resp.Videos.Video, nil
}

func artistInfoParams(id string, count int, includeNotPresent bool) url.Values {
	params := idParams(id)
	setInt(params, "count", count)
	if includeNotPresent {
		params.Set("includeNotPresent", strconv.FormatBool(includeNotPresent))
	}
	return params
}

func (c *Client) GetArtistInfo(ctx context.Context, id string, count int, includeNotPresent bool) (*ArtistInfo, error) {
	resp, err := fetch[ArtistInfoResponse](ctx, c, "getArtistInfo", artistInfoParams(id, count, includeNotPresent))
	if err != nil {
		return nil, err
	}
	return &resp.ArtistInfo, nil
}

func (c *Client) GetArtistInfo2(ctx context.Context, id string, count int, includeNotPresent bool) (*ArtistInfo2, error) {
	resp, err := fetch[ArtistInfo2Response](ctx, c, "getArtistInfo2", artistInfoParams(id, count, includeNotPresent))
	if err != nil {
		return nil, err
	}
	return &resp.ArtistInfo2, nil
}

func (c *Client) GetAlbumInfo(ctx context.Context, id string) (*AlbumInfo, error) {
	resp, err := fetch[AlbumInfoResponse](ctx, c, "getAlbumInfo", idParams(id))
	if err != nil {
		return nil, err
	}
	return &resp.AlbumInfo, nil
}

func (c *Client) GetAlbumInfo2(ctx context.Context, id string) (*AlbumInfo, error) {
	resp, err := fetch[AlbumInfoResponse](ctx, c, "getAlbumInfo2", idParams(id))
	if err != nil {
		return nil, err
	}
	return &resp.AlbumInfo, nil
}

func (c *Client) GetSimilarSongs(ctx context.Context, id string, count int) ([]Child, error) {
	params := idParams(id)
	setInt(params, "count", count)

	resp, err := fetch[SimilarSongsResponse](ctx, c, "getSimilarSongs", params)
	if err != nil {
		return nil, err
	}
	return resp.SimilarSongs.Song, nil
}

func (c *Client) GetSimilarSongs2(ctx context.Context, id string, count int) ([]Child, error) {
	params := idParams(id)
	setInt(params, "count", count)

	resp, err := fetch[SimilarSongs2Response](ctx, c, "getSimilarSongs2", params)
	if err != nil {
		return nil, err
	}
	return resp.SimilarSongs2.Song, nil
}

func (c *Client) GetTopSongs(ctx context.Context, artist string, count int) ([]Child, error) {
	params := url.Values{"artist": {artist}}
	setInt(params, "count", count)

	resp, err := fetch[TopSongsResponse](ctx, c, "getTopSongs", params)
	if err != nil {
		return nil, err
	}
	return resp.TopSongs.Song, nil
}
