package subsonic

import (
	"context"
	"net/url"
)

// Album list orderings accepted by getAlbumList and getAlbumList2.
const (
	AlbumListRandom               = "random"
	AlbumListNewest               = "newest"
	AlbumListHighest              = "highest"
	AlbumListFrequent             = "frequent"
	AlbumListRecent               = "recent"
	AlbumListAlphabeticalByName   = "alphabeticalByName"
	AlbumListAlphabeticalByArtist = "alphabeticalByArtist"
	AlbumListStarred              = "starred"
	AlbumListByYear               = "byYear"
	AlbumListByGenre              = "byGenre"
)

type AlbumListOptions struct {
	Type          string
	Size          int
	Offset        int
	FromYear      int
	ToYear        int
	Genre         string
	MusicFolderID string
}

func (o AlbumListOptions) params() url.Values {
	params := url.Values{}
	listType := o.Type
	if listType == "" {
		listType = AlbumListNewest
	}
	params.Set("type", listType)
	setInt(params, "size", o.Size)
	setInt(params, "offset", o.Offset)
	setInt(params, "fromYear", o.FromYear)
	setInt(params, "toYear", o.ToYear)
	setString(params, "genre", o.Genre)
	setString(params, "musicFolderId", o.MusicFolderID)
	return params
}

type RandomSongsOptions struct {
	Size          int
	Genre         string
	FromYear      int
	ToYear        int
	MusicFolderID string
}

func (c *Client) GetAlbumList(ctx context.Context, opts AlbumListOptions) ([]Child, error) {
	resp, err := fetch[AlbumListResponse](ctx, c, "getAlbumList", opts.params())
	if err != nil {
		return nil, err
	}
	return resp.AlbumList.Album, nil
}

func (c *Client) GetAlbumList2(ctx context.Context, opts AlbumListOptions) ([]AlbumID3, error) {
	resp, err := fetch[AlbumList2Response](ctx, c, "getAlbumList2", opts.params())
	if err != nil {
		return nil, err
	}
	return resp.AlbumList2.Album, nil
}

func (c *Client) GetRandomSongs(ctx context.Context, opts RandomSongsOptions) ([]Child, error) {
	params := url.Values{}
	setInt(params, "size", opts.Size)
	setString(params, "genre", opts.Genre)
	setInt(params, "fromYear", opts.FromYear)
	setInt(params, "toYear", opts.ToYear)
	setString(params, "musicFolderId", opts.MusicFolderID)

	resp, err := fetch[RandomSongsResponse](ctx, c, "getRandomSongs", params)
	if err != nil {
		return nil, err
	}
	return resp.RandomSongs.Song, nil
}

func (c *Client) GetSongsByGenre(ctx context.Context, genre string, count, offset int, musicFolderID string) ([]Child, error) {
	params := url.Values{"genre": {genre}}
	setInt(params, "count", count)
	setInt(params, "offset", offset)
	setString(params, "musicFolderId", musicFolderID)

	resp, err := fetch[SongsByGenreResponse](ctx, c, "getSongsByGenre", params)
	if err != nil {
		return nil, err
	}
	return resp.SongsByGenre.Song, nil
}

func (c *Client) GetNowPlaying(ctx context.Context) ([]NowPlayingEntry, error) {
	resp, err := fetch[NowPlayingResponse](ctx, c, "getNowPlaying", nil)
	if err != nil {
		return nil, err
	}
	return resp.NowPlaying.Entry, nil
}

func (c *Client) GetStarred(ctx context.Context, musicFolderID string) (*Starred, error) {
	params := url.Values{}
	setString(params, "musicFolderId", musicFolderID)

	resp, err := fetch[StarredResponse](ctx, c, "getStarred", params)
	if err != nil {
		return nil, err
	}
	return &resp.Starred, nil
}

func (c *Client) GetStarred2(ctx context.Context, musicFolderID string) (*Starred2, error) {
	params := url.Values{}
	setString(params, "musicFolderId", musicFolderID)

	resp, err := fetch[Starred2Response](ctx, c, "getStarred2", params)
	if err != nil {
		return nil, err
	}
	return &resp.Starred2, nil
}
