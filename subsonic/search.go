package subsonic

import (
	"context"
	"net/url"
)

// SearchOptions pages the three result groups independently. Zero counts
// leave the server defaults in place.
type SearchOptions struct {
	ArtistCount   int
	ArtistOffset  int
	AlbumCount    int
	AlbumOffset   int
	SongCount     int
	SongOffset    int
	MusicFolderID string
}

func (o SearchOptions) params(query string) url.Values {
	params := url.Values{"query": {query}}
	setInt(params, "artistCount", o.ArtistCount)
	setInt(params, "artistOffset", o.ArtistOffset)
	setInt(params, "albumCount", o.AlbumCount)
	setInt(params, "albumOffset", o.AlbumOffset)
	setInt(params, "songCount", o.SongCount)
	setInt(params, "songOffset", o.SongOffset)
	setString(params, "musicFolderId", o.MusicFolderID)
	return params
}

// Search2 searches the folder-based library.
func (c *Client) Search2(ctx context.Context, query string, opts SearchOptions) (*SearchResult2, error) {
	resp, err := fetch[SearchResult2Response](ctx, c, "search2", opts.params(query))
	if err != nil {
		return nil, err
	}
	return &resp.SearchResult2, nil
}

// Search3 searches the ID3 library. An empty query returns everything on
// servers that support it, which is how offline clients sync.
func (c *Client) Search3(ctx context.Context, query string, opts SearchOptions) (*SearchResult3, error) {
	resp, err := fetch[SearchResult3Response](ctx, c, "search3", opts.params(query))
	if err != nil {
		return nil, err
	}
	return &resp.SearchResult3, nil
}
