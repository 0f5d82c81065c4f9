package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// PlaylistUpdate lists the changes for UpdatePlaylist. Nil fields are left
// untouched on the server.
type PlaylistUpdate struct {
	Name              *string
	Comment           *string
	Public            *bool
	SongIDsToAdd      []string
	SongIndexToRemove []int
}

func (c *Client) GetPlaylists(ctx context.Context, username string) ([]Playlist, error) {
	params := url.Values{}
	setString(params, "username", username)

	resp, err := fetch[PlaylistsResponse](ctx, c, "getPlaylists", params)
	if err != nil {
		return nil, err
	}
	return resp.Playlists.Playlist, nil
}

func (c *Client) GetPlaylist(ctx context.Context, id string) (*PlaylistWithSongs, error) {
	resp, err := fetch[PlaylistResponse](ctx, c, "getPlaylist", idParams(id))
	if err != nil {
		return nil, err
	}
	return &resp.Playlist, nil
}

// CreatePlaylist creates a playlist holding songIDs. Servers from API 1.14.0
// return the new playlist; older ones return an empty envelope, in which case
// the result has only defaults.
func (c *Client) CreatePlaylist(ctx context.Context, name string, songIDs []string) (*PlaylistWithSongs, error) {
	params := url.Values{"name": {name}}
	for _, id := range songIDs {
		params.Add("songId", id)
	}

	resp, err := fetch[PlaylistResponse](ctx, c, "createPlaylist", params)
	if err != nil {
		return nil, err
	}
	return &resp.Playlist, nil
}

func (c *Client) UpdatePlaylist(ctx context.Context, id string, update PlaylistUpdate) error {
	params := url.Values{"playlistId": {id}}
	if update.Name != nil {
		params.Set("name", *update.Name)
	}
	if update.Comment != nil {
		params.Set("comment", *update.Comment)
	}
	if update.Public != nil {
		params.Set("public", strconv.FormatBool(*update.Public))
	}
	for _, songID := range update.SongIDsToAdd {
		params.Add("songIdToAdd", songID)
	}
	for _, index := range update.SongIndexToRemove {
		params.Add("songIndexToRemove", strconv.Itoa(index))
	}
	return c.call(ctx, "updatePlaylist", params)
}

func (c *Client) DeletePlaylist(ctx context.Context, id string) error {
	return c.call(ctx, "deletePlaylist", idParams(id))
}
