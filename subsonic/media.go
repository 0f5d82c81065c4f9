package subsonic

import (
	"context"
	"io"
	"net/url"
	"strconv"
)

type StreamOptions struct {
	MaxBitRate            int
	Format                string
	TimeOffset            int
	EstimateContentLength bool
}

func (o StreamOptions) params(id string) url.Values {
	params := idParams(id)
	setInt(params, "maxBitRate", o.MaxBitRate)
	setString(params, "format", o.Format)
	setInt(params, "timeOffset", o.TimeOffset)
	if o.EstimateContentLength {
		params.Set("estimateContentLength", "true")
	}
	return params
}

func coverArtParams(id string, size int) url.Values {
	params := idParams(id)
	setInt(params, "size", size)
	return params
}

// StreamURL returns a signed URL a media player can open directly.
func (c *Client) StreamURL(id string, opts StreamOptions) string {
	return c.endpointURL("stream", opts.params(id))
}

func (c *Client) DownloadURL(id string) string {
	return c.endpointURL("download", idParams(id))
}

func (c *Client) CoverArtURL(id string, size int) string {
	return c.endpointURL("getCoverArt", coverArtParams(id, size))
}

// Stream opens the media stream of id. The caller closes the returned body.
func (c *Client) Stream(ctx context.Context, id string, opts StreamOptions) (io.ReadCloser, string, error) {
	return c.binary(ctx, "stream", opts.params(id))
}

func (c *Client) Download(ctx context.Context, id string) (io.ReadCloser, string, error) {
	return c.binary(ctx, "download", idParams(id))
}

func (c *Client) GetCoverArt(ctx context.Context, id string, size int) (io.ReadCloser, string, error) {
	return c.binary(ctx, "getCoverArt", coverArtParams(id, size))
}

func (c *Client) GetLyrics(ctx context.Context, artist, title string) (*Lyrics, error) {
	params := url.Values{}
	setString(params, "artist", artist)
	setString(params, "title", title)

	resp, err := fetch[LyricsResponse](ctx, c, "getLyrics", params)
	if err != nil {
		return nil, err
	}
	return &resp.Lyrics, nil
}

// GetLyricsBySongID uses the OpenSubsonic songLyrics extension.
func (c *Client) GetLyricsBySongID(ctx context.Context, id string) ([]StructuredLyrics, error) {
	resp, err := fetch[LyricsListResponse](ctx, c, "getLyricsBySongId", idParams(id))
	if err != nil {
		return nil, err
	}
	return resp.LyricsList.StructuredLyrics, nil
}

// Star and Unstar take song or directory ids, ID3 album ids and ID3 artist ids.
type StarIDs struct {
	IDs       []string
	AlbumIDs  []string
	ArtistIDs []string
}

func (s StarIDs) params() url.Values {
	params := url.Values{}
	for _, id := range s.IDs {
		params.Add("id", id)
	}
	for _, id := range s.AlbumIDs {
		params.Add("albumId", id)
	}
	for _, id := range s.ArtistIDs {
		params.Add("artistId", id)
	}
	return params
}

func (c *Client) Star(ctx context.Context, ids StarIDs) error {
	return c.call(ctx, "star", ids.params())
}

func (c *Client) Unstar(ctx context.Context, ids StarIDs) error {
	return c.call(ctx, "unstar", ids.params())
}

// SetRating sets a 1-5 rating; 0 removes it.
func (c *Client) SetRating(ctx context.Context, id string, rating int) error {
	params := idParams(id)
	params.Set("rating", strconv.Itoa(rating))
	return c.call(ctx, "setRating", params)
}

// Scrobble registers a play of id. With submission unset it only updates
// "now playing".
func (c *Client) Scrobble(ctx context.Context, id string, at Millis, submission bool) error {
	params := idParams(id)
	setInt64(params, "time", int64(at))
	params.Set("submission", strconv.FormatBool(submission))
	return c.call(ctx, "scrobble", params)
}

func (c *Client) GetBookmarks(ctx context.Context) ([]Bookmark, error) {
	resp, err := fetch[BookmarksResponse](ctx, c, "getBookmarks", nil)
	if err != nil {
		return nil, err
	}
	return resp.Bookmarks.Bookmark, nil
}

// CreateBookmark creates or updates the bookmark of id; position is in
// milliseconds.
func (c *Client) CreateBookmark(ctx context.Context, id string, position int64, comment string) error {
	params := idParams(id)
	params.Set("position", strconv.FormatInt(position, 10))
	setString(params, "comment", comment)
	return c.call(ctx, "createBookmark", params)
}

func (c *Client) DeleteBookmark(ctx context.Context, id string) error {
	return c.call(ctx, "deleteBookmark", idParams(id))
}

func (c *Client) GetPlayQueue(ctx context.Context) (*PlayQueue, error) {
	resp, err := fetch[PlayQueueResponse](ctx, c, "getPlayQueue", nil)
	if err != nil {
		return nil, err
	}
	return &resp.PlayQueue, nil
}

func (c *Client) SavePlayQueue(ctx context.Context, ids []string, current string, position int64) error {
	params := url.Values{}
	for _, id := range ids {
		params.Add("id", id)
	}
	setString(params, "current", current)
	setInt64(params, "position", position)
	return c.call(ctx, "savePlayQueue", params)
}
