package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

type JukeboxAction string

const (
	JukeboxStart   JukeboxAction = "start"
	JukeboxStop    JukeboxAction = "stop"
	JukeboxSkip    JukeboxAction = "skip"
	JukeboxAdd     JukeboxAction = "add"
	JukeboxSet     JukeboxAction = "set"
	JukeboxClear   JukeboxAction = "clear"
	JukeboxRemove  JukeboxAction = "remove"
	JukeboxShuffle JukeboxAction = "shuffle"
	JukeboxSetGain JukeboxAction = "setGain"
)

// JukeboxArgs carries the action arguments: Index and Offset for skip and
// remove, IDs for add and set, Gain (0.0-1.0) for setGain.
type JukeboxArgs struct {
	Index  int
	Offset int
	IDs    []string
	Gain   float64
}

func (c *Client) jukebox(ctx context.Context, action JukeboxAction, args JukeboxArgs) (*JukeboxStatus, error) {
	params := url.Values{"action": {string(action)}}
	switch action {
	case JukeboxSkip:
		params.Set("index", strconv.Itoa(args.Index))
		setInt(params, "offset", args.Offset)
	case JukeboxRemove:
		params.Set("index", strconv.Itoa(args.Index))
	case JukeboxAdd, JukeboxSet:
		for _, id := range args.IDs {
			params.Add("id", id)
		}
	case JukeboxSetGain:
		params.Set("gain", strconv.FormatFloat(args.Gain, 'f', -1, 64))
	}

	resp, err := fetch[JukeboxStatusResponse](ctx, c, "jukeboxControl", params)
	if err != nil {
		return nil, err
	}
	return &resp.JukeboxStatus, nil
}

func (c *Client) JukeboxStatus(ctx context.Context) (*JukeboxStatus, error) {
	return c.jukebox(ctx, "status", JukeboxArgs{})
}

// JukeboxGet returns the jukebox state together with its queue.
func (c *Client) JukeboxGet(ctx context.Context) (*JukeboxPlaylist, error) {
	resp, err := fetch[JukeboxPlaylistResponse](ctx, c, "jukeboxControl", url.Values{"action": {"get"}})
	if err != nil {
		return nil, err
	}
	return &resp.JukeboxPlaylist, nil
}

func (c *Client) JukeboxControl(ctx context.Context, action JukeboxAction, args JukeboxArgs) (*JukeboxStatus, error) {
	return c.jukebox(ctx, action, args)
}
