package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// GetPodcasts returns the subscribed channels, or only channel id when set.
func (c *Client) GetPodcasts(ctx context.Context, id string, includeEpisodes bool) ([]PodcastChannel, error) {
	params := url.Values{"includeEpisodes": {strconv.FormatBool(includeEpisodes)}}
	setString(params, "id", id)

	resp, err := fetch[PodcastsResponse](ctx, c, "getPodcasts", params)
	if err != nil {
		return nil, err
	}
	return resp.Podcasts.Channel, nil
}

func (c *Client) GetNewestPodcasts(ctx context.Context, count int) ([]PodcastEpisode, error) {
	params := url.Values{}
	setInt(params, "count", count)

	resp, err := fetch[NewestPodcastsResponse](ctx, c, "getNewestPodcasts", params)
	if err != nil {
		return nil, err
	}
	return resp.NewestPodcasts.Episode, nil
}

func (c *Client) RefreshPodcasts(ctx context.Context) error {
	return c.call(ctx, "refreshPodcasts", nil)
}

func (c *Client) CreatePodcastChannel(ctx context.Context, feedURL string) error {
	return c.call(ctx, "createPodcastChannel", url.Values{"url": {feedURL}})
}

func (c *Client) DeletePodcastChannel(ctx context.Context, id string) error {
	return c.call(ctx, "deletePodcastChannel", idParams(id))
}

func (c *Client) DeletePodcastEpisode(ctx context.Context, id string) error {
	return c.call(ctx, "deletePodcastEpisode", idParams(id))
}

// DownloadPodcastEpisode asks the server to fetch the episode into its library.
func (c *Client) DownloadPodcastEpisode(ctx context.Context, id string) error {
	return c.call(ctx, "downloadPodcastEpisode", idParams(id))
}
