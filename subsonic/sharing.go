package subsonic

import (
	"context"
	"net/url"
)

func (c *Client) GetInternetRadioStations(ctx context.Context) ([]InternetRadioStation, error) {
	resp, err := fetch[InternetRadioStationsResponse](ctx, c, "getInternetRadioStations", nil)
	if err != nil {
		return nil, err
	}
	return resp.InternetRadioStations.InternetRadioStation, nil
}

func (c *Client) GetShares(ctx context.Context) ([]Share, error) {
	resp, err := fetch[SharesResponse](ctx, c, "getShares", nil)
	if err != nil {
		return nil, err
	}
	return resp.Shares.Share, nil
}

// GetChatMessages returns messages posted after since (0 for all).
func (c *Client) GetChatMessages(ctx context.Context, since Millis) ([]ChatMessage, error) {
	params := url.Values{}
	setInt64(params, "since", int64(since))

	resp, err := fetch[ChatMessagesResponse](ctx, c, "getChatMessages", params)
	if err != nil {
		return nil, err
	}
	return resp.ChatMessages.ChatMessage, nil
}

func (c *Client) AddChatMessage(ctx context.Context, message string) error {
	return c.call(ctx, "addChatMessage", url.Values{"message": {message}})
}
