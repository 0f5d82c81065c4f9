package subsonic

import (
	"context"
	"net/url"
)

// Ping checks connectivity and credentials.
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, "ping", nil)
}

// Connect pings the server and returns its envelope header. A server that
// rejects the requested protocol version yields a *VersionError carrying both
// the requested version and the one the server speaks.
func (c *Client) Connect(ctx context.Context) (*Envelope, error) {
	resp, err := c.do(ctx, "ping", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	env, err := DecodeEnvelope(resp.Body, c.Format)
	if err != nil {
		return nil, err
	}
	if env.Status == StatusFailed {
		switch env.Error.Code {
		// ping is open to every user, so a refusal here is a refusal of
		// the protocol level.
		case CodeClientTooOld, CodeServerTooOld, CodeNotAuthorized:
			return nil, &VersionError{
				Code:      env.Error.Code,
				Message:   env.Error.Message,
				Requested: c.APIVersion,
				Supported: env.Version,
			}
		}
		return nil, Classify(*env.Error)
	}
	c.Logger.Debug().
		Str("version", env.Version).
		Str("server", env.Type).
		Str("server_version", env.ServerVersion).
		Bool("open_subsonic", env.OpenSubsonic).
		Msg("connected")
	return env, nil
}

func (c *Client) GetLicense(ctx context.Context) (*License, error) {
	resp, err := fetch[LicenseResponse](ctx, c, "getLicense", nil)
	if err != nil {
		return nil, err
	}
	return &resp.License, nil
}

func (c *Client) GetOpenSubsonicExtensions(ctx context.Context) ([]OpenSubsonicExtension, error) {
	resp, err := fetch[OpenSubsonicExtensionsResponse](ctx, c, "getOpenSubsonicExtensions", nil)
	if err != nil {
		return nil, err
	}
	return resp.OpenSubsonicExtensions, nil
}

func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	resp, err := fetch[UserResponse](ctx, c, "getUser", url.Values{"username": {username}})
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	resp, err := fetch[UsersResponse](ctx, c, "getUsers", nil)
	if err != nil {
		return nil, err
	}
	return resp.Users.User, nil
}

func (c *Client) GetScanStatus(ctx context.Context) (*ScanStatus, error) {
	resp, err := fetch[ScanStatusResponse](ctx, c, "getScanStatus", nil)
	if err != nil {
		return nil, err
	}
	return &resp.ScanStatus, nil
}

func (c *Client) StartScan(ctx context.Context) (*ScanStatus, error) {
	resp, err := fetch[ScanStatusResponse](ctx, c, "startScan", nil)
	if err != nil {
		return nil, err
	}
	return &resp.ScanStatus, nil
}
