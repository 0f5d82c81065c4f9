package subsonic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	DefaultAPIVersion = "1.16.1"
	DefaultClientID   = "navisonic"
	DefaultTimeout    = 30 * time.Second

	// maxErrorBody bounds how much of a non-2xx body is buffered.
	maxErrorBody = 1 << 20
)

type Client struct {
	BaseURL    string
	ClientID   string
	APIVersion string
	Format     Format
	Auth       Authenticator
	HttpClient *http.Client
	Logger     zerolog.Logger
}

// Options configures NewClient. Zero fields take the package defaults.
type Options struct {
	BaseURL    string
	ClientID   string
	APIVersion string
	Format     Format
	Auth       Authenticator
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// Init returns a JSON client using salted-token authentication.
func Init(baseUrl, username, password, clientId, apiVersion string) *Client {
	return NewClient(Options{
		BaseURL:    baseUrl,
		ClientID:   clientId,
		APIVersion: apiVersion,
		Auth:       TokenAuth{Username: username, Password: password},
	})
}

func NewClient(opts Options) *Client {
	if opts.ClientID == "" {
		opts.ClientID = DefaultClientID
	}
	if opts.APIVersion == "" {
		opts.APIVersion = DefaultAPIVersion
	}
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Client{
		BaseURL:    strings.TrimRight(opts.BaseURL, "/"),
		ClientID:   opts.ClientID,
		APIVersion: opts.APIVersion,
		Format:     opts.Format,
		Auth:       opts.Auth,
		HttpClient: httpClient,
		Logger:     logger,
	}
}

// HTTPError is a non-2xx response that carried no body to decode.
type HTTPError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("subsonic: %s: unexpected status %s", e.Endpoint, e.Status)
}

func (c *Client) buildParams(extraParams url.Values) url.Values {
	params := url.Values{}
	if c.Auth != nil {
		c.Auth.Apply(params)
	}
	params.Set("v", c.APIVersion)
	params.Set("c", c.ClientID)
	params.Set("f", string(c.Format))

	for k, vs := range extraParams {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	return params
}

func (c *Client) endpointURL(endpoint string, extraParams url.Values) string {
	return fmt.Sprintf("%s/rest/%s?%s", c.BaseURL, endpoint, c.buildParams(extraParams).Encode())
}

// do issues a GET for endpoint. The returned response always has a body the
// caller must close: either a 2xx body or a buffered non-2xx body that is
// worth decoding.
func (c *Client) do(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint, params), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "subsonic: %s: building request", endpoint)
	}
	switch c.Format {
	case FormatXML:
		req.Header.Set("Accept", "application/xml")
	default:
		req.Header.Set("Accept", "application/json")
	}

	log := c.Logger.With().
		Str("request_id", uuid.NewString()).
		Str("endpoint", endpoint).
		Logger()
	start := time.Now()

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("request failed")
		return nil, errors.Wrapf(err, "subsonic: %s: request failed", endpoint)
	}
	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("response received")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return nil, errors.Wrapf(err, "subsonic: %s: reading %s body", endpoint, resp.Status)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &HTTPError{Endpoint: endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

// fetch calls endpoint and decodes its envelope into T. Decoding errors are
// returned unchanged.
func fetch[T any](ctx context.Context, c *Client, endpoint string, params url.Values) (*T, error) {
	resp, err := c.do(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	decoded, err := DecodeStream[T](resp.Body, c.Format)
	if err != nil {
		return nil, err
	}
	return &decoded.Payload, nil
}

// call is fetch for endpoints whose successful response carries no payload.
func (c *Client) call(ctx context.Context, endpoint string, params url.Values) error {
	_, err := fetch[PingResponse](ctx, c, endpoint, params)
	return err
}

// binary calls an endpoint that answers with raw media. Servers report
// failures on those endpoints as an envelope instead, which is decoded and
// returned as its classified error.
func (c *Client) binary(ctx context.Context, endpoint string, params url.Values) (io.ReadCloser, string, error) {
	resp, err := c.do(ctx, endpoint, params)
	if err != nil {
		return nil, "", err
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case "application/json", "text/json":
		return nil, "", closeWithEnvelope(resp.Body, FormatJSON)
	case "application/xml", "text/xml":
		return nil, "", closeWithEnvelope(resp.Body, FormatXML)
	}
	return resp.Body, contentType, nil
}

func closeWithEnvelope(body io.ReadCloser, format Format) error {
	defer body.Close()
	env, err := DecodeEnvelope(body, format)
	if err != nil {
		return err
	}
	if env.Status == StatusFailed {
		return Classify(*env.Error)
	}
	return &InvalidEnvelope{Reason: "expected media data, got an ok envelope"}
}
