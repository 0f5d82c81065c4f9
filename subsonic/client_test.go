package subsonic

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []*url.URL
}

// newFakeServer serves fixed bodies per endpoint name. Bodies starting with
// '{' are JSON, '<' XML and anything else a PNG image.
func newFakeServer(t *testing.T, bodies map[string]string) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		fs.requests = append(fs.requests, r.URL)
		fs.mu.Unlock()
		endpoint := r.URL.Path[len("/rest/"):]
		body, ok := bodies[endpoint]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case strings.HasPrefix(body, "{"):
			w.Header().Set("Content-Type", "application/json")
		case strings.HasPrefix(body, "<"):
			w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		default:
			w.Header().Set("Content-Type", "image/png")
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) lastQuery(t *testing.T) url.Values {
	t.Helper()
	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.NotEmpty(t, fs.requests)
	return fs.requests[len(fs.requests)-1].Query()
}

func newTestClient(baseURL string, auth Authenticator) *Client {
	return NewClient(Options{BaseURL: baseURL + "/", Auth: auth})
}

const okPing = `{"subsonic-response":{"status":"ok","version":"1.16.1","type":"navidrome","serverVersion":"0.53.3","openSubsonic":true}}`

func TestPing(t *testing.T) {
	srv := newFakeServer(t, map[string]string{"ping": okPing})
	client := newTestClient(srv.URL, TokenAuth{Username: "admin", Password: "secret"})

	require.NoError(t, client.Ping(context.Background()))

	q := srv.lastQuery(t)
	assert.Equal(t, "admin", q.Get("u"))
	assert.Equal(t, DefaultAPIVersion, q.Get("v"))
	assert.Equal(t, DefaultClientID, q.Get("c"))
	assert.Equal(t, "json", q.Get("f"))
	assert.Len(t, q.Get("s"), 8)
	assert.Equal(t, fmt.Sprintf("%x", md5.Sum([]byte("secret"+q.Get("s")))), q.Get("t"))
	assert.Empty(t, q.Get("p"))
}

func TestAuthenticators(t *testing.T) {
	tests := []struct {
		name string
		auth Authenticator
		want url.Values
	}{
		{name: "password", auth: PasswordAuth{Username: "u1", Password: "sesame"},
			want: url.Values{"u": {"u1"}, "p": {"sesame"}}},
		{name: "hex password", auth: PasswordAuth{Username: "u1", Password: "sesame", Hex: true},
			want: url.Values{"u": {"u1"}, "p": {"enc:736573616d65"}}},
		{name: "api key", auth: APIKeyAuth{Key: "k-123"},
			want: url.Values{"apiKey": {"k-123"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{}
			tt.auth.Apply(params)
			assert.Equal(t, tt.want, params)
		})
	}
}

func TestConnect(t *testing.T) {
	srv := newFakeServer(t, map[string]string{"ping": okPing})
	client := newTestClient(srv.URL, APIKeyAuth{Key: "k"})

	env, err := client.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "navidrome", env.Type)
	assert.Equal(t, "0.53.3", env.ServerVersion)
	assert.True(t, env.OpenSubsonic)
}

func TestConnectIncompatibleVersion(t *testing.T) {
	srv := newFakeServer(t, map[string]string{"ping": `{"subsonic-response":{"status":"failed","version":"1.16.1",
		"error":{"code":50,"message":"Incompatible Subsonic REST protocol version. Server: 1.16.1"}}}`})
	client := NewClient(Options{BaseURL: srv.URL, APIVersion: "1.0.0", Auth: TokenAuth{Username: "a", Password: "b"}})

	_, err := client.Connect(context.Background())

	var versionErr *VersionError
	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, CodeNotAuthorized, versionErr.Code)
	assert.Equal(t, "1.0.0", versionErr.Requested)
	assert.Equal(t, "1.16.1", versionErr.Supported)
	assert.Equal(t, "1.0.0", srv.lastQuery(t).Get("v"))
}

func TestConnectWrongCredentials(t *testing.T) {
	srv := newFakeServer(t, map[string]string{"ping": `{"subsonic-response":{"status":"failed","version":"1.16.1",
		"error":{"code":40,"message":"Wrong username or password"}}}`})
	client := newTestClient(srv.URL, TokenAuth{Username: "a", Password: "b"})

	_, err := client.Connect(context.Background())

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
}

func TestNon2xxWithoutBody(t *testing.T) {
	srv := newFakeServer(t, nil)
	client := newTestClient(srv.URL, nil)

	err := client.Ping(context.Background())

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "ping", httpErr.Endpoint)
}

func TestNon2xxWithEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"subsonic-response":{"status":"failed","version":"1.16.1","error":{"code":44,"message":"Invalid API key"}}}`)
	}))
	defer srv.Close()
	client := newTestClient(srv.URL, APIKeyAuth{Key: "nope"})

	err := client.Ping(context.Background())

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, CodeInvalidAPIKey, authErr.Code)
}

func TestTransportFailureIsWrapped(t *testing.T) {
	srv := newFakeServer(t, nil)
	client := newTestClient(srv.URL, nil)
	srv.Close()

	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subsonic: ping: request failed")

	var urlErr *url.Error
	assert.True(t, errors.As(err, &urlErr))
}

func TestXMLFormat(t *testing.T) {
	srv := newFakeServer(t, map[string]string{"getStarred2": `<?xml version="1.0" encoding="UTF-8"?>
<subsonic-response xmlns="http://subsonic.org/restapi" status="ok" version="1.16.1">
  <starred2>
    <album id="al-1" name="Gold" songCount="19" created="2020-01-01T00:00:00Z"/>
    <song id="s-1" title="Waterloo" isDir="false" duration="168"/>
    <song id="s-2" title="SOS" isDir="false" duration="200" starred="2021-01-01T00:00:00Z"/>
  </starred2>
</subsonic-response>`})
	client := NewClient(Options{BaseURL: srv.URL, Format: FormatXML})

	starred, err := client.GetStarred2(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "xml", srv.lastQuery(t).Get("f"))
	assert.False(t, srv.lastQuery(t).Has("musicFolderId"))

	assert.Empty(t, starred.Artist)
	require.Len(t, starred.Album, 1)
	assert.Equal(t, 19, starred.Album[0].SongCount)
	assert.Equal(t, Millis(1577836800000), starred.Album[0].Created)
	require.Len(t, starred.Song, 2)
	assert.Equal(t, "SOS", starred.Song[1].Title)
	assert.Equal(t, 200, starred.Song[1].Duration)
	require.NotNil(t, starred.Song[1].Starred)
	assert.Nil(t, starred.Song[0].Starred)
}

func TestSearch3Params(t *testing.T) {
	srv := newFakeServer(t, map[string]string{"search3": `{"subsonic-response":{"status":"ok","version":"1.16.1",
		"searchResult3":{"artist":{"id":"ar-1","name":"ABBA"}}}}`})
	client := newTestClient(srv.URL, nil)

	result, err := client.Search3(context.Background(), "abba", SearchOptions{ArtistCount: 5, SongCount: 0})
	require.NoError(t, err)

	q := srv.lastQuery(t)
	assert.Equal(t, "abba", q.Get("query"))
	assert.Equal(t, "5", q.Get("artistCount"))
	assert.False(t, q.Has("songCount"))

	require.Len(t, result.Artist, 1)
	assert.Equal(t, "ABBA", result.Artist[0].Name)
	assert.NotNil(t, result.Song)
}

func TestBinaryEndpoint(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		"getCoverArt": "\x89PNG\r\n",
		"stream": `{"subsonic-response":{"status":"failed","version":"1.16.1","error":{"code":70,"message":"Song not found"}}}`,
	})
	client := newTestClient(srv.URL, nil)

	body, contentType, err := client.GetCoverArt(context.Background(), "al-1", 300)
	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, "image/png", contentType)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG\r\n", string(data))

	_, _, err = client.Stream(context.Background(), "s-9", StreamOptions{MaxBitRate: 128})
	assert.True(t, IsNotFound(err))
	q := srv.lastQuery(t)
	assert.Equal(t, "s-9", q.Get("id"))
	assert.Equal(t, "128", q.Get("maxBitRate"))
}

func TestStreamURL(t *testing.T) {
	client := NewClient(Options{BaseURL: "https://music.example.com/", Auth: APIKeyAuth{Key: "k"}})

	raw := client.StreamURL("s-1", StreamOptions{Format: "mp3"})
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/rest/stream", u.Path)
	assert.Equal(t, "s-1", u.Query().Get("id"))
	assert.Equal(t, "mp3", u.Query().Get("format"))
	assert.Equal(t, "k", u.Query().Get("apiKey"))
}
