package subsonic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "json": FormatJSON, " XML ": FormatXML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("jsonp")
	assert.Error(t, err)
}

func TestParseXMLTree(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<subsonic-response xmlns="http://subsonic.org/restapi" status="ok" version="1.16.1">
  <genres>
    <genre songCount="28" albumCount="6">Electronic</genre>
    <genre songCount="6" albumCount="2">Hard Rock</genre>
  </genres>
  <openSubsonicExtensions name="songLyrics">
    <versions>1</versions>
  </openSubsonicExtensions>
</subsonic-response>`

	doc, err := parseDocument(strings.NewReader(body), FormatXML)
	require.NoError(t, err)

	tree, ok := doc.(map[string]any)
	require.True(t, ok)
	root, ok := tree[envelopeKey].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", root["status"])
	assert.NotContains(t, root, "xmlns")

	genres := root["genres"].(map[string]any)
	list, ok := genres["genre"].([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, map[string]any{"songCount": "28", "albumCount": "6", "value": "Electronic"}, list[0])

	ext := root["openSubsonicExtensions"].(map[string]any)
	assert.Equal(t, "1", ext["versions"])
}

func TestDecodeXMLMatchesJSON(t *testing.T) {
	xmlBody := `<subsonic-response status="ok" version="1.16.1" openSubsonic="true">
  <genres>
    <genre songCount="28" albumCount="6">Electronic</genre>
  </genres>
</subsonic-response>`
	jsonBody := `{"subsonic-response":{"status":"ok","version":"1.16.1","openSubsonic":true,
		"genres":{"genre":[{"songCount":28,"albumCount":6,"value":"Electronic"}]}}}`

	fromXML, err := Decode[GenresResponse]([]byte(xmlBody), FormatXML)
	require.NoError(t, err)
	fromJSON, err := Decode[GenresResponse]([]byte(jsonBody), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromXML)
	assert.Equal(t, []Genre{{Value: "Electronic", SongCount: 28, AlbumCount: 6}}, []Genre(fromXML.Payload.Genres.Genre))
}

func TestDecodeXMLScalarList(t *testing.T) {
	body := `<subsonic-response status="ok" version="1.16.1">
  <openSubsonicExtensions name="transcodeOffset"><versions>1</versions></openSubsonicExtensions>
  <openSubsonicExtensions name="formPost"><versions>1</versions><versions>2</versions></openSubsonicExtensions>
</subsonic-response>`

	resp, err := Decode[OpenSubsonicExtensionsResponse]([]byte(body), FormatXML)
	require.NoError(t, err)

	exts := resp.Payload.OpenSubsonicExtensions
	require.Len(t, exts, 2)
	assert.Equal(t, List[int]{1}, exts[0].Versions)
	assert.Equal(t, List[int]{1, 2}, exts[1].Versions)
}

func TestDecodeXMLFailedEnvelope(t *testing.T) {
	body := `<subsonic-response status="failed" version="1.16.1"><error code="70" message="Album not found"/></subsonic-response>`

	_, err := Decode[AlbumResponse]([]byte(body), FormatXML)
	assert.True(t, IsNotFound(err))
}

func TestParseXMLTruncated(t *testing.T) {
	_, err := parseDocument(strings.NewReader(`<subsonic-response status="ok">`), FormatXML)

	var transportErr *TransportDecodeError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, FormatXML, transportErr.Format)
}

func TestDecodeXMLTextOnlyRecords(t *testing.T) {
	body := `<subsonic-response status="ok" version="1.16.1">
  <lyrics>la la la</lyrics>
</subsonic-response>`

	resp, err := Decode[LyricsResponse]([]byte(body), FormatXML)
	require.NoError(t, err)
	assert.Equal(t, Lyrics{Value: "la la la"}, resp.Payload.Lyrics)

	genres := `<subsonic-response status="ok" version="1.16.1">
  <genres><genre>Pop</genre></genres>
</subsonic-response>`

	fromXML, err := Decode[GenresResponse]([]byte(genres), FormatXML)
	require.NoError(t, err)
	assert.Equal(t, []Genre{{Value: "Pop"}}, []Genre(fromXML.Payload.Genres.Genre))
}

func TestDecodeJSONStringIsNotARecord(t *testing.T) {
	body := `{"subsonic-response":{"status":"ok","version":"1.16.1","lyrics":"la la la"}}`

	_, err := Decode[LyricsResponse]([]byte(body), FormatJSON)

	var scalarErr *MalformedScalar
	require.ErrorAs(t, err, &scalarErr)
	assert.Equal(t, "lyrics", scalarErr.Field)
}

func TestParseXMLSecondRoot(t *testing.T) {
	_, err := parseDocument(strings.NewReader(`<subsonic-response status="ok"/><subsonic-response status="ok"/>`), FormatXML)

	var transportErr *TransportDecodeError
	require.ErrorAs(t, err, &transportErr)
}
