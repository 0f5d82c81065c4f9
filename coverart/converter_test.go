package coverart

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhkl-dev/navisonic/subsonic"
)

type stubSource struct {
	body []byte
	err  error
	ids  []string
}

func (s *stubSource) GetCoverArt(_ context.Context, id string, _ int) (io.ReadCloser, string, error) {
	s.ids = append(s.ids, id)
	if s.err != nil {
		return nil, "", s.err
	}
	return io.NopCloser(bytes.NewReader(s.body)), "image/png", nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 40, 40))
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y++ {
			if x < 20 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestRender(t *testing.T) {
	c := NewConverter()

	ascii, err := c.Render(bytes.NewReader(testPNG(t)))
	require.NoError(t, err)

	assert.NotEmpty(t, strings.TrimSpace(ascii))
	assert.NotEqual(t, c.Placeholder(), ascii)
}

func TestRenderRejectsGarbage(t *testing.T) {
	c := NewConverter()

	out, err := c.Render(strings.NewReader("not an image"))
	assert.Error(t, err)
	assert.Equal(t, c.Placeholder(), out)
}

func TestRenderCover(t *testing.T) {
	c := NewConverter()
	src := &stubSource{body: testPNG(t)}

	out, err := c.RenderCover(context.Background(), src, "al-1")
	require.NoError(t, err)
	assert.NotEqual(t, c.Placeholder(), out)
	assert.Equal(t, []string{"al-1"}, src.ids)

	out, err = c.RenderCover(context.Background(), src, "")
	require.NoError(t, err)
	assert.Equal(t, c.Placeholder(), out)
	assert.Len(t, src.ids, 1)
}

func TestRenderCoverServerFault(t *testing.T) {
	c := NewConverter()
	src := &stubSource{err: subsonic.Classify(subsonic.Fault{Code: subsonic.CodeNotFound, Message: "Cover art not found"})}

	out, err := c.RenderCover(context.Background(), src, "al-9")
	assert.True(t, subsonic.IsNotFound(err))
	assert.Equal(t, c.Placeholder(), out)
}
