package coverart

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/qeesung/image2ascii/convert"
)

const (
	DefaultWidth  = 25
	DefaultHeight = 12

	// requestSize is the server-side thumbnail edge asked for; ASCII output
	// never needs more.
	requestSize = 300
)

// Source fetches cover art by id. *subsonic.Client satisfies it.
type Source interface {
	GetCoverArt(ctx context.Context, id string, size int) (io.ReadCloser, string, error)
}

// Converter handles album cover art conversion to ASCII
type Converter struct {
	Width     int
	Height    int
	Colored   bool
	converter *convert.ImageConverter
}

// NewConverter creates a new cover art converter
func NewConverter() *Converter {
	return &Converter{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		converter: convert.NewImageConverter(),
	}
}

// Render decodes a JPEG or PNG image from r and converts it to ASCII art
func (c *Converter) Render(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return c.Placeholder(), fmt.Errorf("failed to decode: %w", err)
	}

	convertOptions := convert.DefaultOptions
	convertOptions.FixedWidth = c.Width
	convertOptions.FixedHeight = c.Height
	convertOptions.Colored = c.Colored

	return c.converter.Image2ASCIIString(img, &convertOptions), nil
}

// RenderCover fetches cover art id from src and converts it. An empty id
// yields the placeholder.
func (c *Converter) RenderCover(ctx context.Context, src Source, id string) (string, error) {
	if id == "" {
		return c.Placeholder(), nil
	}

	body, _, err := src.GetCoverArt(ctx, id, requestSize)
	if err != nil {
		return c.Placeholder(), fmt.Errorf("failed to download: %w", err)
	}
	defer body.Close()

	return c.Render(body)
}

// Placeholder is shown when cover art is not available
func (c *Converter) Placeholder() string {
	return `┌──────────────────────────┐
│                          │
│         ♫  ♪  ♫          │
│    No Cover Art Found    │
│         ♫  ♪  ♫          │
│                          │
└──────────────────────────┘`
}
