package subsonic

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Format is a response serialization, sent to the server as the f parameter.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat returns the format named by s, defaulting to JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("subsonic: unsupported response format %q", s)
	}
}

// parseDocument reads one document from r into a generic tree of
// map[string]any, []any, string, bool, json.Number and nil. The root may be
// any JSON value; XML roots are always objects.
func parseDocument(r io.Reader, format Format) (any, error) {
	var (
		doc any
		err error
	)
	switch format {
	case FormatXML:
		doc, err = parseXML(r)
	case FormatJSON, "":
		format = FormatJSON
		doc, err = parseJSON(r)
	default:
		return nil, fmt.Errorf("subsonic: unsupported response format %q", format)
	}
	if err != nil {
		return nil, &TransportDecodeError{Format: format, Err: err}
	}
	return doc, nil
}

func parseJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, errors.Wrap(err, "after document")
		}
		return nil, errors.Errorf("trailing data after document at offset %d", dec.InputOffset())
	}
	return root, nil
}

// parseXML folds an XML document into the same tree shape as JSON: attributes
// and child elements become keys, repeated children become arrays and
// non-blank character data becomes "value".
func parseXML(r io.Reader) (any, error) {
	dec := xml.NewDecoder(r)

	type frame struct {
		name string
		node map[string]any
		text strings.Builder
	}
	var (
		stack []*frame
		root  map[string]any
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil {
				return nil, errors.Errorf("second root element <%s>", t.Name.Local)
			}
			node := make(map[string]any, len(t.Attr))
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
					continue
				}
				node[attr.Name.Local] = attr.Value
			}
			stack = append(stack, &frame{name: t.Name.Local, node: node})
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			var value any = top.node
			if text := strings.TrimSpace(top.text.String()); text != "" {
				if len(top.node) == 0 {
					// <versions>2</versions> carries a bare scalar.
					value = text
				} else {
					top.node["value"] = text
				}
			}
			if len(stack) == 0 {
				root = map[string]any{top.name: value}
				continue
			}
			parent := stack[len(stack)-1].node
			switch existing := parent[top.name].(type) {
			case nil:
				parent[top.name] = value
			case []any:
				parent[top.name] = append(existing, value)
			default:
				parent[top.name] = []any{existing, value}
			}
		}
	}
	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}
