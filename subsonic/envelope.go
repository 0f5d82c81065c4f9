package subsonic

import (
	"bytes"
	"fmt"
	"io"
)

// envelopeKey is the wrapper every response is nested in.
const envelopeKey = "subsonic-response"

// Status is the outcome reported by an envelope.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Envelope is the protocol header shared by every response.
type Envelope struct {
	Status        Status `json:"status"`
	Version       string `json:"version"`
	Type          string `json:"type,omitempty"`
	ServerVersion string `json:"serverVersion,omitempty"`
	OpenSubsonic  bool   `json:"openSubsonic,omitempty"`
	Error         *Fault `json:"error,omitempty"`
}

// Response is a decoded envelope together with its typed payload.
type Response[T any] struct {
	Envelope
	Payload T
}

// Decode decodes a buffered response body into T.
func Decode[T any](data []byte, format Format) (*Response[T], error) {
	return DecodeStream[T](bytes.NewReader(data), format)
}

// DecodeStream decodes a response read from r into T. A failed envelope is
// returned as its classified error without looking at the payload.
func DecodeStream[T any](r io.Reader, format Format) (*Response[T], error) {
	env, body, err := unwrap(r, format)
	if err != nil {
		return nil, err
	}
	if env.Status == StatusFailed {
		return nil, Classify(*env.Error)
	}

	payload, err := decodeRecordAs[T](body, format)
	if err != nil {
		return nil, err
	}
	return &Response[T]{Envelope: *env, Payload: payload}, nil
}

// DecodeEnvelope reads only the envelope header from r. Failed envelopes are
// returned as-is, with their Error set, so the caller can classify them with
// its own context.
func DecodeEnvelope(r io.Reader, format Format) (*Envelope, error) {
	env, _, err := unwrap(r, format)
	return env, err
}

// header is the part of the envelope read before anything else, so a failed
// response is classified even when the rest of it is malformed.
type header struct {
	Status Status `json:"status"`
	Error  *Fault `json:"error,omitempty"`
}

// unwrap parses r, locates the envelope and decodes its header. It returns the
// envelope object as well so the payload can be decoded from it.
func unwrap(r io.Reader, format Format) (*Envelope, map[string]any, error) {
	doc, err := parseDocument(r, format)
	if err != nil {
		return nil, nil, err
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, nil, &InvalidEnvelope{Reason: fmt.Sprintf("document is %s, not an object", kindOf(doc))}
	}
	raw, ok := root[envelopeKey]
	if !ok {
		return nil, nil, &InvalidEnvelope{Reason: fmt.Sprintf("missing %q", envelopeKey)}
	}
	body, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, &InvalidEnvelope{Reason: fmt.Sprintf("%q is %s, not an object", envelopeKey, kindOf(raw))}
	}

	head, err := decodeRecordAs[header](body, format)
	if err != nil {
		return nil, nil, err
	}
	switch head.Status {
	case StatusOK:
		if head.Error != nil {
			return nil, nil, &InvalidEnvelope{Reason: "status ok with an error object"}
		}
	case StatusFailed:
		if head.Error == nil {
			return nil, nil, &InvalidEnvelope{Reason: "status failed without an error object"}
		}
		// The remaining fields are informational here; a bad one must not
		// hide the server's fault.
		if env, err := decodeRecordAs[Envelope](body, format); err == nil {
			return &env, body, nil
		}
		return &Envelope{Status: head.Status, Error: head.Error}, body, nil
	default:
		return nil, nil, &InvalidEnvelope{Reason: fmt.Sprintf("unknown status %q", head.Status)}
	}

	env, err := decodeRecordAs[Envelope](body, format)
	if err != nil {
		return nil, nil, err
	}
	return &env, body, nil
}
