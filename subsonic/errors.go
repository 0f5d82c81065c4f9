package subsonic

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode is a server-defined fault code.
type ErrorCode int

const (
	CodeGeneric                  ErrorCode = 0
	CodeMissingParameter         ErrorCode = 10
	CodeClientTooOld             ErrorCode = 20
	CodeServerTooOld             ErrorCode = 30
	CodeWrongCredentials         ErrorCode = 40
	CodeTokenAuthUnsupported     ErrorCode = 41
	CodeAuthMechanismUnsupported ErrorCode = 42
	CodeConflictingAuth          ErrorCode = 43
	CodeInvalidAPIKey            ErrorCode = 44
	CodeNotAuthorized            ErrorCode = 50
	CodeTrialExpired             ErrorCode = 60
	CodeNotFound                 ErrorCode = 70
)

// Category groups fault codes by how a caller reacts to them.
type Category string

const (
	CategoryAPI            Category = "api"
	CategoryAuthentication Category = "authentication"
	CategoryVersion        Category = "version"
)

type codeMetadata struct {
	Category    Category
	Description string
}

var metadataByCode = map[ErrorCode]codeMetadata{
	CodeGeneric:                  {CategoryAPI, "generic error"},
	CodeMissingParameter:         {CategoryAPI, "required parameter is missing"},
	CodeClientTooOld:             {CategoryVersion, "incompatible protocol version, client must upgrade"},
	CodeServerTooOld:             {CategoryVersion, "incompatible protocol version, server must upgrade"},
	CodeWrongCredentials:         {CategoryAuthentication, "wrong username or password"},
	CodeTokenAuthUnsupported:     {CategoryAuthentication, "token authentication not supported for this user"},
	CodeAuthMechanismUnsupported: {CategoryAuthentication, "provided authentication mechanism not supported"},
	CodeConflictingAuth:          {CategoryAuthentication, "multiple conflicting authentication mechanisms provided"},
	CodeInvalidAPIKey:            {CategoryAuthentication, "invalid API key"},
	CodeNotAuthorized:            {CategoryAPI, "user is not authorized for the given operation"},
	CodeTrialExpired:             {CategoryAPI, "trial period is over"},
	CodeNotFound:                 {CategoryAPI, "requested data was not found"},
}

// Category returns the category of c. Unknown codes are plain API faults.
func (c ErrorCode) Category() Category {
	if md, ok := metadataByCode[c]; ok {
		return md.Category
	}
	return CategoryAPI
}

func (c ErrorCode) String() string {
	if md, ok := metadataByCode[c]; ok {
		return fmt.Sprintf("%d (%s)", int(c), md.Description)
	}
	return fmt.Sprintf("%d", int(c))
}

// Fault is the error object of a failed envelope.
type Fault struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// AuthenticationError reports rejected credentials.
type AuthenticationError struct {
	Code    ErrorCode
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("subsonic: authentication failed (code %d): %s", e.Code, e.Message)
}

// VersionError reports a protocol version the server will not speak. Requested
// and Supported are only known when the error comes from Client.Connect.
type VersionError struct {
	Code      ErrorCode
	Message   string
	Requested string
	Supported string
}

func (e *VersionError) Error() string {
	if e.Requested != "" {
		return fmt.Sprintf("subsonic: incompatible protocol version (code %d): requested %s, server speaks %s: %s",
			e.Code, e.Requested, e.Supported, e.Message)
	}
	return fmt.Sprintf("subsonic: incompatible protocol version (code %d): %s", e.Code, e.Message)
}

// APIError is any other server-reported fault.
type APIError struct {
	Code    ErrorCode
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("subsonic: server error (code %d): %s", e.Code, e.Message)
}

// Classify converts a fault into its categorized error.
func Classify(f Fault) error {
	switch f.Code.Category() {
	case CategoryAuthentication:
		return &AuthenticationError{Code: f.Code, Message: f.Message}
	case CategoryVersion:
		return &VersionError{Code: f.Code, Message: f.Message}
	default:
		return &APIError{Code: f.Code, Message: f.Message}
	}
}

// CodeOf extracts the server fault code carried by err, if any.
func CodeOf(err error) (ErrorCode, bool) {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Code, true
	}
	var versionErr *VersionError
	if errors.As(err, &versionErr) {
		return versionErr.Code, true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return 0, false
}

// IsNotFound reports whether err is a "data not found" fault.
func IsNotFound(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == CodeNotFound
}

// TransportDecodeError reports bytes that could not be read or parsed in the
// expected format.
type TransportDecodeError struct {
	Format Format
	Err    error
}

func (e *TransportDecodeError) Error() string {
	return fmt.Sprintf("subsonic: malformed %s document: %v", e.Format, e.Err)
}

func (e *TransportDecodeError) Unwrap() error { return e.Err }

// InvalidEnvelope reports a well-formed document that is not a valid response
// envelope.
type InvalidEnvelope struct {
	Reason string
}

func (e *InvalidEnvelope) Error() string {
	return "subsonic: invalid response envelope: " + e.Reason
}

// MalformedScalar reports a field value that none of the accepted encodings
// could normalize.
type MalformedScalar struct {
	Field string
	Value any
	Want  string
}

func (e *MalformedScalar) Error() string {
	return fmt.Sprintf("subsonic: field %q: cannot read %#v as %s", e.Field, e.Value, e.Want)
}

// MalformedCollection reports a list field carried by an unusable token kind.
type MalformedCollection struct {
	Field string
	Kind  string
}

func (e *MalformedCollection) Error() string {
	return fmt.Sprintf("subsonic: field %q: cannot read %s as a list", e.Field, e.Kind)
}

// PayloadDecodeError wraps a field failure with the response type being decoded.
type PayloadDecodeError struct {
	Type string
	Path string
	Err  error
}

func (e *PayloadDecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("subsonic: decoding %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("subsonic: decoding %s at %s: %v", e.Type, e.Path, e.Err)
}

func (e *PayloadDecodeError) Unwrap() error { return e.Err }
