package subsonic

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want Category
	}{
		{CodeGeneric, CategoryAPI},
		{CodeMissingParameter, CategoryAPI},
		{CodeClientTooOld, CategoryVersion},
		{CodeServerTooOld, CategoryVersion},
		{CodeWrongCredentials, CategoryAuthentication},
		{CodeTokenAuthUnsupported, CategoryAuthentication},
		{CodeAuthMechanismUnsupported, CategoryAuthentication},
		{CodeConflictingAuth, CategoryAuthentication},
		{CodeInvalidAPIKey, CategoryAuthentication},
		{CodeNotAuthorized, CategoryAPI},
		{CodeTrialExpired, CategoryAPI},
		{CodeNotFound, CategoryAPI},
		{ErrorCode(1234), CategoryAPI},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Category())

			err := Classify(Fault{Code: tt.code, Message: "msg"})
			switch tt.want {
			case CategoryAuthentication:
				assert.IsType(t, &AuthenticationError{}, err)
			case CategoryVersion:
				assert.IsType(t, &VersionError{}, err)
			default:
				assert.IsType(t, &APIError{}, err)
			}

			code, ok := CodeOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestCodeOfWrapped(t *testing.T) {
	err := errors.Wrap(Classify(Fault{Code: CodeNotFound, Message: "Album not found"}), "loading album")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Album not found")

	_, ok := CodeOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsNotFound(nil))
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "40 (wrong username or password)", CodeWrongCredentials.String())
	assert.Equal(t, "99", ErrorCode(99).String())
}

func TestVersionErrorMessage(t *testing.T) {
	err := &VersionError{Code: CodeClientTooOld, Message: "upgrade", Requested: "1.0.0", Supported: "1.16.1"}
	assert.Contains(t, err.Error(), "requested 1.0.0")
	assert.Contains(t, err.Error(), "server speaks 1.16.1")

	bare := &VersionError{Code: CodeServerTooOld, Message: "upgrade"}
	assert.NotContains(t, bare.Error(), "requested")
}

func TestPayloadDecodeErrorUnwraps(t *testing.T) {
	inner := &MalformedScalar{Field: "x", Value: "y", Want: "bool"}
	err := &PayloadDecodeError{Type: "subsonic.PingResponse", Path: "x", Err: inner}

	var scalarErr *MalformedScalar
	require.True(t, errors.As(err, &scalarErr))
	assert.Same(t, inner, scalarErr)
	assert.Contains(t, err.Error(), "at x")
}
