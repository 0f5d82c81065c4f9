package subsonic

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/rand"
	"net/url"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randSeq(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// Authenticator adds credentials to the query of every request.
type Authenticator interface {
	Apply(params url.Values)
}

// TokenAuth is salted-token authentication (API 1.13.0 and later).
type TokenAuth struct {
	Username string
	Password string
}

func (a TokenAuth) Apply(params url.Values) {
	token, salt := authToken(a.Password)
	params.Set("u", a.Username)
	params.Set("t", token)
	params.Set("s", salt)
}

func authToken(password string) (string, string) {
	salt := randSeq(8)
	token := fmt.Sprintf("%x", md5.Sum([]byte(password+salt)))

	return token, salt
}

// PasswordAuth sends the password itself, hex encoded with an "enc:" prefix
// when Hex is set. Servers older than 1.13.0 only accept this form.
type PasswordAuth struct {
	Username string
	Password string
	Hex      bool
}

func (a PasswordAuth) Apply(params url.Values) {
	params.Set("u", a.Username)
	if a.Hex {
		params.Set("p", "enc:"+hex.EncodeToString([]byte(a.Password)))
		return
	}
	params.Set("p", a.Password)
}

// APIKeyAuth is the OpenSubsonic apiKey extension. It must not be combined
// with a username.
type APIKeyAuth struct {
	Key string
}

func (a APIKeyAuth) Apply(params url.Values) {
	params.Set("apiKey", a.Key)
}
