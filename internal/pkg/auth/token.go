package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// TokenCodec issues and verifies session tokens. Tokens are HMAC-SHA256
// signed "userID:expiry" payloads, base64 encoded.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec with the given signing secret; a non-positive
// ttl falls back to 24h.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed token for the user.
func (c *TokenCodec) Issue(userID int64) (string, error) {
	payload := fmt.Sprintf("%d:%d", userID, time.Now().Add(c.ttl).Unix())
	token := fmt.Sprintf("%s:%s", payload, c.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// Parse validates a token and returns the encoded user id.
func (c *TokenCodec) Parse(token string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return 0, ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(c.sign(payload)), []byte(parts[2])) {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if time.Unix(expires, 0).Before(time.Now()) {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (c *TokenCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
