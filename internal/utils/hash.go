package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignString computes a hex-encoded HMAC-SHA256 signature of value under
// the given secret.
func SignString(secret, value string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyString reports whether signature is a valid HMAC-SHA256 signature
// of value under the given secret. The comparison is constant-time.
func VerifyString(secret, value, signature string) bool {
	expected := SignString(secret, value)
	return hmac.Equal([]byte(expected), []byte(signature))
}
