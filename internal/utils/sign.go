package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// cookieSignSeparator joins the payload and its signature inside a signed
// cookie value. A dot never appears in hex output, so splitting on the last
// dot is unambiguous.
const cookieSignSeparator = "."

// SignString returns data joined with its hex-encoded HMAC-SHA256 signature
// computed under key, suitable for storing in a cookie value.
//
// Example usage:
//
//	cookieValue := utils.SignString(sessionID, secretKey)
func SignString(data string, key string) string {
	return data + cookieSignSeparator + hex.EncodeToString(hashString([]byte(data), key))
}

// VerifySignedString splits a value produced by [SignString] and checks its
// signature under key in constant time.
//
// Returns the original payload and true when the signature matches, or an
// empty string and false for malformed or tampered values.
func VerifySignedString(signed string, key string) (string, bool) {
	idx := strings.LastIndex(signed, cookieSignSeparator)
	if idx < 0 {
		return "", false
	}

	data := signed[:idx]
	gotSig, err := hex.DecodeString(signed[idx+1:])
	if err != nil {
		return "", false
	}

	wantSig := hashString([]byte(data), key)
	if !hmac.Equal(gotSig, wantSig) {
		return "", false
	}

	return data, true
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided key. A new HMAC instance is created on each call.
func hashString(data []byte, key string) []byte {
	hasher := hmac.New(sha256.New, []byte(key))
	hasher.Write(data)
	return hasher.Sum(nil)
}
