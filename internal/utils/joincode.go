package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const joinCodePrefix = "APAN-"

// NewJoinCode returns a shareable code like APAN-3F0A. The keyspace is tiny on
// purpose; the unique index on projects.join_code is the arbiter and a
// collision surfaces as a retryable server error.
func NewJoinCode() (string, error) {
	buf := make([]byte, 2)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return joinCodePrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
