package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ResetTokenTTL is how long a password-reset token stays redeemable.
const ResetTokenTTL = time.Hour

const resetTokenBytes = 20

// NewResetToken returns a hex-encoded opaque token for the password-reset flow.
func NewResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
