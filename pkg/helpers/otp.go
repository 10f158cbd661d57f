package helpers

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenOTPCode generates a secure random 6-digit OTP code in the range
// 100000-999999, so the leading digit is never zero.
func GenOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
