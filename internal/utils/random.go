package utils

import (
	"crypto/rand"
	"math/big"
)

const upperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomUpperAlphanumeric generates a cryptographically unpredictable
// string of the given length over [A-Z0-9].
func RandomUpperAlphanumeric(length int) string {
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(upperAlphanumeric))))
		if err != nil {
			panic(err)
		}
		b[i] = upperAlphanumeric[num.Int64()]
	}
	return string(b)
}

// RandomNumericString generates a random string containing only digits.
func RandomNumericString(length int) string {
	const digits = "0123456789"
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			panic(err)
		}
		b[i] = digits[num.Int64()]
	}
	return string(b)
}
