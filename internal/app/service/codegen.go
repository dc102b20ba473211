package service

import (
	"crypto/rand"
	"math/big"
)

const (
	// URL-safe alphabet, same set nanoid draws from.
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz-"
	codeLength   = 6
)

// GenerateCode produces a random fixed-length short code. Randomness makes
// collisions rare, not impossible; Create retries on collision.
func GenerateCode() (string, error) {
	b := make([]byte, codeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}

		b[i] = codeAlphabet[n.Int64()]
	}

	return string(b), nil
}
