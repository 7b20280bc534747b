package service

import (
	"crypto/rand"
	"math/big"
)

const (
	tempPasswordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// 14 symbols over a 62-character alphabet is a little over 83 bits
	// of entropy. The string is a real credential until the first
	// login, so it comes from crypto/rand.
	tempPasswordLength = 14
)

func generateTempPassword() (string, error) {
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	buf := make([]byte, tempPasswordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
