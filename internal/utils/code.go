package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateCode returns a 4-digit verification code in the range 1000-9999.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
