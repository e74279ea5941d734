// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GenerateSKU returns SKU-<base36 millis>-<random>, upper-cased.
func GenerateSKU() (string, error) {
	return generateSKU(time.Now())
}

func generateSKU(now time.Time) (string, error) {
	suffix, err := GenerateRandomString(5)
	if err != nil {
		return "", err
	}
	stamp := strconv.FormatInt(now.UnixMilli(), 36)
	return strings.ToUpper("SKU-" + stamp + "-" + suffix), nil
}
