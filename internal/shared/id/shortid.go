// Package id provides cryptographically random identifier fragments.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// hexUpper is the alphabet used for ticket number suffixes.
	hexUpper = "0123456789ABCDEF"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	return fromAlphabet(alphabet, length, DefaultLength)
}

// HexUpper creates a random uppercase hexadecimal string of the given length.
// Used for ticket number suffixes (e.g. the XXXXXX in TICK-26-3F09AB).
func HexUpper(length int) (string, error) {
	return fromAlphabet(hexUpper, length, 6)
}

func fromAlphabet(chars string, length, fallback int) (string, error) {
	if length <= 0 {
		length = fallback
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(chars)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = chars[num.Int64()]
	}

	return string(result), nil
}
