// Package joincode generates the short codes students type to join a group.
package joincode

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Alphabet leaves out I, O, 0 and 1, which are easy to misread.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the number of characters in a join code.
const Length = 6

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// Generate returns a random join code. Uniqueness is the caller's concern.
func Generate() (string, error) {
	code := make([]byte, Length)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		code[i] = Alphabet[n.Int64()]
	}
	return string(code), nil
}

// Normalize trims surrounding space and upper-cases a user-entered code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether code, once normalized, is a well-formed join code.
func Valid(code string) bool {
	code = Normalize(code)
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(Alphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}
