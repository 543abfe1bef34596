// Package joincode generates the human-shareable codes members use to
// associate with a society at signup, e.g. "A8B-C1D".
package joincode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const (
	alphabet = "1234567890ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	rawLen   = 6
)

var codePattern = regexp.MustCompile(`^[0-9A-Z]{3}-[0-9A-Z]{3}$`)

// New returns a fresh join code in XXX-XXX form. Codes are random, not
// checked for uniqueness; the organizations unique index is the backstop.
func New() (string, error) {
	buf := make([]byte, rawLen)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("joincode: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf[:3]) + "-" + string(buf[3:]), nil
}

// Valid reports whether s is a well-formed join code.
func Valid(s string) bool {
	return codePattern.MatchString(s)
}
