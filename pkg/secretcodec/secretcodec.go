// Package secretcodec converts between UTF-8 strings and the big-endian
// unsigned integers the VSS engine shares and masks.
package secretcodec

import (
	"fmt"
	"math/big"
	"unicode/utf8"
)

// Encode interprets message's UTF-8 bytes as a big-endian unsigned integer.
func Encode(message string) *big.Int {
	return new(big.Int).SetBytes([]byte(message))
}

// Decode interprets secret's big-endian unsigned byte representation as a
// UTF-8 string. It returns an error if the bytes are not valid UTF-8.
func Decode(secret *big.Int) (string, error) {
	b := secret.Bytes()
	if !utf8.Valid(b) {
		return "", fmt.Errorf("secretcodec: decoded bytes are not valid UTF-8")
	}
	return string(b), nil
}
