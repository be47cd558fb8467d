// Package base24 encodes byte strings using a 24-symbol alphabet that leaves
// out characters which are easy to confuse when typed by hand.
//
// Leading zero bytes are compressed the way Bitcoin's base58 does it: each one
// becomes a single leading Alphabet[0] symbol.
package base24

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Alphabet is the ordered symbol set. The index of a symbol is its digit value.
const Alphabet = "3479ACDEFHJKLMNPQRTUVWXY"

const base = int64(len(Alphabet))

var (
	ErrInvalidSymbol  = errors.New("invalid base24 symbol")
	ErrLengthMismatch = errors.New("decoded length mismatch")
)

var bigBase = big.NewInt(base)

// Encode returns the base24 encoding of src.
func Encode(src []byte) string {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	value := new(big.Int).SetBytes(src[zeros:])
	mod := new(big.Int)

	// Digits come out least significant first.
	var digits []byte
	for value.Sign() > 0 {
		value.DivMod(value, bigBase, mod)
		digits = append(digits, Alphabet[mod.Int64()])
	}

	var sb strings.Builder
	sb.Grow(zeros + len(digits))
	for i := 0; i < zeros; i++ {
		sb.WriteByte(Alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// Decode returns the bytes represented by the base24 string s.
func Decode(s string) ([]byte, error) {
	value := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(Alphabet, s[i])
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, s[i], i)
		}
		value.Mul(value, bigBase)
		value.Add(value, digit.SetInt64(int64(idx)))
	}

	zeros := 0
	for zeros < len(s) && s[zeros] == Alphabet[0] {
		zeros++
	}

	body := value.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}

// MaxEncodedLen returns the longest encoding of any n-byte input, counting one
// symbol per compressed leading zero.
func MaxEncodedLen(n int) int {
	return int(math.Ceil(float64(n*8)/math.Log2(float64(base)))) + n
}

// DecodeLength decodes s and checks that the result is exactly n bytes long.
// Strings too long to encode n bytes are rejected before decoding.
func DecodeLength(s string, n int) ([]byte, error) {
	if limit := MaxEncodedLen(n); len(s) > limit {
		return nil, fmt.Errorf("%w: %d symbols exceeds %d for %d bytes", ErrLengthMismatch, len(s), limit, n)
	}
	out, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(out) != n {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrLengthMismatch, n, len(out))
	}
	return out, nil
}
