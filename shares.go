package transkey

import (
	"fmt"
	"io"
)

// CombineShares XORs decrypted shares together into the original secret. A
// single share is returned unchanged.
//
// Shares are not authenticated here; each one must already have passed its
// checksum in DecryptShare.
func CombineShares(shares [][]byte) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrNotEnoughShares
	}

	secret := make([]byte, SecretSize)
	for i, share := range shares {
		if len(share) != SecretSize {
			return nil, fmt.Errorf("%w: share %d is %d bytes", ErrKeyLength, i, len(share))
		}
		for j, b := range share {
			secret[j] ^= b
		}
	}
	return secret, nil
}

// SplitShares splits a secret into n shares, all of which are needed to
// recover it. The first n-1 shares are read from rand and the last one is the
// secret XORed with all of them.
func SplitShares(secret []byte, n int, rand io.Reader) ([][]byte, error) {
	if len(secret) != SecretSize {
		return nil, fmt.Errorf("%w: got %d", ErrKeyLength, len(secret))
	}
	if n < 1 || n > MaxShares {
		return nil, ErrInvalidShare
	}

	shares := make([][]byte, n)
	last := make([]byte, SecretSize)
	copy(last, secret)
	for i := 0; i < n-1; i++ {
		shares[i] = make([]byte, SecretSize)
		if _, err := io.ReadFull(rand, shares[i]); err != nil {
			return nil, fmt.Errorf("failed to generate share %d: %w", i, err)
		}
		for j, b := range shares[i] {
			last[j] ^= b
		}
	}
	shares[n-1] = last
	return shares, nil
}
