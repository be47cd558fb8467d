package transkey

import (
	"fmt"
	"io"

	"github.com/OhanaFS/transkey/base24"
	"github.com/OhanaFS/transkey/header"
	"github.com/OhanaFS/transkey/util"
)

// Encrypt protects a 32-byte secret with pin and returns the transport key.
//
// Passing a secret of any other length is a programming error and panics.
func (c *Codec) Encrypt(secret []byte, pin string) (string, error) {
	return c.EncryptShare(secret, pin, 1, 0)
}

// EncryptShare protects one share of a split secret. Keys for shareCount == 1
// are identical to the ones produced by Encrypt.
//
// Multi-share keys carry the checksum three bytes past the end of the payload
// and apply one extra nibble shift, so the decoded key is 40 bytes long:
//
//	ShiftRight4( ShiftRight4(prefix || ciphertext || 000) || checksum )
func (c *Codec) EncryptShare(secret []byte, pin string, shareCount, shareIndex int) (string, error) {
	if len(secret) != SecretSize {
		panic(fmt.Errorf("%w: got %d", ErrKeyLength, len(secret)))
	}
	if err := validateShare(shareCount, shareIndex); err != nil {
		return "", err
	}

	payload := header.Payload{Prefix: header.NewPrefix(c.opts.NetID, shareCount, shareIndex)}
	payload.Checksum = header.ComputeChecksum(payload.Prefix, secret)

	ciphertext, err := sealSecret(secret, pin, payload.Checksum)
	if err != nil {
		return "", err
	}
	payload.Ciphertext = ciphertext

	data, err := payload.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %v", err)
	}

	if shareCount > 1 {
		// The inner layer holds the checksum bytes as zeros; the real checksum
		// is appended after the shift.
		inner := make([]byte, header.PayloadSize)
		copy(inner, data[:header.PayloadSize-header.ChecksumSize])
		data = append(util.ShiftRight4(inner), payload.Checksum[:]...)
	}

	return base24.Encode(util.ShiftRight4(data)), nil
}

// EncryptShares splits the secret into one share per PIN and encrypts each
// share under its PIN. The returned keys must be decrypted in the same order.
func (c *Codec) EncryptShares(secret []byte, pins []string, rand io.Reader) ([]string, error) {
	if len(secret) != SecretSize {
		panic(fmt.Errorf("%w: got %d", ErrKeyLength, len(secret)))
	}
	if len(pins) == 0 {
		return nil, ErrNotEnoughShares
	}
	if len(pins) > MaxShares {
		return nil, ErrInvalidShare
	}

	parts, err := SplitShares(secret, len(pins), rand)
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(pins))
	for i, pin := range pins {
		keys[i], err = c.EncryptShare(parts[i], pin, len(pins), i)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt share %d: %w", i, err)
		}
	}
	return keys, nil
}
