// Package aes wraps AES-256 as a single-block electronic codebook cipher. Each
// call encrypts or decrypts exactly one 16-byte block with no IV or chaining.
package aes

import (
	"crypto/aes"
	"errors"
)

// KeySize is the only accepted key length.
const KeySize = 32

// BlockSize is the AES block size.
const BlockSize = aes.BlockSize

var (
	ErrInvalidKeyLength   = errors.New("key must be 32 bytes long")
	ErrInvalidBlockLength = errors.New("block must be 16 bytes long")
)

// EncryptBlock encrypts a single 16-byte block under a 32-byte key.
func EncryptBlock(key, block []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(block) != BlockSize {
		return nil, ErrInvalidBlockLength
	}

	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, BlockSize)
	c.Encrypt(out, block)
	return out, nil
}

// DecryptBlock reverses EncryptBlock.
func DecryptBlock(key, block []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(block) != BlockSize {
		return nil, ErrInvalidBlockLength
	}

	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, BlockSize)
	c.Decrypt(out, block)
	return out, nil
}
