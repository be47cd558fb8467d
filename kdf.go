package transkey

import (
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/OhanaFS/transkey/aes"
	"github.com/OhanaFS/transkey/header"
)

// scrypt parameters for PIN stretching. Changing any of them makes every
// existing transport key unreadable.
const (
	scryptN      = 8192
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

// deriveKeys stretches the PIN with scrypt, salted by the checksum, and splits
// the SHA-512 of the result into one AES-256 key per half of the secret.
func deriveKeys(pin string, checksum header.Checksum) (k1, k2 []byte, err error) {
	stretched, err := scrypt.Key([]byte(pin), checksum.Salt(), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive key from pin: %w", err)
	}
	digest := sha512.Sum512(stretched)
	return digest[:aes.KeySize], digest[aes.KeySize:], nil
}

// sealSecret encrypts both halves of the secret under keys derived from pin.
func sealSecret(secret []byte, pin string, checksum header.Checksum) ([32]byte, error) {
	var ciphertext [32]byte

	k1, k2, err := deriveKeys(pin, checksum)
	if err != nil {
		return ciphertext, err
	}
	enc1, err := aes.EncryptBlock(k1, secret[:aes.BlockSize])
	if err != nil {
		return ciphertext, fmt.Errorf("failed to encrypt first half: %w", err)
	}
	enc2, err := aes.EncryptBlock(k2, secret[aes.BlockSize:])
	if err != nil {
		return ciphertext, fmt.Errorf("failed to encrypt second half: %w", err)
	}

	copy(ciphertext[:aes.BlockSize], enc1)
	copy(ciphertext[aes.BlockSize:], enc2)
	return ciphertext, nil
}

// openSecret reverses sealSecret.
func openSecret(ciphertext [32]byte, pin string, checksum header.Checksum) ([]byte, error) {
	k1, k2, err := deriveKeys(pin, checksum)
	if err != nil {
		return nil, err
	}
	dec1, err := aes.DecryptBlock(k1, ciphertext[:aes.BlockSize])
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt first half: %w", err)
	}
	dec2, err := aes.DecryptBlock(k2, ciphertext[aes.BlockSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt second half: %w", err)
	}

	return append(dec1, dec2...), nil
}
