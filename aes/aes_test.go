package aes_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OhanaFS/transkey/aes"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestAES(t *testing.T) {
	assert := assert.New(t)

	// FIPS-197 appendix C.3
	key := mustHex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	plaintext := mustHex("00112233445566778899aabbccddeeff")
	expected := mustHex("8ea2b7ca516745bfeafc49904b496089")

	ciphertext, err := aes.EncryptBlock(key, plaintext)
	assert.NoError(err)
	assert.Equal(expected, ciphertext)

	decrypted, err := aes.DecryptBlock(key, ciphertext)
	assert.NoError(err)
	assert.Equal(plaintext, decrypted)
}

func TestAESInvalidLengths(t *testing.T) {
	assert := assert.New(t)

	_, err := aes.EncryptBlock([]byte("11111111aaaaaaaa"), make([]byte, 16))
	assert.ErrorIs(err, aes.ErrInvalidKeyLength)

	_, err = aes.DecryptBlock(make([]byte, 32), make([]byte, 32))
	assert.ErrorIs(err, aes.ErrInvalidBlockLength)
}
