// Package header describes the fixed 37-byte layout carried inside a
// transport key, along with its prefix word and checksum field.
package header

import (
	"encoding"
	"errors"
)

// Payload describes the decoded body of a single transport key.
type Payload struct {
	// Prefix identifies the network, the share count and the share index.
	Prefix Prefix
	// Ciphertext holds both AES-256 encrypted halves of the secret.
	Ciphertext [32]byte
	// Checksum is the truncated double SHA-256 of the prefix and plaintext.
	Checksum Checksum
}

// PayloadSize is the size of the payload in bytes.
const PayloadSize = 2 + 32 + ChecksumSize

var _ encoding.BinaryMarshaler = (*Payload)(nil)
var _ encoding.BinaryUnmarshaler = (*Payload)(nil)

var (
	ErrInvalidPayloadSize = errors.New("invalid payload size")
	ErrPrefixMismatch     = errors.New("prefix mismatch")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
)

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (p *Payload) MarshalBinary() ([]byte, error) {
	data := make([]byte, PayloadSize)
	prefix := p.Prefix.Bytes()
	copy(data[:2], prefix[:])
	copy(data[2:34], p.Ciphertext[:])
	copy(data[34:], p.Checksum[:])
	return data, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (p *Payload) UnmarshalBinary(data []byte) error {
	if len(data) != PayloadSize {
		return ErrInvalidPayloadSize
	}

	p.Prefix = PrefixFromBytes(data[:2])
	copy(p.Ciphertext[:], data[2:34])
	copy(p.Checksum[:], data[34:])
	return nil
}
