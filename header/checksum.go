package header

import (
	"crypto/sha256"
	"crypto/subtle"
)

// ChecksumSize is the number of bytes a checksum occupies. Only the top 20
// bits carry information; the low nibble of the last byte is always zero.
const ChecksumSize = 3

// Checksum is the first 20 bits of SHA-256(SHA-256(prefix || secret)).
type Checksum [ChecksumSize]byte

// ComputeChecksum returns the checksum of the given prefix and secret.
func ComputeChecksum(p Prefix, secret []byte) Checksum {
	prefix := p.Bytes()
	h := sha256.New()
	h.Write(prefix[:])
	h.Write(secret)
	first := h.Sum(nil)
	digest := sha256.Sum256(first)

	return Checksum{digest[0], digest[1], digest[2] & 0xF0}
}

// ChecksumFromBytes reads a checksum from the first three bytes of b, dropping
// the unused low nibble.
func ChecksumFromBytes(b []byte) Checksum {
	return Checksum{b[0], b[1], b[2] & 0xF0}
}

// Value returns the 20-bit checksum value.
func (c Checksum) Value() uint32 {
	return uint32(c[0])<<12 | uint32(c[1])<<4 | uint32(c[2])>>4
}

// Salt returns the 5-byte scrypt salt derived from the checksum value v,
// which is the big-endian encoding of v | v<<20.
func (c Checksum) Salt() []byte {
	v := uint64(c.Value())
	salt := v | v<<20
	return []byte{
		byte(salt >> 32),
		byte(salt >> 24),
		byte(salt >> 16),
		byte(salt >> 8),
		byte(salt),
	}
}

// Verify compares c against other in constant time.
func (c Checksum) Verify(other Checksum) error {
	if subtle.ConstantTimeCompare(c[:], other[:]) != 1 {
		return ErrChecksumMismatch
	}
	return nil
}
