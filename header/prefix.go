package header

import (
	"encoding/binary"
	"fmt"
)

// Prefix is the 16-bit header word of a transport key:
//
//	bits 15..6  network id
//	bits  5..3  share count - 1
//	bits  2..0  share index
type Prefix uint16

// NewPrefix packs the network id and share coordinates into a prefix word.
// Values outside their field widths are masked.
func NewPrefix(netID uint16, shareCount, shareIndex int) Prefix {
	return Prefix((netID&0x3FF)<<6 |
		uint16((shareCount-1)&0x7)<<3 |
		uint16(shareIndex&0x7))
}

// PrefixFromBytes reads a big-endian prefix word from the first two bytes of b.
func PrefixFromBytes(b []byte) Prefix {
	return Prefix(binary.BigEndian.Uint16(b))
}

// Bytes returns the big-endian encoding of the prefix.
func (p Prefix) Bytes() [2]byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(p))
	return b
}

// Verify checks that p is exactly the prefix expected for the given network
// and share coordinates.
func (p Prefix) Verify(netID uint16, shareCount, shareIndex int) error {
	want := NewPrefix(netID, shareCount, shareIndex)
	if p != want {
		return fmt.Errorf("%w: got %#04x, want %#04x", ErrPrefixMismatch, uint16(p), uint16(want))
	}
	return nil
}

// NetID returns the network id field.
func (p Prefix) NetID() uint16 {
	return uint16(p) >> 6
}

// ShareCount returns the number of shares the secret was split into.
func (p Prefix) ShareCount() int {
	return int(uint16(p)>>3&0x7) + 1
}

// ShareIndex returns the index of this share.
func (p Prefix) ShareIndex() int {
	return int(uint16(p) & 0x7)
}
