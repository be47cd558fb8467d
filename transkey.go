// Transkey encodes 32-byte secrets into short, PIN-protected strings that can
// be typed by hand, and splits them across several independently protected
// shares.
package transkey

import (
	"errors"
	"io"
	"log/slog"

	"github.com/OhanaFS/transkey/base24"
	"github.com/OhanaFS/transkey/header"
	"github.com/OhanaFS/transkey/util"
)

const (
	// SecretSize is the size of a secret protected by a transport key.
	SecretSize = 32
	// MaxShares is the largest number of shares a secret can be split into.
	MaxShares = 8

	// shareWireSize is the decoded size of a share with more than one part.
	shareWireSize = header.PayloadSize + header.ChecksumSize
)

var (
	ErrInvalidSymbol    = base24.ErrInvalidSymbol
	ErrLengthMismatch   = base24.ErrLengthMismatch
	ErrOverflow         = util.ErrOverflow
	ErrPrefixMismatch   = header.ErrPrefixMismatch
	ErrChecksumMismatch = header.ErrChecksumMismatch

	ErrMalformedKey    = errors.New("malformed transport key")
	ErrKeyLength       = errors.New("secret must be 32 bytes long")
	ErrInvalidShare    = errors.New("invalid share count or index")
	ErrNotEnoughShares = errors.New("at least one share is required")
)

// CodecOptions specifies options for the Codec.
type CodecOptions struct {
	// NetID is the 10-bit network identifier embedded in every key.
	NetID uint16
	// Logger receives debug messages about rejected keys. It never sees PINs
	// or secrets. A nil Logger discards everything.
	Logger *slog.Logger
}

// Codec converts secrets to and from transport keys bound to one network.
//
// Encoding a secret follows these steps:
//
//  1. Build the prefix word from the network id and share coordinates
//  2. Compute the 20-bit checksum of prefix and secret
//  3. Stretch the PIN with scrypt, salted with the checksum, and hash the
//     result with SHA-512 into two AES-256 keys
//  4. Encrypt each half of the secret under its own key
//  5. Lay out prefix, both ciphertext blocks and the checksum, shift the
//     whole buffer right by one nibble and encode it as base24
//
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	opts CodecOptions
	log  *slog.Logger
}

// Share is one PIN-protected part of a split secret.
type Share struct {
	Key string `yaml:"key" json:"key"`
	PIN string `yaml:"pin" json:"pin"`
}

func NewCodec(opts *CodecOptions) *Codec {
	c := &Codec{opts: *opts, log: opts.Logger}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// NetID returns the network identifier the codec was created with.
func (c *Codec) NetID() uint16 {
	return c.opts.NetID
}

func validateShare(shareCount, shareIndex int) error {
	if shareCount < 1 || shareCount > MaxShares || shareIndex < 0 || shareIndex >= shareCount {
		return ErrInvalidShare
	}
	return nil
}
