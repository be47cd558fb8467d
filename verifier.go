package transkey

import (
	"errors"
	"fmt"

	"github.com/OhanaFS/transkey/base24"
	"github.com/OhanaFS/transkey/header"
)

// KeyInfo describes the public fields of a transport key. Reading them needs
// no PIN.
type KeyInfo struct {
	// NetID is the network id embedded in the prefix.
	NetID uint16
	// ShareCount is the number of shares the secret was split into.
	ShareCount int
	// ShareIndex is the index of this share.
	ShareIndex int
	// Checksum is the 20-bit checksum value, which also salts the PIN.
	Checksum uint32
	// Payload is the decoded payload.
	Payload *header.Payload
}

// Inspect parses a transport key without decrypting it. It detects whether
// the key uses the single or multi-share layout from its decoded length and
// checks that the embedded share count agrees with that layout.
func Inspect(key string) (*KeyInfo, error) {
	stripped := StripDashes(key)
	if limit := base24.MaxEncodedLen(shareWireSize); len(stripped) > limit {
		return nil, fmt.Errorf("%w: %w: %d symbols", ErrMalformedKey, ErrLengthMismatch, len(stripped))
	}
	raw, err := base24.Decode(stripped)
	if err != nil {
		return nil, err
	}

	var multi bool
	switch len(raw) {
	case header.PayloadSize:
	case shareWireSize:
		multi = true
	default:
		return nil, fmt.Errorf("%w: %w: decoded %d bytes", ErrMalformedKey, ErrLengthMismatch, len(raw))
	}

	payload, err := parsePayload(raw, multi)
	if err != nil {
		return nil, err
	}

	info := &KeyInfo{
		NetID:      payload.Prefix.NetID(),
		ShareCount: payload.Prefix.ShareCount(),
		ShareIndex: payload.Prefix.ShareIndex(),
		Checksum:   payload.Checksum.Value(),
		Payload:    payload,
	}
	if multi != (info.ShareCount > 1) {
		return nil, fmt.Errorf("%w: share count %d in %d-byte key", ErrMalformedKey, info.ShareCount, len(raw))
	}
	if info.ShareIndex >= info.ShareCount {
		return nil, fmt.Errorf("%w: share index %d of %d", ErrMalformedKey, info.ShareIndex, info.ShareCount)
	}
	return info, nil
}

// IsWrongPIN reports whether err was caused by a PIN that does not match the
// key, as opposed to a damaged key or one from another network.
func IsWrongPIN(err error) bool {
	return errors.Is(err, ErrChecksumMismatch)
}
