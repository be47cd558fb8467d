package transkey

import (
	"errors"
	"fmt"

	"github.com/OhanaFS/transkey/base24"
	"github.com/OhanaFS/transkey/header"
	"github.com/OhanaFS/transkey/util"
)

// readPayload decodes a transport key string into its payload. Keys of
// multi-share secrets use the wider layout written by EncryptShare.
func readPayload(key string, multi bool) (*header.Payload, error) {
	size := header.PayloadSize
	if multi {
		size = shareWireSize
	}

	raw, err := base24.DecodeLength(StripDashes(key), size)
	if err != nil {
		if errors.Is(err, base24.ErrInvalidSymbol) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	return parsePayload(raw, multi)
}

// parsePayload unpacks the decoded bytes of a transport key.
func parsePayload(raw []byte, multi bool) (*header.Payload, error) {
	data, err := util.ShiftLeft4(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	if !multi {
		payload := &header.Payload{}
		if err := payload.UnmarshalBinary(data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
		}
		return payload, nil
	}

	// The checksum sits after the payload and is read before the inner shift.
	// The 20 bits in front of it must be zero or a copy of the checksum.
	checksum := header.ChecksumFromBytes(data[header.PayloadSize:])
	pad := data[header.PayloadSize-header.ChecksumSize : header.PayloadSize]
	padding := uint32(pad[0]&0x0F)<<16 | uint32(pad[1])<<8 | uint32(pad[2])
	if padding != 0 && padding != checksum.Value() {
		return nil, fmt.Errorf("%w: share padding %05x", ErrMalformedKey, padding)
	}
	if data, err = util.ShiftLeft4(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	payload := &header.Payload{}
	if err := payload.UnmarshalBinary(data[:header.PayloadSize]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	payload.Checksum = checksum
	return payload, nil
}

// Decrypt recovers the secret from a single transport key. Dashes in key are
// ignored.
//
// A key that cannot be parsed fails with ErrInvalidSymbol or ErrMalformedKey,
// a key for another network with ErrPrefixMismatch, and a wrong PIN with
// ErrChecksumMismatch.
func (c *Codec) Decrypt(key, pin string) ([]byte, error) {
	return c.DecryptShare(key, pin, 1, 0)
}

// DecryptShare recovers one share of a split secret. The share count and index
// must match the ones the key was created with.
func (c *Codec) DecryptShare(key, pin string, shareCount, shareIndex int) ([]byte, error) {
	if err := validateShare(shareCount, shareIndex); err != nil {
		return nil, err
	}

	payload, err := readPayload(key, shareCount > 1)
	if err != nil {
		c.log.Debug("rejected transport key", "share", shareIndex, "err", err)
		return nil, err
	}

	if err := payload.Prefix.Verify(c.opts.NetID, shareCount, shareIndex); err != nil {
		c.log.Debug("rejected transport key", "share", shareIndex, "err", err)
		return nil, err
	}

	secret, err := openSecret(payload.Ciphertext, pin, payload.Checksum)
	if err != nil {
		return nil, err
	}

	expected := header.ComputeChecksum(payload.Prefix, secret)
	if err := expected.Verify(payload.Checksum); err != nil {
		c.log.Debug("rejected transport pin", "share", shareIndex)
		return nil, err
	}

	return secret, nil
}

// DecryptShares decrypts every share, using its position in the list as the
// share index, and combines them into the secret.
func (c *Codec) DecryptShares(shares []Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrNotEnoughShares
	}

	parts := make([][]byte, len(shares))
	for i, s := range shares {
		part, err := c.DecryptShare(s.Key, s.PIN, len(shares), i)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt share %d: %w", i, err)
		}
		parts[i] = part
	}

	return CombineShares(parts)
}
