package util

import "errors"

var ErrOverflow = errors.New("nibble shift would drop high bits")

// ShiftLeft4 treats buf as a big-endian unsigned integer and returns it
// multiplied by 16, keeping the same width. It fails if the top nibble of the
// first byte is set. buf is not modified.
func ShiftLeft4(buf []byte) ([]byte, error) {
	if len(buf) > 0 && buf[0]&0xF0 != 0 {
		return nil, ErrOverflow
	}
	out := make([]byte, len(buf))
	for i := range buf {
		out[i] = buf[i] << 4
		if i+1 < len(buf) {
			out[i] |= buf[i+1] >> 4
		}
	}
	return out, nil
}

// ShiftRight4 treats buf as a big-endian unsigned integer and returns it
// divided by 16, keeping the same width. buf is not modified.
func ShiftRight4(buf []byte) []byte {
	out := make([]byte, len(buf))
	for i := range buf {
		out[i] = buf[i] >> 4
		if i > 0 {
			out[i] |= buf[i-1] << 4
		}
	}
	return out
}
