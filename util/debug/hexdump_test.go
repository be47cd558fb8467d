package debug_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OhanaFS/transkey/util/debug"
)

func TestHexdump(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	data := make([]byte, 18)
	for i := range data {
		data[i] = byte(i)
	}
	debug.Hexdump(buf, data, "p")

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	assert.Len(lines, 2)
	assert.Equal("[p] 0000: 00 01 02 03 04 05 06 07  08 09 0a 0b 0c 0d 0e 0f  ", string(lines[0]))
	assert.Equal("[p] 0010: 10 11 ", string(lines[1][:16]))

	buf.Reset()
	debug.Hexdump(buf, nil, "p")
	assert.Equal(0, buf.Len())
}
