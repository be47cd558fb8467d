package debug

import (
	"fmt"
	"io"
)

// Hexdump writes a hexdump of the given data to w, one 16-byte row per line,
// each row tagged with prefix.
func Hexdump(w io.Writer, data []byte, prefix string) {
	bytesPerLine := 16

	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(w, "[%s] %04x: ", prefix, i)
		for j := 0; j < bytesPerLine; j++ {
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprint(w, "   ")
			}
			if j%8 == 7 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprint(w, "\n")
	}
}
