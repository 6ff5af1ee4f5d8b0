package specfile

import (
	"bytes"
)

// wavSignature terminates the ASCII file identifier at the start of an
// export (e.g. "SCAN1.WAV\x00").
var wavSignature = []byte(".WAV")

// endOfHeaderMarker is the big-endian float32 pair (0.0, 3.0) that closes
// the header block in this instrument family's exports.
var endOfHeaderMarker = []byte{0x00, 0x00, 0x00, 0x00, 0x40, 0x40, 0x00, 0x00}

// minHeaderSkip is the minimum number of leading bytes treated as header
// when the end-of-header marker is absent.
const minHeaderSkip = 100

// boundary marks where the header region ends and the data region begins.
//
// marker is the offset of the end-of-header marker, or -1 when the marker
// was not found. dataStart may exceed the buffer length, in which case the
// data region is empty.
type boundary struct {
	dataStart int
	marker    int
}

// locateHeader finds the end of the header block in a raw export.
//
// It first skips past the file identifier (".WAV" plus the following NUL),
// then searches from there for the end-of-header marker. Without a marker
// the header is assumed to span at least minHeaderSkip bytes.
func locateHeader(content []byte) boundary {
	end := 0
	if idx := bytes.Index(content, wavSignature); idx != -1 {
		if nullPos := bytes.IndexByte(content[idx:], 0x00); nullPos != -1 {
			end = idx + nullPos + 1
		}
	}
	if rel := bytes.Index(content[end:], endOfHeaderMarker); rel != -1 {
		pat := end + rel
		return boundary{dataStart: pat + len(endOfHeaderMarker), marker: pat}
	}
	return boundary{dataStart: max(end, minHeaderSkip), marker: -1}
}
