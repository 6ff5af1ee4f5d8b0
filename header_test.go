package specfile

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLocateHeader(t *testing.T) {
	t.Run("MarkerAfterIdentifier", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString("SCAN1.WAV\x00")
		buf.Write(bytes.Repeat([]byte{0xAA}, 40))
		markerAt := buf.Len()
		buf.Write(endOfHeaderMarker)
		buf.Write([]byte{1, 2, 3, 4})

		b := locateHeader(buf.Bytes())
		assert.Equal(t, markerAt, b.marker)
		assert.Equal(t, markerAt+8, b.dataStart)
	})

	t.Run("MarkerWithoutIdentifier", func(t *testing.T) {
		content := append(bytes.Repeat([]byte{0x11}, 20), endOfHeaderMarker...)
		b := locateHeader(content)
		assert.Equal(t, 20, b.marker)
		assert.Equal(t, 28, b.dataStart)
	})

	t.Run("NoMarkerNoIdentifier", func(t *testing.T) {
		b := locateHeader([]byte{1, 2, 3, 4, 5, 6, 7})
		assert.Equal(t, -1, b.marker)
		assert.Equal(t, minHeaderSkip, b.dataStart)
	})

	t.Run("IdentifierWithoutNull", func(t *testing.T) {
		// no terminating NUL, so the identifier is ignored
		content := append([]byte("A.WAV"), bytes.Repeat([]byte{0x11}, 10)...)
		b := locateHeader(content)
		assert.Equal(t, -1, b.marker)
		assert.Equal(t, minHeaderSkip, b.dataStart)
	})

	t.Run("IdentifierBeyondMinimumSkip", func(t *testing.T) {
		content := append(bytes.Repeat([]byte{0x11}, 150), []byte("A.WAV\x00")...)
		content = append(content, 0x22, 0x22)
		b := locateHeader(content)
		assert.Equal(t, -1, b.marker)
		assert.Equal(t, 156, b.dataStart)
	})

	t.Run("MarkerBeforeIdentifierIsSkipped", func(t *testing.T) {
		// the marker search starts after the identifier, so an earlier
		// occurrence of the pattern inside the identifier region is ignored
		var buf bytes.Buffer
		buf.Write(endOfHeaderMarker)
		buf.WriteString("A.WAV\x00")
		buf.Write(bytes.Repeat([]byte{0x33}, 16))
		markerAt := buf.Len()
		buf.Write(endOfHeaderMarker)

		b := locateHeader(buf.Bytes())
		assert.Equal(t, markerAt, b.marker)
		assert.Equal(t, markerAt+8, b.dataStart)
	})

	t.Run("Empty", func(t *testing.T) {
		b := locateHeader(nil)
		assert.Equal(t, -1, b.marker)
		assert.Equal(t, minHeaderSkip, b.dataStart)
	})
}
