package specfile

import (
	"io"
)

// Row is a single output point: a wavelength and the value measured at it.
type Row struct {
	Wavelength float64
	Value      float64
}

// Spectrum represents the decoded contents of one spectrophotometer export
type Spectrum struct {
	// Format is the detected encoding of the data region
	Format Format
	// Rows is the decoded points, in file order
	Rows []Row
}

// DecodeOptions represents the decoding options passed to Decode
type DecodeOptions struct {
	// Scorer rates candidate float32 interpretations when choosing between
	// endiannesses
	//
	// the default is PlausibleCount
	Scorer ScoreFunc
}

// Decode decodes a complete spectrophotometer export from its raw bytes.
//
// The decode is best-effort and total: every input maps to some format and
// produces a result, however implausible the bytes. Decode never inspects
// anything outside content and keeps no state between calls.
//
// if the DecodeOptions supplied is nil, default options are used
func Decode(content []byte, options *DecodeOptions) *Spectrum {
	if options == nil {
		options = &DecodeOptions{}
	}
	b := locateHeader(content)
	var data []byte
	if b.dataStart < len(content) {
		data = content[b.dataStart:]
	}
	format := detectFormat(data, options.Scorer)
	values := decodeSamples(data, format)
	axis := wavelengths(format, content, b.marker, len(values))
	rows := make([]Row, len(values))
	for i, v := range values {
		rows[i] = Row{Wavelength: axis[i], Value: v}
	}
	return &Spectrum{Format: format, Rows: rows}
}

// DecodeReader reads the whole of r and decodes it as one export
//
// the only possible error is a read failure
func DecodeReader(r io.Reader, options *DecodeOptions) (*Spectrum, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(content, options), nil
}
