package specfile

import (
	"encoding/binary"
	"math"
)

// axisMetaSize is the number of bytes immediately preceding the
// end-of-header marker that hold the start and end wavelengths as two
// big-endian float32 values.
const axisMetaSize = 8

// axisRange reads the start and end wavelengths stored before the marker.
// ok is false when the read would fall outside the buffer; the values are
// otherwise taken as stored, whether or not they are finite.
func axisRange(content []byte, marker int) (start, end float64, ok bool) {
	if marker < axisMetaSize || marker > len(content) {
		return 0, 0, false
	}
	meta := content[marker-axisMetaSize : marker]
	start = float64(math.Float32frombits(binary.BigEndian.Uint32(meta[0:4])))
	end = float64(math.Float32frombits(binary.BigEndian.Uint32(meta[4:8])))
	return start, end, true
}

// wavelengths builds the wavelength axis for n decoded samples.
//
// Only float32 data carries axis metadata; every other format uses the
// sample index. For float32 data without a marker, or when the metadata
// read is out of bounds, the axis defaults to 0..n-1 as well, but is still
// computed through the start/step interpolation so that rounding behaviour
// is identical either way.
func wavelengths(f Format, content []byte, marker int, n int) []float64 {
	axis := make([]float64, n)
	if f != FormatFloat32BE && f != FormatFloat32LE {
		for i := range axis {
			axis[i] = float64(i)
		}
		return axis
	}
	start, end := 0.0, float64(n-1)
	if marker >= 0 {
		if s, e, ok := axisRange(content, marker); ok {
			start, end = s, e
		}
	}
	step := 0.0
	if n > 1 {
		step = (end - start) / float64(n-1)
	}
	for i := range axis {
		axis[i] = start + float64(i)*step
	}
	return axis
}
