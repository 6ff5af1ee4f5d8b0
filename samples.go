package specfile

import (
	"encoding/binary"
	"math"
)

// decodeFloat32 reinterprets data as consecutive IEEE-754 float32 values in
// the given byte order. len(data) must be a multiple of 4.
func decodeFloat32(data []byte, order binary.ByteOrder) []float32 {
	values := make([]float32, len(data)/4)
	for i := range values {
		values[i] = math.Float32frombits(order.Uint32(data[i*4:]))
	}
	return values
}

// decodeSamples decodes the data region into sample values according to the
// detected format, preserving file order. It is total: detectFormat only
// yields formats whose group size evenly divides the region length, so no
// trailing bytes can be left over. Float values pass through unmodified,
// NaNs and infinities included.
func decodeSamples(data []byte, f Format) []float64 {
	switch f {
	case FormatFloat32BE, FormatFloat32LE:
		var order binary.ByteOrder = binary.BigEndian
		if f == FormatFloat32LE {
			order = binary.LittleEndian
		}
		raw := decodeFloat32(data, order)
		values := make([]float64, len(raw))
		for i, v := range raw {
			values[i] = float64(v)
		}
		return values
	case FormatInt16:
		values := make([]float64, len(data)/2)
		for i := range values {
			values[i] = float64(binary.LittleEndian.Uint16(data[i*2:]))
		}
		return values
	default:
		values := make([]float64, len(data))
		for i, b := range data {
			values[i] = float64(b)
		}
		return values
	}
}
