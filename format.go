package specfile

import (
	"encoding/binary"
	"math"
)

// Format identifies the numeric encoding of the data region.
type Format uint8

const (
	// FormatBytes treats every byte as its own unsigned sample
	FormatBytes Format = iota
	// FormatInt16 is consecutive unsigned 16-bit little-endian integers
	FormatInt16
	// FormatFloat32LE is consecutive IEEE-754 float32, little-endian
	FormatFloat32LE
	// FormatFloat32BE is consecutive IEEE-754 float32, big-endian
	FormatFloat32BE
)

func (f Format) String() string {
	switch f {
	case FormatFloat32BE:
		return "float32_be"
	case FormatFloat32LE:
		return "float32_le"
	case FormatInt16:
		return "int16"
	default:
		return "bytes"
	}
}

// ScoreFunc rates the plausibility of one candidate float32 interpretation
// of the data region; the interpretation with the higher score is selected.
type ScoreFunc func(values []float32) int

// PlausibleCount is the default ScoreFunc. It counts values that are not
// NaN, not an infinity, and lie strictly within (-1000, 1000) - absorbance
// and transmittance readings sit well inside that window, while the wrong
// endianness tends to produce NaNs, infinities and huge magnitudes.
func PlausibleCount(values []float32) int {
	count := 0
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if -1000 < f && f < 1000 {
			count++
		}
	}
	return count
}

// detectFormat determines the encoding of the data region by length
// precedence. A region divisible by 4 is float32, with the endianness
// chosen by scoring both interpretations (ties select big-endian); a
// region divisible only by 2 is int16; anything else, including an empty
// region, is raw bytes. Every length maps to exactly one format.
func detectFormat(data []byte, scorer ScoreFunc) Format {
	if scorer == nil {
		scorer = PlausibleCount
	}
	n := len(data)
	switch {
	case n > 0 && n%4 == 0:
		scoreBE := scorer(decodeFloat32(data, binary.BigEndian))
		scoreLE := scorer(decodeFloat32(data, binary.LittleEndian))
		if scoreBE >= scoreLE {
			return FormatFloat32BE
		}
		return FormatFloat32LE
	case n > 0 && n%2 == 0:
		return FormatInt16
	default:
		return FormatBytes
	}
}
