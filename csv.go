package specfile

import (
	"fmt"
	"io"
)

// WriteCSV renders a decoded spectrum as two-column CSV: a
// "Wavelength,Absorbance" header line followed by one line per row, the
// wavelength with 3 decimal places and the value with 6.
func WriteCSV(w io.Writer, s *Spectrum) error {
	if _, err := io.WriteString(w, "Wavelength,Absorbance\n"); err != nil {
		return err
	}
	for _, row := range s.Rows {
		if _, err := fmt.Fprintf(w, "%.3f,%.6f\n", row.Wavelength, row.Value); err != nil {
			return err
		}
	}
	return nil
}
