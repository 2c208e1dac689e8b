package bandio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Decimal digit counts for the solution sink, matching the storage precision
// of the producing build: 7 for single precision, 15 for double.
const (
	SinglePrecisionDigits = 7
	DoublePrecisionDigits = 15

	// DefaultDigits is used when WriteVector receives digits <= 0. The module
	// computes in float64, so the double-precision count is the default.
	DefaultDigits = DoublePrecisionDigits

	// printWidth is the fixed column width of the Fprint* debug renderers.
	printWidth = 10
)

// WriteVector writes x to path, one value per line in index order, with a
// fixed count of decimal digits (digits <= 0 selects DefaultDigits). Any
// failure is surfaced with the identifying path; callers treat it as fatal.
// Complexity: O(n).
func WriteVector(path string, x []float64, digits int) error {
	if digits <= 0 {
		digits = DefaultDigits
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bandio: %w", err)
	}

	w := bufio.NewWriter(file)
	for _, v := range x {
		if _, err = w.WriteString(strconv.FormatFloat(v, 'f', digits, 64)); err != nil {
			file.Close()
			return fmt.Errorf("bandio: write %s: %w", path, err)
		}
		if err = w.WriteByte('\n'); err != nil {
			file.Close()
			return fmt.Errorf("bandio: write %s: %w", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("bandio: write %s: %w", path, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("bandio: close %s: %w", path, err)
	}

	return nil
}

// FprintVector renders x as a single fixed-width column. Debugging aid.
func FprintVector(w io.Writer, x []float64) {
	for _, v := range x {
		fmt.Fprintf(w, "%*.4f\n", printWidth, v)
	}
}

// FprintDense renders an expanded matrix in fixed-width columns, one row per
// line. Debugging aid; pair with (*band.Storage).Dense.
func FprintDense(w io.Writer, m [][]float64) {
	for _, row := range m {
		for _, v := range row {
			fmt.Fprintf(w, "%*.4f ", printWidth, v)
		}
		fmt.Fprintln(w)
	}
}
