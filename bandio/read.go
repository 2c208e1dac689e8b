package bandio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/bandsolve/band"
)

// Paths names the four input files of a banded system, mirroring the original
// solver layout: dimensions ("n k"), band rows (AL), diagonal (D) and
// right-hand side (F).
type Paths struct {
	Dimensions string // file with "n k"
	Band       string // n rows of k values (strictly-lower band slots)
	Diag       string // n diagonal values
	RHS        string // n right-hand-side values
}

// ReadDimensions reads the matrix order n and half-bandwidth k from path.
// Stage 1 (Read): scan two whitespace-separated integers.
// Stage 2 (Validate): n > 0, k >= 0, else ErrBadDimensions.
// Errors carry the identifying path; a missing file fails immediately.
func ReadDimensions(path string) (n, k int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("bandio: %w", err)
	}
	defer file.Close()

	if _, err = fmt.Fscan(bufio.NewReader(file), &n, &k); err != nil {
		return 0, 0, fmt.Errorf("bandio: read %s: %w", path, scanErr(err))
	}
	if n <= 0 || k < 0 {
		return 0, 0, fmt.Errorf("bandio: read %s: n=%d k=%d: %w", path, n, k, ErrBadDimensions)
	}

	return n, k, nil
}

// ReadBand reads n rows of k whitespace-separated values from path.
// A source holding fewer than n·k values fails with ErrTruncated.
// Complexity: O(n·k).
func ReadBand(path string, n, k int) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bandio: %w", err)
	}
	defer file.Close()

	r := bufio.NewReader(file)
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, k)
		for j = 0; j < k; j++ {
			if _, err = fmt.Fscan(r, &rows[i][j]); err != nil {
				return nil, fmt.Errorf("bandio: read %s: row %d slot %d: %w", path, i, j, scanErr(err))
			}
		}
	}

	return rows, nil
}

// ReadVector reads n whitespace-separated values from path.
// A source holding fewer than n values fails with ErrTruncated.
// Complexity: O(n).
func ReadVector(path string, n int) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bandio: %w", err)
	}
	defer file.Close()

	r := bufio.NewReader(file)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if _, err = fmt.Fscan(r, &out[i]); err != nil {
			return nil, fmt.Errorf("bandio: read %s: value %d: %w", path, i, scanErr(err))
		}
	}

	return out, nil
}

// LoadSystem reads all four sources of p and assembles the band Storage plus
// the right-hand-side vector. Any unreadable or short source aborts the whole
// load — there is no partial system.
// Complexity: O(n·k).
func LoadSystem(p Paths) (*band.Storage, []float64, error) {
	n, k, err := ReadDimensions(p.Dimensions)
	if err != nil {
		return nil, nil, err
	}

	rows, err := ReadBand(p.Band, n, k)
	if err != nil {
		return nil, nil, err
	}
	diag, err := ReadVector(p.Diag, n)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := ReadVector(p.RHS, n)
	if err != nil {
		return nil, nil, err
	}

	st, err := band.FromRows(rows, diag)
	if err != nil {
		return nil, nil, fmt.Errorf("bandio: assemble %s: %w", p.Band, err)
	}

	return st, rhs, nil
}

// scanErr maps the scanner's end-of-input errors to ErrTruncated so callers
// can match the short-input condition without knowing fmt internals.
func scanErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}

	return err
}
