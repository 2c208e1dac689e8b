// Package band_test contains unit tests for the compact symmetric band storage.
package band_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bandsolve/band"
)

// mustStorage builds a Storage from rows and diag, failing the test on error.
func mustStorage(t *testing.T, rows [][]float64, diag []float64) *band.Storage {
	t.Helper()
	st, err := band.FromRows(rows, diag)
	require.NoError(t, err, "FromRows must accept a well-shaped system")

	return st
}

// randSPDBand returns a random diagonally dominant (hence positive definite)
// band system of order n and half-bandwidth k, plus a right-hand side.
// Diagonal dominance: each diagonal entry exceeds the absolute sum of its row.
func randSPDBand(t *testing.T, rnd *rand.Rand, n, k int) (*band.Storage, []float64) {
	t.Helper()

	rows := make([][]float64, n)
	diag := make([]float64, n)
	rowSum := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, k)
		for j = max(0, i-k); j < i; j++ {
			v := 2*rnd.Float64() - 1
			rows[i][k-i+j] = v
			// Entry (i,j) sits in row i and, mirrored, in row j.
			rowSum[i] += math.Abs(v)
			rowSum[j] += math.Abs(v)
		}
	}
	for i = 0; i < n; i++ {
		diag[i] = rowSum[i] + 1 + rnd.Float64()
	}
	rhs := make([]float64, n)
	for i = 0; i < n; i++ {
		rhs[i] = 2*rnd.Float64() - 1
	}

	return mustStorage(t, rows, diag), rhs
}

func TestNewValidation(t *testing.T) {
	for _, tc := range []struct {
		name string
		n, k int
		ok   bool
	}{
		{"zero order", 0, 1, false},
		{"negative order", -3, 1, false},
		{"negative bandwidth", 3, -1, false},
		{"diagonal only", 1, 0, true},
		{"regular", 5, 2, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			st, err := band.New(tc.n, tc.k)
			if !tc.ok {
				require.ErrorIs(t, err, band.ErrInvalidDimensions)
				require.Nil(t, st)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.n, st.N())
			require.Equal(t, tc.k, st.Bandwidth())
		})
	}
}

func TestNewZeroInitialized(t *testing.T) {
	st, err := band.New(4, 2)
	require.NoError(t, err)

	var i, j int
	var v float64
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			v, err = st.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v, "fresh storage must read as the zero matrix")
		}
	}
}

func TestAtSetContract(t *testing.T) {
	st, err := band.New(4, 1)
	require.NoError(t, err)

	// Diagonal write/read.
	require.NoError(t, st.Set(2, 2, 6))
	v, err := st.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	// Lower write, mirrored upper read: same stored slot.
	require.NoError(t, st.Set(2, 1, -3))
	v, err = st.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, -3.0, v, "upper read must mirror the lower slot")

	// Upper write lands in the lower slot too.
	require.NoError(t, st.Set(0, 1, 7))
	v, err = st.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	// In-range but out-of-band: logical zero on read, rejected on write.
	v, err = st.At(3, 0)
	require.NoError(t, err)
	require.Zero(t, v)
	require.ErrorIs(t, st.Set(3, 0, 1), band.ErrOutOfBand)

	// Out-of-range indices.
	_, err = st.At(-1, 0)
	require.ErrorIs(t, err, band.ErrOutOfRange)
	_, err = st.At(0, 4)
	require.ErrorIs(t, err, band.ErrOutOfRange)
	require.ErrorIs(t, st.Set(4, 0, 1), band.ErrOutOfRange)

	// Non-finite values are rejected at ingestion.
	require.ErrorIs(t, st.Set(1, 1, math.NaN()), band.ErrNaNInf)
	require.ErrorIs(t, st.Set(1, 0, math.Inf(1)), band.ErrNaNInf)
}

func TestFromRowsValidation(t *testing.T) {
	good := [][]float64{{0}, {2}, {1}}
	diag := []float64{4, 5, 6}

	t.Run("nil inputs", func(t *testing.T) {
		_, err := band.FromRows(nil, diag)
		require.ErrorIs(t, err, band.ErrNilVector)
		_, err = band.FromRows(good, nil)
		require.ErrorIs(t, err, band.ErrNilVector)
	})

	t.Run("row count mismatch", func(t *testing.T) {
		_, err := band.FromRows(good[:2], diag)
		require.ErrorIs(t, err, band.ErrDimensionMismatch)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := band.FromRows([][]float64{{0}, {2, 9}, {1}}, diag)
		require.ErrorIs(t, err, band.ErrDimensionMismatch)
	})

	t.Run("non-finite payload", func(t *testing.T) {
		_, err := band.FromRows([][]float64{{0}, {math.NaN()}, {1}}, diag)
		require.ErrorIs(t, err, band.ErrNaNInf)
		_, err = band.FromRows(good, []float64{4, math.Inf(-1), 6})
		require.ErrorIs(t, err, band.ErrNaNInf)
	})

	t.Run("well-shaped", func(t *testing.T) {
		st := mustStorage(t, good, diag)
		v, err := st.At(1, 0)
		require.NoError(t, err)
		require.Equal(t, 2.0, v)
		v, err = st.At(2, 1)
		require.NoError(t, err)
		require.Equal(t, 1.0, v)
	})
}

func TestCloneIsDeep(t *testing.T) {
	st := mustStorage(t, [][]float64{{0}, {2}, {1}}, []float64{4, 5, 6})
	cp := st.Clone()

	require.NoError(t, cp.Set(1, 0, 42))
	require.NoError(t, cp.Set(0, 0, 42))

	v, err := st.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v, "mutating the clone must not touch the original")
	v, err = st.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestDenseSymmetry checks that the expansion is symmetric by construction
// for arbitrary storage content, across several shapes.
func TestDenseSymmetry(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, tc := range []struct{ n, k int }{
		{1, 0},
		{5, 0},
		{5, 1},
		{8, 3},
		{12, 11},
	} {
		st, _ := randSPDBand(t, rnd, tc.n, tc.k)
		dense := st.Dense()
		require.Len(t, dense, tc.n)
		var i, j int
		for i = 0; i < tc.n; i++ {
			for j = 0; j < tc.n; j++ {
				require.Equal(t, dense[j][i], dense[i][j],
					"Dense() must be symmetric (n=%d k=%d at %d,%d)", tc.n, tc.k, i, j)
			}
		}
	}
}

func TestDenseMatchesAt(t *testing.T) {
	st := mustStorage(t, [][]float64{{0}, {2}, {1}}, []float64{4, 5, 6})
	dense := st.Dense()

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			v, err := st.At(i, j)
			require.NoError(t, err)
			require.Equal(t, v, dense[i][j])
		}
	}
}

// TestMulVecAgainstDense verifies the expand-free product against an explicit
// dense multiplication.
func TestMulVecAgainstDense(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	st, _ := randSPDBand(t, rnd, 9, 3)

	x := make([]float64, 9)
	for i := range x {
		x[i] = 2*rnd.Float64() - 1
	}

	got, err := st.MulVec(x)
	require.NoError(t, err)

	dense := st.Dense()
	var i, j int
	var want float64
	for i = 0; i < 9; i++ {
		want = 0
		for j = 0; j < 9; j++ {
			want += dense[i][j] * x[j]
		}
		require.InDelta(t, want, got[i], 1e-12)
	}
}

func TestMulVecValidation(t *testing.T) {
	st := mustStorage(t, [][]float64{{0}, {2}, {1}}, []float64{4, 5, 6})

	_, err := st.MulVec(nil)
	require.ErrorIs(t, err, band.ErrNilVector)
	_, err = st.MulVec([]float64{1, 2})
	require.ErrorIs(t, err, band.ErrDimensionMismatch)
}
