// Command bandsolve solves a symmetric banded linear system A·x = f read
// from flat files and writes the solution vector, one value per line.
//
// Usage:
//
//	bandsolve [flags]
//
// The five file paths default to the conventional data/ layout:
//
//	bandsolve -input data/input.txt -band data/AL.txt -diag data/D.txt \
//	          -rhs data/F.txt -out data/X.txt
//
// Examples:
//
//	bandsolve -verify
//	bandsolve -digits 7 -workers 4
//	bandsolve -print
//
// Any unreadable input, short source, or singular matrix aborts the run with
// exit status 1 and no solution file is written.
package main

import (
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bandsolve/band"
	"github.com/katalvlaran/bandsolve/bandio"
)

func main() {
	var (
		inputPath = flag.String("input", "data/input.txt", "path to the dimensions file (\"n k\")")
		bandPath  = flag.String("band", "data/AL.txt", "path to the band rows file (n rows of k values)")
		diagPath  = flag.String("diag", "data/D.txt", "path to the diagonal file (n values)")
		rhsPath   = flag.String("rhs", "data/F.txt", "path to the right-hand-side file (n values)")
		outPath   = flag.String("out", "data/X.txt", "path for the solution file (one value per line)")
		digits    = flag.Int("digits", bandio.DoublePrecisionDigits, "decimal digits written per solution value")
		eps       = flag.Float64("eps", band.DefaultPivotEpsilon, "pivot magnitude below which the matrix is singular")
		workers   = flag.Int("workers", band.DefaultWorkers, "goroutines for the data-parallel loops (0 = NumCPU)")
		verify    = flag.Bool("verify", false, "recompute A·x and log the max-norm residual")
		printAll  = flag.Bool("print", false, "print the expanded matrix and vectors to stdout")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	st, rhs, err := bandio.LoadSystem(bandio.Paths{
		Dimensions: *inputPath,
		Band:       *bandPath,
		Diag:       *diagPath,
		RHS:        *rhsPath,
	})
	if err != nil {
		logger.Fatal("failed loading system", zap.Error(err))
	}
	logger.Info("loaded system",
		zap.Int("n", st.N()),
		zap.Int("bandwidth", st.Bandwidth()),
	)

	start := time.Now()
	fac, err := band.Factorize(st, band.WithPivotEpsilon(*eps), band.WithWorkers(*workers))
	if err != nil {
		logger.Fatal("factorization failed", zap.Error(err))
	}
	logger.Info("factorized", zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	x, err := fac.Solve(rhs)
	if err != nil {
		logger.Fatal("solve failed", zap.Error(err))
	}
	logger.Info("solved", zap.Duration("elapsed", time.Since(start)))

	if *verify {
		ax, err := st.MulVec(x)
		if err != nil {
			logger.Fatal("residual check failed", zap.Error(err))
		}
		residual := 0.0
		for i := range ax {
			if d := abs(ax[i] - rhs[i]); d > residual {
				residual = d
			}
		}
		logger.Info("verified solution", zap.Float64("maxResidual", residual))
	}

	if *printAll {
		bandio.FprintDense(os.Stdout, st.Dense())
		bandio.FprintVector(os.Stdout, rhs)
		bandio.FprintVector(os.Stdout, x)
	}

	if err = bandio.WriteVector(*outPath, x, *digits); err != nil {
		logger.Fatal("failed writing solution", zap.Error(err))
	}
	logger.Info("wrote solution", zap.String("path", *outPath), zap.Int("digits", *digits))
}

// abs returns the absolute value of a float64.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
