// Package bandio reads and writes the flat-file formats surrounding the band
// solver: a dimensions file ("n k"), whitespace-separated band rows, diagonal
// and right-hand-side vectors, and the solution sink (one value per line with
// a fixed decimal digit count).
//
// bandio is a boundary package: it converts files into the in-memory shapes
// that band consumes and back. It performs strict shape validation — a source
// that supplies fewer values than the dimensions promise fails with
// ErrTruncated instead of being silently under-read — and every error carries
// the identifying path. Nothing here touches the solve path itself.
//
// ⚙️ Usage:
//
//	st, f, err := bandio.LoadSystem(bandio.Paths{
//	  Dimensions: "data/input.txt",
//	  Band:       "data/AL.txt",
//	  Diag:       "data/D.txt",
//	  RHS:        "data/F.txt",
//	})
//	// ... factorize and solve ...
//	err = bandio.WriteVector("data/X.txt", x, bandio.DoublePrecisionDigits)
//
// The Fprint* helpers render vectors and expanded matrices in fixed-width
// columns for console inspection; they are debugging aids only.
package bandio
