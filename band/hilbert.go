package band

import "fmt"

// Hilbert returns the order-n Hilbert matrix H[i,j] = 1/(i+j+1) truncated to
// half-bandwidth k. The Hilbert matrix is the classic ill-conditioned test
// case: with k = n−1 the full matrix is symmetric positive definite but its
// condition number grows like e^{3.5n}, which makes it a convenient stress
// input for the factorization's numerical-stability behavior.
//
// Errors: ErrInvalidDimensions (n <= 0 or k < 0).
// Complexity: O(n·k) time and memory.
func Hilbert(n, k int) (*Storage, error) {
	st, err := New(n, k)
	if err != nil {
		return nil, fmt.Errorf("Hilbert: %w", err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		st.diag[i] = 1.0 / float64(2*i+1)
		for j = max(0, i-k); j < i; j++ {
			st.band[st.slot(i, j)] = 1.0 / float64(i+j+1)
		}
	}

	return st, nil
}
