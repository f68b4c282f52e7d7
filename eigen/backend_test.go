// Package eigen_test: backend contract tests and failure injection through a
// stub Backend, including the scratch-sufficiency warning side-channel.
package eigen_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/spectra/eigen"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
)

// stubBackend overrides individual primitives via function fields; unset
// fields delegate to the gonum-backed default so the numerics stay real.
type stubBackend struct {
	sytrd func(uplo blas.Uplo, n int, a []float64, lda int, d, e, tau, work []float64, lwork int) (int, int)
	stebz func(n int, d, e []float64, abstol float64, w, work []float64, iwork []int) (int, int, int, int)
}

func (s stubBackend) Sytrd(uplo blas.Uplo, n int, a []float64, lda int, d, e, tau, work []float64, lwork int) (int, int) {
	if s.sytrd != nil {
		return s.sytrd(uplo, n, a, lda, d, e, tau, work, lwork)
	}

	return eigen.DefaultBackend().Sytrd(uplo, n, a, lda, d, e, tau, work, lwork)
}

func (s stubBackend) Stebz(n int, d, e []float64, abstol float64, w, work []float64, iwork []int) (int, int, int, int) {
	if s.stebz != nil {
		return s.stebz(n, d, e, abstol, w, work, iwork)
	}

	return eigen.DefaultBackend().Stebz(n, d, e, abstol, w, work, iwork)
}

// TestDefaultBackendStebzContract pins the documented Stebz behavior: d and
// e survive the call, the whole spectrum comes back, status is StatusOK.
func TestDefaultBackendStebzContract(t *testing.T) {
	t.Parallel()

	d := []float64{5, -3, 2}
	e := []float64{0, 0, 123} // last entry unused by contract
	dCopy := append([]float64(nil), d...)
	eCopy := append([]float64(nil), e...)

	w := make([]float64, 3)
	work := make([]float64, 4*3)
	iwork := make([]int, 3*3)

	m, _, _, info := eigen.DefaultBackend().Stebz(3, d, e, 0, w, work, iwork)
	require.Equal(t, eigen.StatusOK, info)
	require.Equal(t, 3, m)
	require.ElementsMatch(t, []float64{5, -3, 2}, w)

	// inputs preserved
	require.Equal(t, dCopy, d)
	require.Equal(t, eCopy, e)
}

func TestBackendFailureInjection(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]float64{
		{2, 0},
		{0, 1},
	})
	const n = 2

	t.Run("TridiagonalizeStatus", func(t *testing.T) {
		dst := canary(n)
		got, err := eigen.SymmetricEigenvalues(m, n, dst, eigen.WithBackend(stubBackend{
			sytrd: func(blas.Uplo, int, []float64, int, []float64, []float64, []float64, []float64, int) (int, int) {
				return 0, 5
			},
		}))
		require.Nil(t, got)
		require.ErrorIs(t, err, eigen.ErrTridiagonalizeFailed)
		require.Contains(t, err.Error(), "status 5")
		require.Equal(t, canary(n), dst)
	})

	t.Run("BisectionPhase", func(t *testing.T) {
		dst := canary(n)
		got, err := eigen.SymmetricEigenvalues(m, n, dst, eigen.WithBackend(stubBackend{
			stebz: func(int, []float64, []float64, float64, []float64, []float64, []int) (int, int, int, int) {
				return 0, 0, 0, eigen.StatusBisectionFailed
			},
		}))
		require.Nil(t, got)
		require.ErrorIs(t, err, eigen.ErrDiagonalizeFailed)
		require.Contains(t, err.Error(), "bisection phase")
		require.Equal(t, canary(n), dst)
	})

	t.Run("OrderingPhase", func(t *testing.T) {
		dst := canary(n)
		got, err := eigen.SymmetricEigenvalues(m, n, dst, eigen.WithBackend(stubBackend{
			stebz: func(int, []float64, []float64, float64, []float64, []float64, []int) (int, int, int, int) {
				return 0, 0, 0, eigen.StatusOrderingFailed
			},
		}))
		require.Nil(t, got)
		require.ErrorIs(t, err, eigen.ErrDiagonalizeFailed)
		require.Contains(t, err.Error(), "ordering phase")
		require.Equal(t, canary(n), dst)
	})

	t.Run("IncompleteSpectrum", func(t *testing.T) {
		dst := canary(n)
		got, err := eigen.SymmetricEigenvalues(m, n, dst, eigen.WithBackend(stubBackend{
			stebz: func(sz int, d, e []float64, abstol float64, w, work []float64, iwork []int) (int, int, int, int) {
				cnt, optW, optIW, info := eigen.DefaultBackend().Stebz(sz, d, e, abstol, w, work, iwork)
				return cnt - 1, optW, optIW, info // drop one eigenvalue from the report
			},
		}))
		require.Nil(t, got)
		require.ErrorIs(t, err, eigen.ErrIncompleteSpectrum)
		require.Contains(t, err.Error(), "got 1 eigenvalues, want 2")
		require.Equal(t, canary(n), dst)
	})
}

// TestScratchWarning: an undersized-scratch report is a diagnostic on the
// logger, never an error — the spectrum still comes out correct.
func TestScratchWarning(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]float64{
		{2, 0},
		{0, 1},
	})
	const n = 2

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	got, err := eigen.SymmetricEigenvalues(m, n, make([]float64, n),
		eigen.WithLogger(logger),
		eigen.WithBackend(stubBackend{
			sytrd: func(uplo blas.Uplo, sz int, a []float64, lda int, d, e, tau, work []float64, lwork int) (int, int) {
				_, info := eigen.DefaultBackend().Sytrd(uplo, sz, a, lda, d, e, tau, work, lwork)
				return lwork * 2, info // claim the backend wanted twice the reservation
			},
		}))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 1}, got, tol)

	out := buf.String()
	require.Contains(t, out, "scratch below backend optimum")
	require.Contains(t, out, "reserved")
	require.Contains(t, out, "optimal")
}

// TestNoWarningOnDefaults: with the default generous reservation the gonum
// backend must stay silent.
func TestNoWarningOnDefaults(t *testing.T) {
	t.Parallel()

	const n = 8
	m := randSymmetric(t, n, 7)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	_, err := eigen.SymmetricEigenvalues(m, n, make([]float64, n), eigen.WithLogger(logger))
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
