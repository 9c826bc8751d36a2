package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tourbench/matrix"
	"github.com/stretchr/testify/require"
)

// fill builds a Dense from a literal table; the table must be rectangular.
func fill(t *testing.T, a [][]float64) *matrix.Dense {
	t.Helper()
	cols := 0
	if len(a) > 0 {
		cols = len(a[0])
	}
	m, err := matrix.NewDense(len(a), cols)
	require.NoError(t, err)
	for i := range a {
		for j := range a[i] {
			require.NoError(t, m.Set(i, j, a[i][j]))
		}
	}

	return m
}

func TestValidateDistances(t *testing.T) {
	cases := []struct {
		name string
		in   [][]float64
		want error
	}{
		{"valid", [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}, nil},
		{"non-square", [][]float64{{0, 1, 2}, {1, 0, 3}}, matrix.ErrNonSquare},
		{"diagonal", [][]float64{{0, 1}, {1, 0.5}}, matrix.ErrNonZeroDiagonal},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, matrix.ErrNegativeValue},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, matrix.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateDistances(fill(t, tc.in), 1e-12)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSymmetricTolerance(t *testing.T) {
	m := fill(t, [][]float64{{0, 1}, {1 + 1e-13, 0}})
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-12))
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 0), matrix.ErrAsymmetry)
}
