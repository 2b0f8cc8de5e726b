package lib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoredValue(t *testing.T) {
	v := storedValue(CaseResult{Value: 2.5})
	require.True(t, v.Valid)
	require.Equal(t, 2.5, v.Float64)

	require.False(t, storedValue(CaseResult{Value: math.Inf(1)}).Valid)
	require.False(t, storedValue(CaseResult{Value: math.NaN()}).Valid)
	require.False(t, storedValue(CaseResult{Err: "invalid expression"}).Valid)
}

func TestStoredError(t *testing.T) {
	require.False(t, storedError(CaseResult{Value: 1}).Valid)

	e := storedError(CaseResult{Err: "empty expression"})
	require.True(t, e.Valid)
	require.Equal(t, "empty expression", e.String)
}
