package test

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/stretchr/testify/require"
)

// Needs a scratch PostgreSQL database, e.g.
// CALC_TEST_DSN="user=postgres password=password sslmode=disable".
func TestAll(t *testing.T) {
	connStr := os.Getenv("CALC_TEST_DSN")
	if connStr == "" {
		t.Skip("CALC_TEST_DSN not set")
	}

	ctx := context.Background()
	store, err := lib.OpenStore(ctx, connStr)
	require.NoError(t, err)
	defer store.Close()

	cases, err := lib.LoadCases("./basic/cases.yaml")
	require.NoError(t, err)
	results := lib.RunCases(cases)

	err = store.RecordAll(ctx, results)
	require.NoError(t, err)

	err = store.Record(ctx, lib.RunCase(lib.Case{Name: "last", Expression: "(2 + 3) * 4"}))
	require.NoError(t, err)

	recent, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	require.Equal(t, "last", recent[0].Case.Name)
	require.Equal(t, 20.0, recent[0].Value)
	require.True(t, recent[0].Passed)

	require.Equal(t, "no_expectation", recent[1].Case.Name)
	require.Equal(t, 2.0, recent[1].Value)

	require.Equal(t, "unsupported", recent[2].Case.Name)
	require.True(t, math.IsNaN(recent[2].Value))
	require.Contains(t, recent[2].Err, "unsupported token")
}
