// Package testutil provides shared test helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Golden compares got with testdata/<name>.golden.
// Setting GOLDEN_UPDATE rewrites the file instead.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		require.NoError(t, os.MkdirAll("testdata", 0o755), "create testdata dir")
		require.NoError(t, os.WriteFile(goldenPath, got, 0o644), "update golden file")
		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoErrorf(t, err, "read golden file %s\nGot:\n%s", goldenPath, got)
	require.Equalf(t, string(want), string(got), "output mismatch for %s", name)
}

// GoldenString is Golden for strings.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}
