package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Install(dir))

	dest := filepath.Join(dir, CatalogFile)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, Catalog(), b)

	require.NoError(t, os.WriteFile(dest, []byte("exercises: []\n"), 0o600))
	require.NoError(t, Install(dir))

	b, err = os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "exercises: []\n", string(b), "existing files are kept")
}
