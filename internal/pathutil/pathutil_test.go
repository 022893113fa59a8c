package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/unicode/norm"
)

func TestResolve_ExactPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "document.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	resolved, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestResolve_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "résumé.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	first, err := Resolve(path)
	require.NoError(t, err)
	second, err := Resolve(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_CrossNormalization(t *testing.T) {
	// Stored name decomposed, lookup composed, and the reverse.
	cases := []struct {
		name   string
		stored string
		lookup string
	}{
		{"nfd stored, nfc lookup", norm.NFD.String("résumé.pdf"), norm.NFC.String("résumé.pdf")},
		{"nfc stored, nfd lookup", norm.NFC.String("résumé.pdf"), norm.NFD.String("résumé.pdf")},
		{"korean nfd stored, nfc lookup", norm.NFD.String("번역.pdf"), norm.NFC.String("번역.pdf")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.stored == tc.lookup {
				t.Skip("normalization forms coincide for this name")
			}
			dir := t.TempDir()
			stored := filepath.Join(dir, tc.stored)
			require.NoError(t, os.WriteFile(stored, []byte("x"), 0o600))

			resolved, err := Resolve(filepath.Join(dir, tc.lookup))
			require.NoError(t, err)
			info, err := os.Stat(resolved)
			require.NoError(t, err)
			assert.False(t, info.IsDir())
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(filepath.Join(dir, "missing.pdf"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_MissingParent(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(filepath.Join(dir, "no-such-dir", "missing.pdf"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_ScanIgnoresOtherEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.pdf"), []byte("x"), 0o600))

	_, err := Resolve(filepath.Join(dir, norm.NFC.String("résumé.pdf")))
	assert.ErrorIs(t, err, ErrNotFound)
}
