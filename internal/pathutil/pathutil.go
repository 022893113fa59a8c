// Package pathutil resolves caller-supplied paths whose Unicode normalization
// form may differ from what the filesystem stores. macOS volumes typically
// keep filenames in NFD while agents pass NFC; an exact-match lookup would
// silently miss legitimate files with accented or CJK names.
package pathutil

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned when no normalization form of the path exists.
var ErrNotFound = errors.New("file not found")

// Resolve returns an existing path for raw, trying the path as given, its NFC
// and NFD forms, and finally a directory scan comparing candidate names in
// both forms. Only read-only existence checks and one directory listing are
// performed.
func Resolve(raw string) (string, error) {
	if exists(raw) {
		return raw, nil
	}

	nfc := norm.NFC.String(raw)
	if exists(nfc) {
		return nfc, nil
	}

	nfd := norm.NFD.String(raw)
	if exists(nfd) {
		return nfd, nil
	}

	parent := filepath.Dir(raw)
	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", ErrNotFound
	}

	targetNFC := norm.NFC.String(filepath.Base(raw))
	targetNFD := norm.NFD.String(filepath.Base(raw))
	for _, entry := range entries {
		nameNFC := norm.NFC.String(entry.Name())
		nameNFD := norm.NFD.String(entry.Name())
		if nameNFC == targetNFC || nameNFD == targetNFD {
			return filepath.Join(parent, entry.Name()), nil
		}
		if nameNFC == targetNFD || nameNFD == targetNFC {
			return filepath.Join(parent, entry.Name()), nil
		}
	}

	return "", ErrNotFound
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
