package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// FileHash returns the hex-encoded SHA-256 digest of the file contents.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
