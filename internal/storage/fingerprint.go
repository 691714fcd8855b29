package storage

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/euncover/euncover/internal/dataset"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint hashes the dataset files so a stale index can be detected.
// A missing file contributes its name only, so creating it changes the hash.
func Fingerprint(paths dataset.Paths) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("creating hash: %w", err)
	}

	for _, path := range []string{paths.Biographies, paths.Declarations, paths.Networks, paths.Articles} {
		io.WriteString(h, filepath.Base(path))
		h.Write([]byte{0})

		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("opening %s: %w", path, err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("hashing %s: %w", path, err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// IsStale reports whether the fixtures changed since the last rebuild.
func (d *DB) IsStale(ctx context.Context, paths dataset.Paths) (bool, error) {
	stored, err := d.Fingerprint(ctx)
	if err != nil {
		return false, err
	}
	current, err := Fingerprint(paths)
	if err != nil {
		return false, err
	}
	return stored != current, nil
}
