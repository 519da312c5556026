package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"lead-sync/internal/domain"
)

// WriteLeads encodes leads as a JSON array indented with two spaces.
// A nil slice is written as [].
func WriteLeads(w io.Writer, leads []domain.Lead) error {
	if leads == nil {
		leads = []domain.Lead{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(leads)
}

// WriteLeadsJSON replaces the snapshot at path. Parent directories are
// created, the file is written next to the target and renamed over it, and
// <path>.lock is held so concurrent runs do not interleave.
func WriteLeadsJSON(path string, leads []domain.Lead) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create dir %s: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("export: lock %s: %w", lock.Path(), err)
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("export: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := WriteLeads(tmp, leads); err != nil {
		return fmt.Errorf("export: encode leads: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("export: sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("export: chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("export: rename into %s: %w", path, err)
	}
	committed = true
	return nil
}
