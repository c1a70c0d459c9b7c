package leghistory

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Encode writes the leg to w as TOML
func Encode(w io.Writer, leg *Leg) error {
	if leg == nil {
		return fmt.Errorf("leghistory: leg is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(leg)
}

// Decode reads a leg written by Encode
func Decode(r io.Reader) (*Leg, error) {
	var leg Leg
	if _, err := toml.NewDecoder(r).Decode(&leg); err != nil {
		return nil, fmt.Errorf("leghistory: decode: %w", err)
	}
	return &leg, nil
}

// Writer stores legs as files in a directory
type Writer struct {
	dir string
}

// NewWriter creates dir if needed and returns a writer for it
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, fmt.Errorf("leghistory: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("leghistory: create dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Write stores leg as leg-<id>.toml and returns the path. Readers never see
// a partially written file.
func (w *Writer) Write(leg *Leg) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, leg); err != nil {
		return "", err
	}
	path := filepath.Join(w.dir, fmt.Sprintf("leg-%s.toml", leg.ID))
	if err := writeAtomic(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("leghistory: write %s: %w", path, err)
	}
	return path, nil
}

// Read loads a leg file
func Read(path string) (*Leg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("leghistory: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// writeAtomic writes to a temp file in the same directory and renames it
// over filename; a rename across filesystems would not be atomic.
func writeAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	return os.Rename(tmp.Name(), filename)
}
