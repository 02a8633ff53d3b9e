package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/innatural/internal/models"
)

// Load reads the catalog document at path.
func Load(path string) (*models.Catalog, error) {
	_, doc, err := LoadRaw(path)
	return doc, err
}

// LoadRaw reads the catalog document at path and also returns the bytes it
// was decoded from.
func LoadRaw(path string) ([]byte, *models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, &MissingInputError{Path: path, Err: err}
		}
		return nil, nil, &DecodeError{Path: path, Err: err}
	}
	doc, err := Parse(path, data)
	if err != nil {
		return nil, nil, err
	}
	return data, doc, nil
}

// Parse decodes a catalog document read from path.
func Parse(path string, data []byte) (*models.Catalog, error) {
	var doc models.Catalog
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &doc, nil
}

// Encode renders doc with two-space indentation, unescaped non-ASCII and HTML
// characters, and a trailing newline.
func Encode(doc *models.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes doc to path by writing a sibling temp file and renaming it over
// the target, so readers never observe a partially written catalog.
func Save(path string, doc *models.Catalog) error {
	data, err := Encode(doc)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// SamePath reports whether a and b resolve to the same file.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	if absA == absB {
		return true
	}
	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}

// GuardInPlace returns ErrInPlaceOverwrite when input and output are the same
// file and the stage has not declared its transform total.
func GuardInPlace(input, output string, total bool) error {
	if !total && SamePath(input, output) {
		return ErrInPlaceOverwrite
	}
	return nil
}
