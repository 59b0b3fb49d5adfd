package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const defaultDir = "snapshots"

// JSONStore keeps snapshots as indented JSON files in one directory.
type JSONStore struct {
	dir string
	now func() time.Time
}

type Option func(*JSONStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(dir string, opts ...Option) *JSONStore {
	if strings.TrimSpace(dir) == "" {
		dir = defaultDir
	}
	s := &JSONStore{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the snapshot directory.
func (s *JSONStore) Dir() string {
	return s.dir
}

// Save writes snap under a timestamped name and returns its path.
func (s *JSONStore) Save(snap Snapshot) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &OpError{Op: "store.mkdir", Kind: KindIO, Path: s.dir, Err: err}
	}

	ts := snap.SavedAt
	if ts.IsZero() {
		ts = s.now()
	}
	snap.SavedAt = ts.UTC()

	name := fmt.Sprintf("%s_%dx%d.json", snap.SavedAt.Format("20060102T150405Z"), snap.Width, snap.Height)
	path := filepath.Join(s.dir, name)
	if err := WriteFile(path, snap); err != nil {
		return "", err
	}
	return path, nil
}

// List returns the snapshot paths in the directory, oldest first.
func (s *JSONStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &OpError{Op: "store.list", Kind: KindIO, Path: s.dir, Err: err}
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		out = append(out, filepath.Join(s.dir, e.Name()))
	}
	slices.Sort(out)
	return out, nil
}

// Latest returns the most recent snapshot path, or "" when there is none.
func (s *JSONStore) Latest() (string, error) {
	paths, err := s.List()
	if err != nil || len(paths) == 0 {
		return "", err
	}
	return paths[len(paths)-1], nil
}

// WriteFile writes snap as JSON to path via a temp file then rename.
func WriteFile(path string, snap Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &OpError{Op: "store.marshal", Kind: KindInvalid, Path: path, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &OpError{Op: "store.write", Kind: KindIO, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &OpError{Op: "store.rename", Kind: KindIO, Path: path, Err: err}
	}
	return nil
}

// ReadFile loads a snapshot from path.
func ReadFile(path string) (Snapshot, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, &OpError{Op: "store.read", Kind: KindNotFound, Path: path, Err: err}
	}
	if err != nil {
		return Snapshot{}, &OpError{Op: "store.read", Kind: KindIO, Path: path, Err: err}
	}

	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, &OpError{Op: "store.unmarshal", Kind: KindInvalid, Path: path, Err: err}
	}
	return snap, nil
}
