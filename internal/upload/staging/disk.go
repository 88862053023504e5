package staging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/GameItem-Admin/GameItem-Admin/internal/uniuri"
)

// ErrInvalidKey is returned for keys not issued by uniuri.NewKey.
var ErrInvalidKey = errors.New("invalid staging key")

// Disk stages blobs as files in a single directory.
// Expiration is ignored: blobs live until deleted or Reset.
type Disk struct {
	dir string
}

// NewDisk creates dir if needed and returns a store writing into it.
func NewDisk(dir string) (*Disk, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "gameitem-admin")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil { //nolint:mnd
		return nil, fmt.Errorf("create staging directory: %w", err)
	}

	return &Disk{dir: dir}, nil
}

// Dir returns the staging directory.
func (d *Disk) Dir() string {
	return d.dir
}

func (d *Disk) path(key string) (string, error) {
	if !uniuri.IsKey(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return filepath.Join(d.dir, key), nil
}

// Get returns the blob stored under key, or nil if there is none.
func (d *Disk) Get(key string) ([]byte, error) {
	p, err := d.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return data, err
}

// Set writes val under key, replacing any previous blob.
func (d *Disk) Set(key string, val []byte, _ time.Duration) error {
	if len(key) == 0 || len(val) == 0 {
		return nil
	}

	p, err := d.path(key)
	if err != nil {
		return err
	}

	return os.WriteFile(p, val, 0o600) //nolint:mnd
}

// Delete removes the blob stored under key. Missing blobs are not an error.
func (d *Disk) Delete(key string) error {
	p, err := d.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// Reset removes every staged upload blob from the directory.
func (d *Disk) Reset() error {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return err
	}

	var errs []error

	for _, e := range entries {
		if e.IsDir() || !uniuri.IsKey(e.Name()) {
			continue
		}

		if err = os.Remove(filepath.Join(d.dir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Close is a no-op for the disk store.
func (d *Disk) Close() error {
	return nil
}
