package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/kiln/internal/errors"
)

// DirSink writes objects as files under a directory.
type DirSink struct {
	dir string
}

// NewDirSink creates the directory if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("K160").WithDetail(dir).Wrap(err)
	}
	return &DirSink{dir: dir}, nil
}

// Dir returns the output directory.
func (s *DirSink) Dir() string { return s.dir }

// Put writes body to dir/key. The file is written to a temporary name
// first and renamed, so readers never see a partial page.
func (s *DirSink) Put(ctx context.Context, key string, body []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean, ok := cleanKey(key)
	if !ok {
		return errors.New("K160").WithDetailf("invalid key %q", key)
	}
	target := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.New("K160").WithDetail(target).Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".kiln-*")
	if err != nil {
		return errors.New("K160").WithDetail(target).Wrap(err)
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.New("K160").WithDetail(target).Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.New("K160").WithDetail(target).Wrap(err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return errors.New("K160").WithDetail(target).Wrap(err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return errors.New("K160").WithDetail(target).Wrap(err)
	}
	return nil
}
