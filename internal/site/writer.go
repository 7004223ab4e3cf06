package site

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Writer puts generated files under a site root. Files whose content is
// already on disk are left untouched so their modification times survive.
type Writer struct {
	fs   afero.Fs
	root string
	log  *zap.SugaredLogger

	written   int
	unchanged int
}

func NewWriter(fsys afero.Fs, root string, log *zap.SugaredLogger) *Writer {
	return &Writer{fs: fsys, root: root, log: log}
}

// WriteFile writes data to root/rel, creating parent directories.
func (w *Writer) WriteFile(rel string, data []byte) error {
	full := filepath.Join(w.root, rel)
	if same, err := w.sameContent(full, data); err != nil {
		return err
	} else if same {
		w.unchanged++
		w.log.Debugw("unchanged", "path", full)
		return nil
	}
	if err := w.fs.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return err
	}
	if err := afero.WriteFile(w.fs, full, data, filePerm); err != nil {
		return err
	}
	w.written++
	w.log.Debugw("wrote", "path", full, "bytes", len(data))
	return nil
}

// ReadFile reads root/rel.
func (w *Writer) ReadFile(rel string) ([]byte, error) {
	return afero.ReadFile(w.fs, filepath.Join(w.root, rel))
}

// Stats reports how many files were written and how many were already current.
func (w *Writer) Stats() (written, unchanged int) {
	return w.written, w.unchanged
}

func (w *Writer) sameContent(path string, data []byte) (bool, error) {
	old, err := afero.ReadFile(w.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(old) != len(data) {
		return false, nil
	}
	a, b := blake3.Sum256(old), blake3.Sum256(data)
	return bytes.Equal(a[:], b[:]), nil
}
