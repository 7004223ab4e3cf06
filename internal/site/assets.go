package site

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/mithrel/fairgen/internal/config"
)

// AssetSource supplies per-vendor images and long descriptions. Generators
// never join vendor paths themselves.
type AssetSource interface {
	// ListImages returns image file names for slug in display order.
	ListImages(slug string) ([]string, error)
	// ReadDescription returns the vendor's long description, if one exists.
	ReadDescription(slug string) (string, bool, error)
	// ImageURL returns the site-absolute URL of one listed image.
	ImageURL(slug, name string) string
}

// DirAssets reads vendor assets from <dir>/<slug>/ on an afero filesystem.
type DirAssets struct {
	fs       afero.Fs
	dir      string
	urlBase  string
	exts     map[string]struct{}
	descFile string
}

// NewDirAssets serves assets from <root>/<s.VendorDir>/<slug>/.
func NewDirAssets(fsys afero.Fs, root string, s config.Site) *DirAssets {
	exts := make(map[string]struct{}, len(s.ImageExts))
	for _, e := range s.ImageExts {
		exts[strings.ToLower(e)] = struct{}{}
	}
	return &DirAssets{
		fs:       fsys,
		dir:      filepath.Join(root, s.VendorDir),
		urlBase:  path.Join("/", filepath.ToSlash(s.VendorDir)),
		exts:     exts,
		descFile: s.DescriptionFile,
	}
}

func (d *DirAssets) ListImages(slug string) ([]string, error) {
	infos, err := afero.ReadDir(d.fs, filepath.Join(d.dir, slug))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(infos))
	for _, fi := range infos {
		name := fi.Name()
		if fi.IsDir() || strings.HasPrefix(name, ".") || strings.EqualFold(name, d.descFile) {
			continue
		}
		if _, ok := d.exts[strings.ToLower(filepath.Ext(name))]; ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (d *DirAssets) ReadDescription(slug string) (string, bool, error) {
	b, err := afero.ReadFile(d.fs, filepath.Join(d.dir, slug, d.descFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	text := strings.TrimSpace(string(b))
	return text, text != "", nil
}

func (d *DirAssets) ImageURL(slug, name string) string {
	return path.Join(d.urlBase, slug, name)
}

// DescriptionPath is where ReadDescription looks for slug's description.
func (d *DirAssets) DescriptionPath(slug string) string {
	return filepath.Join(d.dir, slug, d.descFile)
}
