package site

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/mithrel/fairgen/internal/config"
	"github.com/mithrel/fairgen/pkg/api"
)

// Scaffold ensures every vendor has an asset directory with a description
// file. Existing descriptions are never touched. It returns the number of
// vendor directories visited and description files created.
func Scaffold(fsys afero.Fs, root string, s config.Site, r api.Roster, log *zap.SugaredLogger) (int, int, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	assets := NewDirAssets(fsys, root, s)
	created := 0
	for _, v := range r.Vendors {
		desc := assets.DescriptionPath(v.Slug)
		if err := fsys.MkdirAll(filepath.Dir(desc), dirPerm); err != nil {
			return 0, created, err
		}
		ok, err := afero.Exists(fsys, desc)
		if err != nil {
			return 0, created, err
		}
		if ok {
			continue
		}
		if err := afero.WriteFile(fsys, desc, nil, filePerm); err != nil {
			return 0, created, err
		}
		created++
		log.Infow("created description placeholder", "path", desc)
	}
	log.Infow("scaffolded vendor directories", "count", len(r.Vendors), "created", created)
	return len(r.Vendors), created, nil
}
