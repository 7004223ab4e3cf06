package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// EventLink holds the external event pages for one fair date.
type EventLink struct {
	URL      string `json:"url"`
	Nextdoor string `json:"nextdoor"`
}

// EventLinks maps date slugs to their external event pages.
type EventLinks map[string]EventLink

// Get never fails; unknown slugs have no links.
func (l EventLinks) Get(slug string) EventLink {
	return l[slug]
}

// LoadEventLinks reads the event links JSON file. A missing file is logged
// and treated as empty.
func LoadEventLinks(fsys afero.Fs, path string, log *zap.SugaredLogger) (EventLinks, error) {
	b, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warnw("missing event links file", "path", path)
		return EventLinks{}, nil
	}
	if err != nil {
		return nil, err
	}
	links := EventLinks{}
	if err := json.Unmarshal(b, &links); err != nil {
		return nil, fmt.Errorf("event links %s: %w", path, err)
	}
	log.Infow("loaded event links", "count", len(links))
	return links, nil
}
