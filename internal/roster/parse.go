// Package roster turns the vendor spreadsheet export into the roster dataset
// consumed by every page generator.
package roster

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	goslug "github.com/goliatone/go-slug"
	"go.uber.org/zap"

	"github.com/mithrel/fairgen/internal/util"
	"github.com/mithrel/fairgen/pkg/api"
)

// PreambleLines is the number of spreadsheet export lines above the header row.
const PreambleLines = 8

// Column names expected in the header row.
const (
	ColCompany          = "Company"
	ColSlug             = "slug"
	ColWebsite          = "Website"
	ColStore            = "Store"
	ColFacebook         = "Facebook"
	ColInstagram        = "Instagram"
	ColYoutube          = "Youtube"
	ColPublicEmail      = "Public email"
	ColPublicPhone      = "Public phone"
	ColShortDescription = "Short Description"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options tune a parse run.
type Options struct {
	// Strict turns date headers with an unknown month into a ValidationError
	// instead of dropping the column.
	Strict bool
	Logger *zap.SugaredLogger
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}

// ParseFile opens path and parses it as a roster for year.
func ParseFile(path string, year int, opts Options) (api.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return api.Roster{}, &FormatError{Path: path, Msg: "cannot open roster", Err: err}
	}
	defer f.Close()

	r, err := Parse(f, year, opts)
	var fe *FormatError
	if errors.As(err, &fe) && fe.Path == "" {
		fe.Path = path
	}
	return r, err
}

// Parse reads a roster spreadsheet export. Rows without a company name or
// without a year flag are skipped, never rejected.
func Parse(rd io.Reader, year int, opts Options) (api.Roster, error) {
	log := opts.logger()
	br := bufio.NewReader(rd)
	if err := skipPreamble(br); err != nil {
		return api.Roster{}, err
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return api.Roster{}, &FormatError{Msg: "missing header row"}
	}
	if err != nil {
		return api.Roster{}, &FormatError{Msg: "unreadable header row", Err: err}
	}

	cols := indexHeader(header)
	yearCol := strconv.Itoa(year)
	warnMissing(log, cols, header, ColCompany, yearCol)

	dateCols := make([]dateColumn, 0)
	seenDate := make(map[string]string)
	for _, h := range header {
		dc, ok, err := parseDateHeader(h, year)
		if err != nil {
			if opts.Strict {
				return api.Roster{}, err
			}
			log.Debugw("dropping date column", "column", h, "reason", err)
			continue
		}
		if !ok {
			continue
		}
		if first, dup := seenDate[dc.Slug]; dup {
			log.Warnw("date columns share a slug; their vendors are merged into one date", "slug", dc.Slug, "columns", []string{first, h})
		} else {
			seenDate[dc.Slug] = h
		}
		dateCols = append(dateCols, dc)
	}

	out := api.Roster{Vendors: []api.Vendor{}, Dates: api.NewDateIndex()}
	for _, dc := range dateCols {
		out.Dates.Set(dc.Slug, api.Date{Slug: dc.Slug, Display: dc.Display, Vendors: []api.VendorRef{}})
	}

	rowNum := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return api.Roster{}, &FormatError{Msg: fmt.Sprintf("row %d", rowNum+1), Err: err}
		}
		rowNum++
		row := record{cols: cols, values: rec}

		flag := strings.TrimSpace(row.get(yearCol))
		if flag == "" || flag == "0" {
			log.Debugw("skipping row without year flag", "row", rowNum, "year", year)
			continue
		}
		name := strings.TrimSpace(row.get(ColCompany))
		if name == "" {
			log.Debugw("skipping row without company", "row", rowNum)
			continue
		}

		slug := strings.TrimSpace(row.get(ColSlug))
		if slug == "" {
			slug = Slugify(name)
		} else if !goslug.IsValid(slug) {
			log.Warnw("explicit slug is not URL safe; using it verbatim", "vendor", name, "slug", slug)
		}

		v := api.Vendor{
			Name:             name,
			Slug:             slug,
			Website:          strings.TrimSpace(row.get(ColWebsite)),
			Store:            strings.TrimSpace(row.get(ColStore)),
			Facebook:         strings.TrimSpace(row.get(ColFacebook)),
			Instagram:        strings.TrimSpace(row.get(ColInstagram)),
			Youtube:          strings.TrimSpace(row.get(ColYoutube)),
			PublicEmail:      strings.TrimSpace(row.get(ColPublicEmail)),
			PublicPhone:      strings.TrimSpace(row.get(ColPublicPhone)),
			ShortDescription: strings.TrimSpace(row.get(ColShortDescription)),
			Dates:            []api.DateRef{},
		}
		for _, dc := range dateCols {
			if !IsTruthy(row.get(dc.Header)) {
				continue
			}
			v.Dates = append(v.Dates, api.DateRef{Slug: dc.Slug, Display: dc.Display})
			out.Dates.AddVendor(dc.Slug, api.VendorRef{Name: name, Slug: slug})
		}
		out.Vendors = append(out.Vendors, v)
	}

	for _, c := range Collisions(out) {
		log.Warnw("vendors share a slug; the later page will overwrite the earlier one", "slug", c.Slug, "vendors", c.Names)
	}
	log.Debugw("parsed roster", "vendors", len(out.Vendors), "dates", out.Dates.Len())
	return out, nil
}

// Collisions lists slugs used by more than one vendor, in first-seen order.
func Collisions(r api.Roster) []Collision {
	names := make(map[string][]string)
	order := make([]string, 0)
	for _, v := range r.Vendors {
		if _, ok := names[v.Slug]; !ok {
			order = append(order, v.Slug)
		}
		names[v.Slug] = append(names[v.Slug], v.Name)
	}
	out := make([]Collision, 0)
	for _, s := range order {
		if len(names[s]) > 1 {
			out = append(out, Collision{Slug: s, Names: names[s]})
		}
	}
	return out
}

func skipPreamble(br *bufio.Reader) error {
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	for i := 0; i < PreambleLines; i++ {
		line, err := br.ReadString('\n')
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			// A final line without a newline still counts.
			if line != "" && i == PreambleLines-1 {
				return nil
			}
			return &FormatError{Msg: fmt.Sprintf("expected %d preamble lines, found %d", PreambleLines, i+boolToInt(line != ""))}
		}
		return &FormatError{Msg: "unreadable preamble", Err: err}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// indexHeader maps header names to column positions. Later duplicates win;
// a padded name is also reachable by its trimmed form.
func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	for i, h := range header {
		if t := strings.TrimSpace(h); t != h {
			if _, ok := cols[t]; !ok {
				cols[t] = i
			}
		}
	}
	return cols
}

func warnMissing(log *zap.SugaredLogger, cols map[string]int, header []string, names ...string) {
	for _, name := range names {
		if _, ok := cols[name]; ok {
			continue
		}
		if guess := util.ClosestHeader(name, header); guess != "" {
			log.Warnw("column not found; no rows will be accepted", "column", name, "closest", guess)
			continue
		}
		log.Warnw("column not found; no rows will be accepted", "column", name)
	}
}

type record struct {
	cols   map[string]int
	values []string
}

func (r record) get(name string) string {
	i, ok := r.cols[name]
	if !ok {
		return ""
	}
	return r.at(i)
}

func (r record) at(i int) string {
	if i < 0 || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}
