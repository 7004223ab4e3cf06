package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mithrel/fairgen/internal/roster"
	"github.com/mithrel/fairgen/pkg/api"
)

const sheetCSV = `Edge of Liberty vendor sign-ups
,,
,,
,,
,,
,,
,,
,,
Company,2026,Website,Public phone,Short Description,May-3,Jun-7
Acme Candles,X,https://acme.example,,Soy candles,X,X
bee Happy Honey,1,,555-0100,Raw honey,,X
Retired Vendor,,,,,X,X
`

// isolate keeps the CLI away from any real config file.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	t.Chdir(tmp)
	return tmp
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

// parseRoster runs parse and stores the JSON next to the sheet.
func parseRoster(t *testing.T, dir string) string {
	t.Helper()
	csvPath := filepath.Join(dir, "vendors.csv")
	writeFile(t, csvPath, sheetCSV)
	out, stderr, err := run(t, "", "parse", csvPath, "2026")
	if err != nil {
		t.Fatalf("parse: %v\n%s", err, stderr)
	}
	rosterPath := filepath.Join(dir, "roster.json")
	writeFile(t, rosterPath, out)
	return rosterPath
}

func TestParseCommand(t *testing.T) {
	dir := isolate(t)
	csvPath := filepath.Join(dir, "vendors.csv")
	writeFile(t, csvPath, sheetCSV)

	out, stderr, err := run(t, "", "parse", csvPath, "2026")
	if err != nil {
		t.Fatalf("parse: %v\n%s", err, stderr)
	}
	var r api.Roster
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode stdout: %v\n%s", err, out)
	}
	if len(r.Vendors) != 2 {
		t.Fatalf("want 2 vendors, got %d", len(r.Vendors))
	}
	if got := r.Dates.Keys(); strings.Join(got, ",") != "may-03-2026,june-07-2026" {
		t.Fatalf("date order: %v", got)
	}
	if !strings.Contains(stderr, "parsed roster") {
		t.Fatalf("expected parse summary on stderr, got %q", stderr)
	}
	if strings.Contains(out, "parsed roster") {
		t.Fatalf("log leaked to stdout: %q", out)
	}

	indented, _, err := run(t, "", "parse", "--indent", csvPath, "2026")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(indented, "\n  \"vendors\": [") {
		t.Fatalf("expected indented output, got %q", indented)
	}
}

func TestParseUsageErrors(t *testing.T) {
	isolate(t)
	cases := map[string][]string{
		"missing year":     {"parse", "vendors.csv"},
		"extra argument":   {"parse", "vendors.csv", "2026", "more"},
		"non-integer year": {"parse", "vendors.csv", "twenty"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, "", args...)
			var ue *roster.UsageError
			if !errors.As(err, &ue) {
				t.Fatalf("want UsageError, got %v", err)
			}
			if !strings.Contains(ue.Error(), "usage: fairgen parse <csv> <year>") {
				t.Fatalf("usage text missing: %q", ue.Error())
			}
			if out != "" {
				t.Fatalf("stdout must stay empty, got %q", out)
			}
		})
	}
}

func TestParseFormatError(t *testing.T) {
	dir := isolate(t)
	csvPath := filepath.Join(dir, "short.csv")
	writeFile(t, csvPath, "one\ntwo\n")

	out, _, err := run(t, "", "parse", csvPath, "2026")
	var fe *roster.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want FormatError, got %v", err)
	}
	if out != "" {
		t.Fatalf("stdout must stay empty, got %q", out)
	}
}

func TestRenderCommand(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "- a\n- b\n\ntext", "render")
	if err != nil {
		t.Fatal(err)
	}
	if want := "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n<p></p>\n<p>text</p>"; out != want {
		t.Fatalf("render mismatch:\n got %q\nwant %q", out, want)
	}

	out, _, err = run(t, "**bold**", "render", "--engine", "goldmark")
	if err != nil {
		t.Fatal(err)
	}
	if out != "<p><strong>bold</strong></p>" {
		t.Fatalf("goldmark output: %q", out)
	}

	_, _, err = run(t, "x", "render", "--engine", "pandoc")
	var ue *roster.UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("want UsageError for unknown engine, got %v", err)
	}
}

func TestScaffoldAndBuild(t *testing.T) {
	dir := isolate(t)
	rosterPath := parseRoster(t, dir)
	site := filepath.Join(dir, "site")
	for _, n := range []string{"header", "footer", "home_intro", "home_vendors", "home_hero"} {
		writeFile(t, filepath.Join(site, "_includes", n+".html"), "<!-- "+n+" -->")
	}

	out, _, err := run(t, "", "scaffold", site, rosterPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Scaffolded 2 vendor directories (2 new descriptions)") {
		t.Fatalf("scaffold output: %q", out)
	}
	writeFile(t, filepath.Join(site, "acme-candles", "description.txt"), "Hand poured.\n- lavender")
	writeFile(t, filepath.Join(site, "acme-candles", "shelf.jpg"), "jpg")

	out, stderr, err := run(t, "", "build", site, rosterPath)
	if err != nil {
		t.Fatalf("build: %v\n%s", err, stderr)
	}
	if !strings.Contains(out, "(0 unchanged)") {
		t.Fatalf("first build output: %q", out)
	}
	if !strings.Contains(stderr, "missing event links file") {
		t.Fatalf("expected missing links warning, got %q", stderr)
	}

	vendor := readFile(t, filepath.Join(site, "acme-candles", "index.html"))
	for _, want := range []string{
		"<p>Hand poured.</p>\n<ul>\n<li>lavender</li>\n</ul>",
		`<a href="https://acme.example">Website</a>`,
		`src="/acme-candles/shelf.jpg"`,
	} {
		if !strings.Contains(vendor, want) {
			t.Fatalf("vendor page missing %q:\n%s", want, vendor)
		}
	}
	date := readFile(t, filepath.Join(site, "june-07-2026", "index.html"))
	if !strings.Contains(date, `<a href="/bee-happy-honey/">bee Happy Honey</a> — Raw honey`) {
		t.Fatalf("date page vendors:\n%s", date)
	}
	home := readFile(t, filepath.Join(site, "index.html"))
	if !strings.HasPrefix(home, "<!-- header -->") || !strings.HasSuffix(home, "<!-- footer -->") {
		t.Fatalf("home page assembly:\n%s", home)
	}

	out, _, err = run(t, "", "build", site, rosterPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Wrote 0 files") {
		t.Fatalf("second build should change nothing: %q", out)
	}

	_, _, err = run(t, "", "build", "--only", "faq", site, rosterPath)
	var ue *roster.UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("want UsageError for bad --only, got %v", err)
	}
}

func TestBuildHomeNeedsIncludes(t *testing.T) {
	dir := isolate(t)
	rosterPath := parseRoster(t, dir)
	_, _, err := run(t, "", "build", "--only", "home", filepath.Join(dir, "site"), rosterPath)
	if err == nil || !strings.Contains(err.Error(), "missing required include") {
		t.Fatalf("want missing include error, got %v", err)
	}
}

func TestShowAndList(t *testing.T) {
	dir := isolate(t)
	rosterPath := parseRoster(t, dir)

	out, _, err := run(t, "", "show", rosterPath, "acme-candles", "--output", "json")
	if err != nil {
		t.Fatal(err)
	}
	var v api.Vendor
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode vendor: %v\n%s", err, out)
	}
	if v.Name != "Acme Candles" || len(v.Dates) != 2 {
		t.Fatalf("unexpected vendor: %+v", v)
	}

	out, _, err = run(t, "", "show", rosterPath, "june-07-2026", "--headers=false")
	if err != nil {
		t.Fatal(err)
	}
	if fields := strings.Fields(out); len(fields) != 6 || fields[0] != "june-07-2026" || fields[4] != "2" {
		t.Fatalf("date line: %q", out)
	}

	out, _, err = run(t, "", "show", rosterPath, "acme-candles", "-o", "pretty", "--style", "notty")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Acme Candles") || strings.Contains(out, "\x1b[") {
		t.Fatalf("notty pretty output: %q", out)
	}
	if _, _, err := run(t, "", "show", rosterPath, "acme-candles", "-o", "pretty", "--style", "no-such-style"); err == nil {
		t.Fatal("expected error for unknown style")
	}

	_, _, err = run(t, "", "show", rosterPath, "acme-candle")
	if err == nil || !strings.Contains(err.Error(), "did you mean acme-candles") {
		t.Fatalf("want suggestion, got %v", err)
	}

	out, _, err = run(t, "", "list", rosterPath, "vendors", "--sorted", "--output", "ndjson")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], `"slug":"acme-candles"`) {
		t.Fatalf("ndjson list: %q", out)
	}

	_, _, err = run(t, "", "list", rosterPath, "booths")
	var ue *roster.UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("want UsageError, got %v", err)
	}
}

func TestConfigGenerate(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "conf", "fairgen.toml")

	out, _, err := run(t, "", "config", "generate", "-o", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Wrote "+cfg) {
		t.Fatalf("generate output: %q", out)
	}
	if _, _, err := run(t, "", "config", "generate", "-o", cfg); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	out, _, err = run(t, "", "config", "generate", "-o", cfg, "--update")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Config already up to date") {
		t.Fatalf("update output: %q", out)
	}

	out, _, err = run(t, "", "--config", cfg, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"event_name": "The Edge of Liberty Craft Fair"`) {
		t.Fatalf("config show: %q", out)
	}
}

func TestSiteValidationOnlyForSiteCommands(t *testing.T) {
	dir := isolate(t)
	rosterPath := parseRoster(t, dir)
	cfg := filepath.Join(dir, "bad.toml")
	writeFile(t, cfg, "[site]\norg_url = \"not a url\"\n")

	out, _, err := run(t, "- a", "--config", cfg, "render")
	if err != nil {
		t.Fatalf("render must ignore site settings: %v", err)
	}
	if out != "<ul>\n<li>a</li>\n</ul>" {
		t.Fatalf("render output: %q", out)
	}
	if _, _, err := run(t, "", "--config", cfg, "parse", filepath.Join(dir, "vendors.csv"), "2026"); err != nil {
		t.Fatalf("parse must ignore site settings: %v", err)
	}
	for _, args := range [][]string{
		{"build", filepath.Join(dir, "site"), rosterPath},
		{"scaffold", filepath.Join(dir, "site"), rosterPath},
		{"config", "show"},
	} {
		_, _, err := run(t, "", append([]string{"--config", cfg}, args...)...)
		if err == nil || !strings.Contains(err.Error(), "org_url") {
			t.Fatalf("%s: want validation error, got %v", args[0], err)
		}
	}
}

func TestCompletionBash(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "", "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "__start_fairgen") {
		t.Fatalf("bash completion output missing command name")
	}
}

func TestDescribeCommand(t *testing.T) {
	dir := isolate(t)
	rosterPath := parseRoster(t, dir)
	site := filepath.Join(dir, "site")
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(dir, "run"))
	t.Setenv("VISUAL", "")

	script := filepath.Join(dir, "ed.sh")
	writeFile(t, script, "#!/bin/sh\necho 'Beeswax wraps too.' >> \"$1\"\n")
	if err := os.Chmod(script, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EDITOR", script)

	writeFile(t, filepath.Join(site, "acme-candles", "description.txt"), "Hand poured.\n")
	out, stderr, err := run(t, "", "describe", site, rosterPath, "acme-candles")
	if err != nil {
		t.Fatalf("describe: %v\n%s", err, stderr)
	}
	if !strings.HasPrefix(out, "Updated ") {
		t.Fatalf("describe output: %q", out)
	}
	got := readFile(t, filepath.Join(site, "acme-candles", "description.txt"))
	if got != "Hand poured.\nBeeswax wraps too.\n" {
		t.Fatalf("description=%q", got)
	}

	t.Setenv("EDITOR", "true")
	out, _, err = run(t, "", "describe", site, rosterPath, "acme-candles")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "No changes." {
		t.Fatalf("unchanged describe output: %q", out)
	}

	if _, _, err := run(t, "", "describe", site, rosterPath, "nobody"); err == nil {
		t.Fatal("expected error for unknown vendor")
	}
}
