package config

import (
	"fmt"
	"strconv"
	"strings"
)

// groupOptions splits options into top-level keys and [section] groups,
// keeping first-seen section order.
func groupOptions(opts []ConfigOption) ([]ConfigOption, []string, map[string][]ConfigOption) {
	top := make([]ConfigOption, 0, len(opts))
	sections := make(map[string][]ConfigOption)
	order := make([]string, 0)
	for _, o := range opts {
		section, key, ok := strings.Cut(o.Key, ".")
		if !ok {
			top = append(top, o)
			continue
		}
		if _, seen := sections[section]; !seen {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	return top, order, sections
}

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var lines []string
	lines = append(lines, "# fairgen configuration (TOML)", "")

	top, order, sections := groupOptions(GetConfigOptions())
	for _, o := range top {
		writeTOMLOptionLines(&lines, o.Key, o.Default, o.Comment)
	}
	for _, section := range order {
		lines = append(lines, "["+section+"]")
		for _, o := range sections[section] {
			writeTOMLOptionLines(&lines, o.Key, o.Default, o.Comment)
		}
	}
	return strings.Join(lines, "\n")
}

// UpdateTOML merges defaults missing from an existing TOML string and
// comments out keys that are no longer known. Missing keys of a section
// already in the file go right under its header.
func UpdateTOML(existing string) (string, bool) {
	opts := GetConfigOptions()
	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	lines := strings.Split(existing, "\n")
	present := make(map[string]bool)
	hasSection := make(map[string]bool)
	section := ""
	for _, line := range lines {
		if name, ok := parseSectionHeader(line); ok {
			section = name
			hasSection[name] = true
			continue
		}
		if key, ok := parseTOMLKey(line); ok {
			present[joinKey(section, key)] = true
		}
	}

	missing := make([]ConfigOption, 0)
	for _, o := range opts {
		if !present[o.Key] {
			missing = append(missing, o)
		}
	}
	top, order, sections := groupOptions(missing)
	changed := len(missing) > 0

	out := make([]string, 0, len(lines))
	// Bare keys must precede the first [section] header.
	if len(top) > 0 {
		out = append(out, "# Added by config update")
		for _, o := range top {
			writeTOMLOptionLines(&out, o.Key, o.Default, o.Comment)
		}
	}
	section = ""
	for _, line := range lines {
		if name, ok := parseSectionHeader(line); ok {
			section = name
			out = append(out, line)
			for _, o := range sections[name] {
				writeTOMLOptionLines(&out, o.Key, o.Default, o.Comment)
			}
			continue
		}
		if key, ok := parseTOMLKey(line); ok && !known[joinKey(section, key)] {
			out = append(out, "# OUTDATED: option removed from config schema", "# "+strings.TrimSpace(line))
			changed = true
			continue
		}
		out = append(out, line)
	}

	added := false
	for _, name := range order {
		if hasSection[name] {
			continue
		}
		if !added {
			out = append(out, "", "# Added by config update")
			added = true
		}
		out = append(out, "["+name+"]")
		for _, o := range sections[name] {
			writeTOMLOptionLines(&out, o.Key, o.Default, o.Comment)
		}
	}
	return strings.Join(out, "\n"), changed
}

func parseSectionHeader(line string) (string, bool) {
	trim := strings.TrimSpace(line)
	if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") {
		return strings.TrimSpace(trim[1 : len(trim)-1]), true
	}
	return "", false
}

func joinKey(section, key string) string {
	if section == "" {
		return key
	}
	return section + "." + key
}

func parseTOMLKey(line string) (string, bool) {
	trim := strings.TrimSpace(line)
	if trim == "" || strings.HasPrefix(trim, "#") {
		return "", false
	}
	key, _, ok := strings.Cut(line, "=")
	if !ok {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, "[") || strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func writeTOMLOptionLines(lines *[]string, key string, value any, comment string) {
	if comment != "" {
		*lines = append(*lines, "# "+comment)
	}
	switch v := value.(type) {
	case string:
		*lines = append(*lines, fmt.Sprintf("%s = %s", key, strconv.Quote(v)), "")
	case bool, int, int64, float64:
		*lines = append(*lines, fmt.Sprintf("%s = %v", key, v), "")
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = strconv.Quote(s)
		}
		*lines = append(*lines, fmt.Sprintf("%s = [%s]", key, strings.Join(quoted, ", ")), "")
	}
}
