// Package editor opens vendor descriptions in the user's editor.
package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const commentPrefix = "#"

// HeaderEnd closes the comment header. Everything after it is description,
// including lines that start with '#'.
const HeaderEnd = "# ---- description below this line ----"

// ComposeDescription creates the text presented to the editor: a comment
// header naming the vendor followed by the current description.
func ComposeDescription(name, slug, short, current string) string {
	var b bytes.Buffer
	b.WriteString("# Description for " + name + " (" + slug + ")\n")
	b.WriteString("# This header is discarded on save.\n")
	b.WriteString("# '- ' or '* ' starts a list item; a blank line separates paragraphs.\n")
	if s := strings.TrimSpace(short); s != "" {
		b.WriteString("# Short description: " + FirstLine(s) + "\n")
	}
	b.WriteString(HeaderEnd + "\n")
	if current != "" {
		if !strings.HasSuffix(current, "\n") {
			current += "\n"
		}
		b.WriteString(current)
	}
	return b.String()
}

// ParseEditedDescription drops the header and surrounding whitespace from
// the editor output. Without a HeaderEnd line the leading comment lines
// count as the header.
func ParseEditedDescription(s string) string {
	lines := strings.Split(s, "\n")
	i := 0
	for j, l := range lines {
		if strings.TrimSpace(l) == HeaderEnd {
			i = j + 1
			break
		}
	}
	if i == 0 {
		for i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), commentPrefix) {
			i++
		}
	}
	return strings.TrimSpace(strings.Join(lines[i:], "\n"))
}

// PreferredEditor returns the editor command line: $VISUAL, then $EDITOR,
// then the first common editor found on PATH.
func PreferredEditor() (string, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v, nil
		}
	}
	for _, cand := range []string{"nvim", "vim", "vi", "nano"} {
		if p, err := exec.LookPath(cand); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no editor found; set $EDITOR or $VISUAL")
}

// PathForSlug returns a scratch file path for editing slug's description.
func PathForSlug(slug string) (string, error) {
	name := sanitize(slug) + ".description.txt"
	if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
		return filepath.Join(xdg, "fairgen", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "fairgen", "edit", name), nil
}

func sanitize(slug string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(slug) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// OpenAt seeds path with initial, runs the editor on it and returns the
// saved bytes and whether they differ from initial.
func OpenAt(ctx context.Context, path string, initial []byte) ([]byte, bool, error) {
	ed, err := PreferredEditor()
	if err != nil {
		return nil, false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, false, err
	}
	if err := os.WriteFile(path, initial, 0o600); err != nil {
		return nil, false, err
	}
	// The editor string may carry flags, so let the shell split it.
	cmd := exec.CommandContext(ctx, "sh", "-c", ed+` "$1"`, "sh", path)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, false, fmt.Errorf("%s: %w", ed, err)
	}
	out, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return out, !bytes.Equal(out, initial), nil
}

// FirstLine returns the first trimmed line, squashed and truncated.
func FirstLine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	r := []rune(strings.Join(strings.Fields(s), " "))
	if len(r) > 120 {
		r = r[:120]
	}
	return string(r)
}
