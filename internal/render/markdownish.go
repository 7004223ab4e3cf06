// Package render converts vendor-supplied plain text into HTML fragments.
package render

import (
	"bufio"
	"io"
	"strings"
)

type listState int

const (
	noList listState = iota
	inList
)

// Markdownish renders paragraphs and flat bullet lists, one pass over r.
//
// A blank line closes an open list and emits "<p></p>". Lines starting with
// "- " or "* " become list items. Anything else closes an open list and
// becomes a paragraph. Leading and trailing blank lines of the whole input
// are ignored. Content is trusted and passed through unescaped; output lines
// are joined with "\n" and carry no trailing newline.
func Markdownish(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	br := bufio.NewReader(r)

	state := noList
	started := false
	pendingBlanks := 0
	first := true

	emit := func(s string) {
		if !first {
			_ = bw.WriteByte('\n')
		}
		first = false
		_, _ = bw.WriteString(s)
	}
	closeList := func() {
		if state == inList {
			emit("</ul>")
			state = noList
		}
	}

	for {
		raw, err := br.ReadString('\n')
		if raw == "" && err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		if err != nil && err != io.EOF {
			return err
		}
		line := strings.TrimRight(raw, " \t\r\n\v\f")
		if strings.TrimSpace(line) == "" {
			if started {
				pendingBlanks++
			}
			continue
		}
		if !started {
			// The input as a whole is trimmed, so the first line loses its indent.
			line = strings.TrimLeft(line, " \t\r\v\f")
			started = true
		}
		for ; pendingBlanks > 0; pendingBlanks-- {
			closeList()
			emit("<p></p>")
		}

		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			if state == noList {
				emit("<ul>")
				state = inList
			}
			emit("<li>" + strings.TrimSpace(line[2:]) + "</li>")
			continue
		}
		closeList()
		emit("<p>" + strings.TrimSpace(line) + "</p>")
	}
	closeList()
	return bw.Flush()
}

// MarkdownishString is Markdownish over a string.
func MarkdownishString(s string) (string, error) {
	var b strings.Builder
	if err := Markdownish(strings.NewReader(s), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
