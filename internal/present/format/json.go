package format

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes v as one JSON document. HTML characters are left
// unescaped so names and URLs read the same as in the roster file.
func WriteJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
