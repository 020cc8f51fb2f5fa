package render

import (
	"encoding/json"
	"io"
)

type Renderer[T any] interface {
	Render(result T) error
}

// writeJSON writes v as indented JSON followed by a newline
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
