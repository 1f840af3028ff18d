package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes v as JSON to w. The encoder appends the trailing
// newline that makes the output a complete line for shell consumers.
func WriteJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
