// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes a single JSON array of v1 rows (pretty-indented).
func WriteJSON[T any](w io.Writer, list []T, t Table[T]) error {
	out := make([]any, 0, len(list))
	for _, r := range list {
		out = append(out, t.API(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
