package render

import (
	"encoding/json"
	"io"
)

func renderJSON(w io.Writer, res Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(res)
}
