package render

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

func renderTOML(w io.Writer, res Result) error {
	return toml.NewEncoder(w).Encode(res)
}
