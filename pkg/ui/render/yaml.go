package render

import (
	"io"

	"gopkg.in/yaml.v3"
)

func renderYAML(w io.Writer, res Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(res); err != nil {
		return err
	}
	return encoder.Close()
}
