package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Simplici0/auditcost/internal/costmodel"
)

// Load reads a scenario file. Fields missing from the file keep their
// default value; unknown fields are an error.
func Load(path string) (costmodel.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return costmodel.Input{}, fmt.Errorf("load scenario %q: %w", path, err)
	}

	in, err := Decode(bytes.NewReader(data))
	if err != nil {
		return costmodel.Input{}, fmt.Errorf("parse scenario %q: %w", path, err)
	}
	return in, nil
}

// Decode reads a YAML (or JSON) scenario on top of costmodel.Defaults.
func Decode(r io.Reader) (costmodel.Input, error) {
	in := costmodel.Defaults()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil && err != io.EOF {
		return costmodel.Input{}, err
	}

	if err := costmodel.Validate(in); err != nil {
		return costmodel.Input{}, err
	}
	return in, nil
}
