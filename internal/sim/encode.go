package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown output format")

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}

// Encode writes v to w as "json" or "yaml".
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case "", "json":
		if _, err := w.Write(append(MarshalPretty(v), '\n')); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("writing yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
