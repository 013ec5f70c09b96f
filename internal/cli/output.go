package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rohmanhakim/http-message/internal/config"
)

type textRenderer interface {
	renderText(w io.Writer) error
}

// render prints v in the configured output format.
func (a *app) render(v textRenderer) error {
	if a.cfg.Output() == config.OutputJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return v.renderText(a.out)
}

// writeFields prints label/value pairs aligned on the value column.
func writeFields(w io.Writer, fields [][2]string) error {
	width := 0
	for _, f := range fields {
		if len(f[0]) > width {
			width = len(f[0])
		}
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width+1, f[0]+":", f[1]); err != nil {
			return err
		}
	}
	return nil
}
