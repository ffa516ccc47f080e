package report

import (
	"encoding/json"
	"fmt"

	"github.com/okian/ats/internal/domain/types"
)

// JSONFormatter emits the report as JSON.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

func (f *JSONFormatter) Name() string          { return "json" }
func (f *JSONFormatter) Description() string   { return "Structured JSON output for programmatic consumption" }
func (f *JSONFormatter) FileExtension() string { return ".json" }

func (f *JSONFormatter) Format(r types.Report, opts Options) (string, error) {
	var (
		data []byte
		err  error
	)
	if opts.Compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return string(data) + "\n", nil
}
