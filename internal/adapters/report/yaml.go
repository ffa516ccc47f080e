package report

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/okian/ats/internal/domain/types"
)

// YAMLFormatter emits the report as YAML with the same keys as the JSON output.
type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter { return &YAMLFormatter{} }

func (f *YAMLFormatter) Name() string          { return "yaml" }
func (f *YAMLFormatter) Description() string   { return "YAML output, same structure as json" }
func (f *YAMLFormatter) FileExtension() string { return ".yaml" }

func (f *YAMLFormatter) Format(r types.Report, _ Options) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return string(data), nil
}
