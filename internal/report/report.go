// Package report renders bottleneck results for terminals and scripts.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/restartfu/bottleneck/internal/domain"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format %q", value)
	}
}

type view struct {
	CPU          string  `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	GPU          string  `json:"gpu,omitempty" yaml:"gpu,omitempty"`
	CPUScore     float64 `json:"cpu_score,omitempty" yaml:"cpu_score,omitempty"`
	GPUScore     float64 `json:"gpu_score,omitempty" yaml:"gpu_score,omitempty"`
	Percentage   float64 `json:"percentage" yaml:"percentage"`
	LimitingSide string  `json:"limiting_side,omitempty" yaml:"limiting_side,omitempty"`
	Advisory     string  `json:"advisory" yaml:"advisory"`
	Complete     bool    `json:"complete" yaml:"complete"`
}

// Write renders result to w in the given format.
func Write(w io.Writer, result domain.Bottleneck, format Format) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, Text(result))
		return err
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(toView(result))
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(toView(result)); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("invalid output format %q", format)
	}
}

// Text is the two-line human summary, or just the advisory while the
// selection is incomplete.
func Text(result domain.Bottleneck) string {
	if !result.Complete {
		return result.Advisory
	}
	return Headline(result) + "\n" + result.Advisory
}

func Headline(result domain.Bottleneck) string {
	if result.LimitingSide == "balanced" {
		return fmt.Sprintf("Bottleneck of %.2f%% (balanced)", result.Percentage)
	}
	return fmt.Sprintf("Bottleneck of %.2f%% (%s limiting)", result.Percentage, result.LimitingSide)
}

func toView(result domain.Bottleneck) view {
	return view{
		CPU:          result.CPU,
		GPU:          result.GPU,
		CPUScore:     result.CPUScore,
		GPUScore:     result.GPUScore,
		Percentage:   result.Percentage,
		LimitingSide: result.LimitingSide,
		Advisory:     result.Advisory,
		Complete:     result.Complete,
	}
}

// WriteComponents prints one "name<TAB>score" line per component.
func WriteComponents(w io.Writer, components []domain.Component) error {
	for _, component := range components {
		if _, err := fmt.Fprintf(w, "%s\t%.0f\n", component.Name, component.Score); err != nil {
			return err
		}
	}
	return nil
}
