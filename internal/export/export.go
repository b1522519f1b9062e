// Package export writes a production.Snapshot in formats external plotting
// tools read: JSON, YAML or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/cobb-douglas/internal/production"
)

// Format selects the encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCSV}
}

// ParseFormat accepts a format name case-insensitively; "yml" means YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// document is the JSON/YAML layout: the snapshot plus a bar chart section
// shaped like the two-category comparison.
type document struct {
	Params     production.Params         `json:"params" yaml:"params"`
	Domain     production.Domain         `json:"domain" yaml:"domain"`
	Series     []production.CurveSeries  `json:"series" yaml:"series"`
	Bars       []bar                     `json:"bars" yaml:"bars"`
	Comparison production.ComparisonPair `json:"comparison" yaml:"comparison"`
}

type bar struct {
	Name   string  `json:"name" yaml:"name"`
	Output float64 `json:"output" yaml:"output"`
}

func newDocument(snap production.Snapshot) document {
	return document{
		Params: snap.Params,
		Domain: snap.Domain,
		Series: []production.CurveSeries{snap.Current, snap.Baseline, snap.Marker},
		Bars: []bar{
			{Name: "Current", Output: snap.Comparison.CurrentOutput},
			{Name: "Baseline", Output: snap.Comparison.BaselineOutput},
		},
		Comparison: snap.Comparison,
	}
}

// Write encodes snap to w in format f.
func Write(w io.Writer, snap production.Snapshot, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newDocument(snap)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(snap)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
		return nil
	case FormatCSV:
		return writeCSV(w, snap)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// writeCSV emits one row per capital sample with both curves side by side.
// Current and baseline are sampled over the same domain so rows line up.
func writeCSV(w io.Writer, snap production.Snapshot) error {
	if snap.Current.Len() != snap.Baseline.Len() {
		return fmt.Errorf("series length mismatch: current %d, baseline %d",
			snap.Current.Len(), snap.Baseline.Len())
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"k", "current_output", "baseline_output"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, pt := range snap.Current.Points {
		row := []string{
			formatFloat(pt.K),
			formatFloat(pt.Output),
			formatFloat(snap.Baseline.Points[i].Output),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
