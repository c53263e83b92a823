package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

var errUnsupportedOutput = errors.New("unsupported output")

// output is a rendering format for results.
type output string

const (
	outputPlain output = "plain"
	outputJSON  output = "json"
	outputYAML  output = "yaml"
	outputCSV   output = "csv"
)

var outputs = []output{outputPlain, outputJSON, outputYAML, outputCSV}

func parseOutput(s string) (output, error) {
	for _, o := range outputs {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnsupportedOutput, s)
}

// result is the outcome of formatting one input line.
type result struct {
	Input     string `json:"input" yaml:"input"`
	Formatted string `json:"formatted" yaml:"formatted"`
	Unfixed   string `json:"unfixed" yaml:"unfixed"`
	Matches   bool   `json:"matches" yaml:"matches"`
	Fulfilled bool   `json:"fulfilled" yaml:"fulfilled"`
}

var resultHeader = []string{"INPUT", "FORMATTED", "UNFIXED", "MATCHES", "FULFILLED"}

func (r result) row() []string {
	return []string{r.Input, r.Formatted, r.Unfixed, strconv.FormatBool(r.Matches), strconv.FormatBool(r.Fulfilled)}
}

func writeResults(w io.Writer, o output, results []result) error {
	switch o {
	case outputPlain:
		return writePlain(w, results)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case outputCSV:
		return writeCSV(w, results)
	default:
		return fmt.Errorf("%w: %q", errUnsupportedOutput, o)
	}
}

func writeCSV(w io.Writer, results []result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(r.row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writePlain prints space-separated columns padded to their display width.
func writePlain(w io.Writer, results []result) error {
	if len(results) == 0 {
		return nil
	}
	widths := make([]int, len(resultHeader))
	for i, h := range resultHeader {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range results {
		for i, cell := range r.row() {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	if err := writePlainRow(w, resultHeader, widths); err != nil {
		return err
	}
	for _, r := range results {
		if err := writePlainRow(w, r.row(), widths); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(cell)
		if i < len(cells)-1 {
			if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
