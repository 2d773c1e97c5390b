package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatTable, formatJSON, formatYAML:
		return true
	default:
		return false
	}
}

// table is the tabular rendering of a result.
type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(cols ...string) {
	t.rows = append(t.rows, cols)
}

// render prints v as JSON or YAML, or t as an aligned table.
func (a *app) render(v any, t table) error {
	switch a.output {
	case formatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case formatYAML:
		return writeYAML(a.out, v)
	default:
		return writeTable(a.out, t)
	}
}

// writeYAML round-trips v through JSON so field names and timestamps match
// the JSON output.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, t table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(t.header) > 0 {
		if err := writeln(tw, strings.Join(t.header, "\t")); err != nil {
			return fmt.Errorf("write table header: %w", err)
		}
	}
	for _, row := range t.rows {
		if err := writeln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("write table row: %w", err)
		}
	}
	return tw.Flush()
}

// message prints a one-line result; structured formats wrap it.
func (a *app) message(text string) error {
	return a.render(map[string]string{"message": text}, table{rows: [][]string{{text}}})
}

func writeln(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
