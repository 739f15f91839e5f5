package reporting

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"
)

// Format selects how reports are rendered.
type Format int

const (
	FormatInvalid Format = iota
	FormatText
	FormatJSON
)

var formatValueMap = map[Format]string{
	FormatText: "text",
	FormatJSON: "json",
}

func (f Format) String() string {
	v, ok := formatValueMap[f]
	if !ok {
		return fmt.Sprintf("invalid(%d)", f)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (f *Format) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range formatValueMap {
		if v == text {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("unknown output format %q", text)
}

// Set and Type make Format usable as a command line flag value.
func (f *Format) Set(s string) error { return f.UnmarshalText([]byte(s)) }
func (f *Format) Type() string       { return "format" }

type jsonReport struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Rule    string `json:"rule"`
	Code    string `json:"code"`
	Level   string `json:"level"`
	Phase   string `json:"phase"`
	Message string `json:"message"`
}

// Write renders reports.
//
// The text form is one line per report:
//
//	file:line:col: level AF010 alt-text: message
//
// The JSON form is an array of objects.
func Write(w io.Writer, fset *token.FileSet, reps []Report, format Format) error {
	switch format {
	case FormatText:
		for _, rep := range reps {
			pos := fset.Position(rep.Pos)
			if _, err := fmt.Fprintf(w, "%s: %s %s %s: %s\n",
				pos,
				rep.Level,
				rep.Rule.Code(),
				rep.Rule.Slug(),
				rep.Message,
			); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
		return nil

	case FormatJSON:
		out := make([]jsonReport, 0, len(reps))
		for _, rep := range reps {
			pos := fset.Position(rep.Pos)
			out = append(out, jsonReport{
				File:    pos.Filename,
				Line:    pos.Line,
				Column:  pos.Column,
				Rule:    rep.Rule.Slug(),
				Code:    rep.Rule.Code(),
				Level:   rep.Level.String(),
				Phase:   rep.Phase.String(),
				Message: rep.Message,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode reports: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
}
