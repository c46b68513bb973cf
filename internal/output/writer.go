// Package output formats validation results as text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Record is the report for one validated move list.
type Record struct {
	Name        string `json:"name" yaml:"name"`
	Valid       bool   `json:"valid" yaml:"valid"`
	Ply         int    `json:"ply" yaml:"ply"`
	State       string `json:"state" yaml:"state"`
	FEN         string `json:"fen" yaml:"fen"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	DuplicateOf string `json:"duplicateOf,omitempty" yaml:"duplicate_of,omitempty"`
}

// FromResult converts a replay result into a report record.
func FromResult(r worker.ProcessResult) Record {
	rec := Record{
		Name:  r.Name,
		Valid: r.Err == nil,
		Ply:   r.Ply,
		State: r.State.String(),
		FEN:   r.FEN,
	}
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	return rec
}

// Report holds every record for batch output.
type Report struct {
	Results []Record `json:"results" yaml:"results"`
}

// ResultWriter is the interface for writing validation records.
type ResultWriter interface {
	// WriteRecord writes or buffers one record.
	WriteRecord(rec Record) error

	// Close writes any pending output.
	Close() error
}

// Formats lists the names accepted by NewWriter.
var Formats = []string{"text", "json", "yaml"}

// NewWriter returns the writer for the named format.
func NewWriter(format string, w io.Writer) (ResultWriter, error) {
	switch format {
	case "", "text":
		return &TextWriter{w: w}, nil
	case "json":
		return &JSONWriter{w: w}, nil
	case "yaml":
		return &YAMLWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %v)", format, Formats)
	}
}

// TextWriter writes one line per record as it arrives.
type TextWriter struct {
	w io.Writer
}

// WriteRecord writes the record's summary line.
func (tw *TextWriter) WriteRecord(rec Record) error {
	var err error
	if rec.Valid {
		_, err = fmt.Fprintf(tw.w, "%s: ok, %d ply, %s\n", rec.Name, rec.Ply, rec.State)
	} else {
		_, err = fmt.Fprintf(tw.w, "%s: rejected after %d ply: %s\n", rec.Name, rec.Ply, rec.Error)
	}
	if err != nil || rec.DuplicateOf == "" {
		return err
	}
	_, err = fmt.Fprintf(tw.w, "%s: same position as %s\n", rec.Name, rec.DuplicateOf)
	return err
}

// Close is a no-op for text output.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers records and writes them as one JSON document on Close.
type JSONWriter struct {
	w       io.Writer
	records []Record
}

// WriteRecord buffers a record.
func (jw *JSONWriter) WriteRecord(rec Record) error {
	jw.records = append(jw.records, rec)
	return nil
}

// Close writes all buffered records.
func (jw *JSONWriter) Close() error {
	records := jw.records
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&Report{Results: records})
	jw.records = nil
	return err
}

// YAMLWriter buffers records and writes them as one YAML document on Close.
type YAMLWriter struct {
	w       io.Writer
	records []Record
}

// WriteRecord buffers a record.
func (yw *YAMLWriter) WriteRecord(rec Record) error {
	yw.records = append(yw.records, rec)
	return nil
}

// Close writes all buffered records.
func (yw *YAMLWriter) Close() error {
	data, err := yaml.Marshal(&Report{Results: yw.records})
	if err != nil {
		return err
	}
	yw.records = nil
	_, err = yw.w.Write(data)
	return err
}
