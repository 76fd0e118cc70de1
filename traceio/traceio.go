package traceio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtrace/trace"
)

var (
	// ErrEmptyTrace is returned for a document without steps.
	ErrEmptyTrace = errors.New("traceio: empty trace")

	// ErrUnknownKind is returned for a step kind outside every vocabulary.
	ErrUnknownKind = errors.New("traceio: unknown step kind")

	// ErrUnknownFamily is returned for a missing or unrecognized family.
	ErrUnknownFamily = errors.New("traceio: unknown trace family")
)

// Document is the serialized form of a Trace.
type Document[S any] struct {
	Family string        `json:"family" yaml:"family"`
	Steps  []StepDoc[S] `json:"steps" yaml:"steps"`
}

// StepDoc is the serialized form of one Step.
type StepDoc[S any] struct {
	Kind     string `json:"kind" yaml:"kind"`
	Depth    int    `json:"depth" yaml:"depth"`
	Label    string `json:"label" yaml:"label"`
	Snapshot S      `json:"snapshot" yaml:"snapshot"`
}

// ToDocument converts tr into its serializable form.
func ToDocument[S any](tr *trace.Trace[S]) (Document[S], error) {
	if tr == nil || tr.Len() == 0 {
		return Document[S]{}, ErrEmptyTrace
	}
	steps := tr.Steps()
	doc := Document[S]{
		Family: tr.Family().String(),
		Steps:  make([]StepDoc[S], len(steps)),
	}
	for i, s := range steps {
		doc.Steps[i] = StepDoc[S]{
			Kind:     string(s.Kind),
			Depth:    s.Depth,
			Label:    s.Label,
			Snapshot: s.Snapshot,
		}
	}

	return doc, nil
}

// FromDocument validates doc and rebuilds the Trace it describes.
func FromDocument[S any](doc Document[S]) (*trace.Trace[S], error) {
	f, err := trace.ParseFamily(doc.Family)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, doc.Family)
	}
	if len(doc.Steps) == 0 {
		return nil, ErrEmptyTrace
	}
	steps := make([]trace.Step[S], len(doc.Steps))
	for i, sd := range doc.Steps {
		k := trace.Kind(sd.Kind)
		if !k.Valid() {
			return nil, fmt.Errorf("%w %q at step %d", ErrUnknownKind, sd.Kind, i)
		}
		steps[i] = trace.Step[S]{Kind: k, Depth: sd.Depth, Label: sd.Label, Snapshot: sd.Snapshot}
	}

	return trace.FromSteps(f, steps)
}

// EncodeJSON writes tr to w as indented JSON.
func EncodeJSON[S any](w io.Writer, tr *trace.Trace[S]) error {
	doc, err := ToDocument(tr)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("traceio: json encode: %w", err)
	}

	return nil
}

// DecodeJSON reads one JSON document from r.
func DecodeJSON[S any](r io.Reader) (*trace.Trace[S], error) {
	var doc Document[S]
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("traceio: json decode: %w", err)
	}

	return FromDocument(doc)
}

// EncodeYAML writes tr to w as YAML.
func EncodeYAML[S any](w io.Writer, tr *trace.Trace[S]) error {
	doc, err := ToDocument(tr)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("traceio: yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("traceio: yaml encode: %w", err)
	}

	return nil
}

// DecodeYAML reads one YAML document from r.
func DecodeYAML[S any](r io.Reader) (*trace.Trace[S], error) {
	var doc Document[S]
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("traceio: yaml decode: %w", err)
	}

	return FromDocument(doc)
}
