// Package jflap loads automata saved by JFLAP (.jff files). JFLAP is an XML
// format whose graphs may be non-deterministic; the loader rebuilds the
// machine through the model's own mutation operations so the first
// determinism conflict rejects the load as a whole. Only loading is
// supported; the native schema is the engine's save format.
package jflap

import (
	"encoding/xml"
	"fmt"

	"github.com/finitolabs/finito/pkg/automaton"
)

type structureDoc struct {
	XMLName xml.Name `xml:"structure"`
	Type    string   `xml:"type"`
	States  []stateNode
	Trans   []transitionNode
}

type stateNode struct {
	ID      string    `xml:"id,attr"`
	Name    string    `xml:"name,attr"`
	Initial *struct{} `xml:"initial"`
	Final   *struct{} `xml:"final"`
}

type transitionNode struct {
	From string  `xml:"from"`
	To   string  `xml:"to"`
	Read *string `xml:"read"`
}

// UnmarshalXML collects state and transition nodes wherever they appear in
// the document; JFLAP nests them under an <automaton> element in newer
// versions and directly under <structure> in older ones.
func (d *structureDoc) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	d.XMLName = start.Name
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "type":
				var s string
				if err := dec.DecodeElement(&s, &t); err != nil {
					return err
				}
				d.Type = s
			case "state":
				var s stateNode
				if err := dec.DecodeElement(&s, &t); err != nil {
					return err
				}
				d.States = append(d.States, s)
			case "transition":
				var tr transitionNode
				if err := dec.DecodeElement(&tr, &t); err != nil {
					return err
				}
				d.Trans = append(d.Trans, tr)
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// Unmarshal parses a JFLAP document and rebuilds it as a deterministic
// machine. States keep their JFLAP name when present, falling back to the
// numeric id. An absent or empty <read> element denotes a lambda transition.
// The load is atomic: any failure returns a nil machine.
func Unmarshal(data []byte) (*automaton.Machine, error) {
	var doc structureDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &automaton.ParseError{Format: "jflap", Cause: err}
	}

	if len(doc.States) == 0 {
		return nil, &automaton.SchemaError{Field: "state", Reason: "document contains no states"}
	}

	m := automaton.New()
	names := make(map[string]string, len(doc.States))
	for _, s := range doc.States {
		if s.ID == "" {
			return nil, &automaton.SchemaError{Field: "state.id", Reason: "required"}
		}
		name := s.Name
		if name == "" {
			name = s.ID
		}
		names[s.ID] = name
		if err := m.AddState(name, s.Initial != nil, s.Final != nil); err != nil {
			return nil, err
		}
	}

	for i, tr := range doc.Trans {
		from, ok := names[tr.From]
		if !ok {
			return nil, &automaton.SchemaError{Field: "transition.from", Reason: fmt.Sprintf("transition %d references unknown state id %q", i, tr.From)}
		}
		to, ok := names[tr.To]
		if !ok {
			return nil, &automaton.SchemaError{Field: "transition.to", Reason: fmt.Sprintf("transition %d references unknown state id %q", i, tr.To)}
		}

		symbol := automaton.Epsilon
		if tr.Read != nil {
			symbol = *tr.Read
		}

		// AddTransition is what surfaces non-determinism in the source
		// graph; the first conflict aborts the whole load.
		if err := m.AddTransition(from, symbol, to); err != nil {
			return nil, fmt.Errorf("jflap transition %d: %w", i, err)
		}
	}

	return m, nil
}
