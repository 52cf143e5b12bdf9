// Package ner is the boundary to the named-entity-recognition collaborator:
// given raw text, produce entities with a type label and a span.
package ner

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// LabelPerson is the entity label for person names.
const LabelPerson = "PERSON"

// Entity is one recognized span of text.
type Entity struct {
	Label string
	Text  string
}

// Recognizer finds named entities in a block of text.
type Recognizer interface {
	Entities(text string) ([]Entity, error)
}

// ProseRecognizer backs the Recognizer contract with the prose NLP library.
type ProseRecognizer struct{}

// NewProseRecognizer returns the production entity recognizer.
func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// Entities runs the prose pipeline over text and returns every labeled span.
func (r *ProseRecognizer) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("running entity recognition: %w", err)
	}

	entities := doc.Entities()
	out := make([]Entity, 0, len(entities))
	for _, ent := range entities {
		out = append(out, Entity{Label: ent.Label, Text: ent.Text})
	}
	return out, nil
}
