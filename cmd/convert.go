package cmd

import (
	"github.com/jsphweid/eabc2acep/envelope"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/jsphweid/eabc2acep/parser"
	"github.com/jsphweid/eabc2acep/project"
)

type conversion struct {
	Score    *model.Score
	Project  *model.Project
	Envelope *model.Envelope
}

// convert runs the whole pipeline. enc may be nil when only the document is
// wanted.
func convert(source string, enc *envelope.Encoder) (*conversion, error) {
	score, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	doc, err := project.Assemble(score)
	if err != nil {
		return nil, err
	}
	c := &conversion{Score: score, Project: doc}
	if enc == nil {
		return c, nil
	}
	env, err := enc.Encode(doc, envelope.Options{Warnings: score.Warnings})
	if err != nil {
		return nil, err
	}
	c.Envelope = env
	return c, nil
}

// newEncoder waits for the compressor to settle; the CLI is not latency bound
// the way the server is.
func newEncoder(method string, timestamp bool) (*envelope.Encoder, error) {
	c, err := envelope.NewCompressor(method)
	if err != nil {
		return nil, err
	}
	<-c.Ready()
	enc := envelope.NewEncoder(c)
	enc.Timestamp = timestamp
	return enc, nil
}
